// Package debug provides capture utilities for the running scene.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// Formats lists the encodings Capture can write.
var Formats = []string{"png", "bmp"}

// Capture writes framebuffer grabs to numbered image files.
type Capture struct {
	dir    string
	prefix string
	format string
	now    func() time.Time
}

// NewCapture creates a capture writing format files into dir. An unknown
// format falls back to png.
func NewCapture(dir, prefix, format string) *Capture {
	format = strings.ToLower(format)
	if format != "bmp" {
		format = "png"
	}
	return &Capture{dir: dir, prefix: prefix, format: format, now: time.Now}
}

// Filename returns the path the next capture would be written to.
func (c *Capture) Filename() string {
	name := fmt.Sprintf("%s_%s.%s", c.prefix, c.now().Format("2006-01-02_15-04-05.000"), c.format)
	if c.dir != "" {
		name = filepath.Join(c.dir, name)
	}
	return name
}

// Image converts bottom-up RGBA rows, as glReadPixels returns them, into a
// top-down image.
func Image(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", max(width, 0)*max(height, 0)*4, len(pixels))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := range height {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img, nil
}

// Save writes the pixels to a new file and returns its path.
func (c *Capture) Save(pixels []byte, width, height int) (string, error) {
	img, err := Image(pixels, width, height)
	if err != nil {
		return "", err
	}
	if c.dir != "" {
		if err := os.MkdirAll(c.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := c.Filename()
	file, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := c.encode(file, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", c.format, err)
	}
	return name, nil
}

func (c *Capture) encode(w io.Writer, img image.Image) error {
	if c.format == "bmp" {
		return bmp.Encode(w, img)
	}
	return png.Encode(w, img)
}
