// Package renderer draws the particle ocean and the lit models with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tideline/internal/engine/shader"
	"github.com/Faultbox/tideline/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	Look   Look
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	oceanProgram *shader.Program
	meshProgram  *shader.Program

	ocean  oceanBuffer
	meshes map[meshKey]*meshBuffer

	log *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[meshKey]*meshBuffer),
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	bg := cfg.Look.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.MULTISAMPLE)

	var err error
	r.oceanProgram, err = shader.NewProgram(oceanVertexShader, oceanFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("ocean program: %w", err)
	}
	r.meshProgram, err = shader.NewProgram(meshVertexShader, meshFragmentShader)
	if err != nil {
		r.oceanProgram.Delete()
		return nil, fmt.Errorf("mesh program: %w", err)
	}

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.ocean.delete()
	for k, m := range r.meshes {
		m.delete()
		delete(r.meshes, k)
	}
	r.oceanProgram.Delete()
	r.meshProgram.Delete()
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the framebuffer size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Look returns the scene appearance.
func (r *Renderer) Look() Look {
	return r.config.Look
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows. Call it after
// the passes and before the swap.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

func (r *Renderer) setFog(p *shader.Program) {
	l := r.config.Look
	p.SetVec3("uFogColor", l.Background)
	p.SetFloat("uFogNear", l.FogNear)
	p.SetFloat("uFogFar", l.FogFar)
}
