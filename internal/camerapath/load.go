package camerapath

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrTooFewKeyframes = errors.New("camera path needs at least two keyframes")
	ErrProgressRange   = errors.New("keyframe progress outside [0,1]")
	ErrProgressOrder   = errors.New("keyframe progress not strictly increasing")
)

// file is the on-disk layout of a camera path.
type file struct {
	Keyframes []Keyframe `yaml:"keyframes"`
}

// Validate checks that keys form a usable path.
func Validate(keys []Keyframe) error {
	if len(keys) < 2 {
		return ErrTooFewKeyframes
	}
	for i, k := range keys {
		if k.Progress < 0 || k.Progress > 1 {
			return fmt.Errorf("keyframe %d (%v): %w", i, k.Progress, ErrProgressRange)
		}
		if i > 0 && k.Progress <= keys[i-1].Progress {
			return fmt.Errorf("keyframe %d (%v after %v): %w", i, k.Progress, keys[i-1].Progress, ErrProgressOrder)
		}
	}
	return nil
}

// Parse reads a path from YAML.
func Parse(data []byte) (*Path, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing camera path: %w", err)
	}
	return New(f.Keyframes)
}

// Load reads a path file.
func Load(path string) (*Path, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Marshal encodes the path in the format Parse reads.
func (p *Path) Marshal() ([]byte, error) {
	return yaml.Marshal(file{Keyframes: p.keys})
}
