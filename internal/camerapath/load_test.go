package camerapath

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		keys []Keyframe
		want error
	}{
		{"default", DefaultKeyframes, nil},
		{"empty", nil, ErrTooFewKeyframes},
		{"single", []Keyframe{{Progress: 0}}, ErrTooFewKeyframes},
		{"negative", []Keyframe{{Progress: -0.1}, {Progress: 1}}, ErrProgressRange},
		{"past end", []Keyframe{{Progress: 0}, {Progress: 1.5}}, ErrProgressRange},
		{"repeat", []Keyframe{{Progress: 0}, {Progress: 0.5}, {Progress: 0.5}}, ErrProgressOrder},
		{"backwards", []Keyframe{{Progress: 0.6}, {Progress: 0.2}}, ErrProgressOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.keys)
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
keyframes:
  - progress: 0
    camera: [0, 5, 10]
    target: [0, 0, 0]
    ship_yaw: 0
  - progress: 1
    camera: [10, 2, 0]
    target: [0, 1, 0]
    ship_yaw: 3.14
`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("expected 2 keyframes, got %d", p.Len())
	}
	if got := p.Keyframe(1).Camera; got != (mgl32.Vec3{10, 2, 0}) {
		t.Errorf("expected camera (10,2,0), got %v", got)
	}
	if got := p.Sample(0.5).Position; !got.ApproxEqualThreshold(mgl32.Vec3{5, 3.5, 5}, 1e-5) {
		t.Errorf("expected midpoint (5,3.5,5), got %v", got)
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("keyframes:\n  - progress: 0.5\n"))
	if !errors.Is(err, ErrTooFewKeyframes) {
		t.Errorf("expected ErrTooFewKeyframes, got %v", err)
	}

	_, err = Parse([]byte("keyframes: [not: valid: yaml"))
	if err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path.yaml")
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write path file: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Len() != len(DefaultKeyframes) {
		t.Fatalf("expected %d keyframes, got %d", len(DefaultKeyframes), p.Len())
	}
	for i := range p.Len() {
		if p.Keyframe(i) != DefaultKeyframes[i] {
			t.Errorf("keyframe %d = %+v, want %+v", i, p.Keyframe(i), DefaultKeyframes[i])
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/path.yaml"); err == nil {
		t.Error("expected error loading missing file")
	}
}
