package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestHex(t *testing.T) {
	got := Hex(0x0a1929)
	want := [3]float32{10.0 / 255, 25.0 / 255, 41.0 / 255}
	if got != want {
		t.Errorf("Hex(0x0a1929) = %v, want %v", got, want)
	}
	if Hex(0xffffff) != [3]float32{1, 1, 1} {
		t.Error("white should be 1,1,1")
	}
}

func TestDirection(t *testing.T) {
	d := DirectionalLight{Position: mgl32.Vec3{0, 10, 0}}
	if got := d.Direction(); got != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("direction = %v", got)
	}
	if got := (DirectionalLight{}).Direction(); got != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("zero position should point up, got %v", got)
	}
}

func TestFalloff(t *testing.T) {
	p := PointLight{Range: 30}
	tests := []struct {
		d, want float32
	}{
		{0, 1},
		{15, 0.25},
		{30, 0},
		{45, 0},
	}
	for _, tt := range tests {
		if got := p.Falloff(tt.d); got != tt.want {
			t.Errorf("Falloff(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
	if got := (PointLight{}).Falloff(1000); got != 1 {
		t.Errorf("unlimited range should not attenuate, got %v", got)
	}
}

func TestHemisphere(t *testing.T) {
	h := Hemisphere{Sky: [3]float32{1, 1, 1}, Ground: [3]float32{0, 0, 0}, Intensity: 2}
	if got := h.At(1); got != [3]float32{2, 2, 2} {
		t.Errorf("straight up = %v", got)
	}
	if got := h.At(-1); got != [3]float32{0, 0, 0} {
		t.Errorf("straight down = %v", got)
	}
	if got := h.At(0); got != [3]float32{1, 1, 1} {
		t.Errorf("horizon = %v", got)
	}
}
