package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/tideline/internal/ocean"
)

func waitUpdate(t *testing.T, w *Watcher) ocean.Params {
	t.Helper()
	select {
	case p := <-w.Updates():
		return p
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
		return ocean.Params{}
	}
}

func TestWatcherPublishesOcean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tideline.yaml")
	if err := os.WriteFile(path, []byte("ocean:\n  wave_speed: 0.7\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("ocean:\n  wave_speed: 1.5\n  particle_spacing: 0.4\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	p := waitUpdate(t, w)
	if p.WaveSpeed != 1.5 || p.ParticleSpacing != 0.4 {
		t.Errorf("unexpected params %+v", p)
	}
	// Untouched fields fall back to defaults
	if p.WaveAmplitude != ocean.DefaultParams().WaveAmplitude {
		t.Errorf("expected default amplitude, got %v", p.WaveAmplitude)
	}
}

func TestWatcherSeesSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tideline.yaml")
	cfg := Default()
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	cfg.Ocean.TiltAmplitude = 0.12
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if p := waitUpdate(t, w); p.TiltAmplitude != 0.12 {
		t.Errorf("expected tilt 0.12, got %v", p.TiltAmplitude)
	}
}

func TestWatcherSkipsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tideline.yaml")
	if err := os.WriteFile(path, []byte("ocean:\n  wave_speed: 0.7\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("ocean: [unterminated\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	select {
	case p := <-w.Updates():
		t.Fatalf("broken file should not publish, got %+v", p)
	case <-time.After(4 * reloadDelay):
	}

	if err := os.WriteFile(path, []byte("ocean:\n  wave_speed: 0.9\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if p := waitUpdate(t, w); p.WaveSpeed != 0.9 {
		t.Errorf("expected recovery with speed 0.9, got %v", p.WaveSpeed)
	}
}

func TestWatchMissingDir(t *testing.T) {
	if _, err := Watch("/nonexistent/dir/tideline.yaml"); err == nil {
		t.Error("expected error watching a missing directory")
	}
}
