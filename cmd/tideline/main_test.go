package main

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/tideline/internal/config"
)

func fieldMap(cfg *config.Config) map[string]any {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range startupFields(cfg) {
		f.AddTo(enc)
	}
	return enc.Fields
}

func TestStartupFieldsDefaults(t *testing.T) {
	got := fieldMap(config.Default())

	want := map[string]any{
		"config":      "defaults",
		"assets":      "assets",
		"ship":        "ship.glb",
		"container":   "container.glb",
		"camera_path": "built-in",
		"ambient":     "off",
		"hot_reload":  false,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s: expected %v, got %v", k, v, got[k])
		}
	}
}

func TestStartupFieldsLoadedFile(t *testing.T) {
	cfg := config.Default()
	cfg.Path = "tideline.yaml"
	cfg.Assets.Ship = "clipper.glb"
	cfg.Camera.PathFile = "flyby.yaml"
	cfg.Audio.Ambient = "surf.wav"

	got := fieldMap(cfg)
	if got["config"] != "tideline.yaml" {
		t.Errorf("expected config tideline.yaml, got %v", got["config"])
	}
	if got["ship"] != "clipper.glb" {
		t.Errorf("expected ship clipper.glb, got %v", got["ship"])
	}
	if got["camera_path"] != "flyby.yaml" {
		t.Errorf("expected camera path flyby.yaml, got %v", got["camera_path"])
	}
	if got["ambient"] != "surf.wav" {
		t.Errorf("expected ambient surf.wav, got %v", got["ambient"])
	}
	if got["hot_reload"] != true {
		t.Errorf("expected hot reload on, got %v", got["hot_reload"])
	}

	cfg.Audio.Muted = true
	cfg.HotReload = false
	got = fieldMap(cfg)
	if got["ambient"] != "off" {
		t.Errorf("expected muted ambient off, got %v", got["ambient"])
	}
	if got["hot_reload"] != false {
		t.Errorf("expected hot reload off, got %v", got["hot_reload"])
	}
}
