// Package main is the entry point for the Tideline ocean scene.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/tideline/internal/app"
	"github.com/Faultbox/tideline/internal/config"
	"github.com/Faultbox/tideline/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("tideline starting", startupFields(cfg)...)
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("frame loop error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}

// startupFields summarises what this run will load and watch.
func startupFields(cfg *config.Config) []zap.Field {
	source := cfg.Path
	if source == "" {
		source = "defaults"
	}
	cameraPath := cfg.Camera.PathFile
	if cameraPath == "" {
		cameraPath = "built-in"
	}
	ambient := cfg.Audio.Ambient
	if cfg.Audio.Muted || ambient == "" {
		ambient = "off"
	}
	return []zap.Field{
		zap.String("config", source),
		zap.String("assets", cfg.Assets.Dir),
		zap.String("ship", cfg.Assets.Ship),
		zap.String("container", cfg.Assets.Container),
		zap.String("camera_path", cameraPath),
		zap.String("ambient", ambient),
		// Hot reload needs a file on disk to watch.
		zap.Bool("hot_reload", cfg.HotReload && cfg.Path != ""),
	}
}
