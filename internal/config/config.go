// Package config handles scene configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/tideline/internal/ocean"
	"github.com/Faultbox/tideline/internal/scroll"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Ocean   ocean.Params  `yaml:"ocean"`
	Camera  CameraConfig  `yaml:"camera"`
	Scroll  ScrollConfig  `yaml:"scroll"`
	Assets  AssetsConfig  `yaml:"assets"`
	Audio   AudioConfig   `yaml:"audio"`
	Capture CaptureConfig `yaml:"capture"`
	Logging LoggingConfig `yaml:"logging"`

	// HotReload re-applies the ocean section whenever the file changes.
	HotReload bool `yaml:"hot_reload"`

	// Path is the file the config was loaded from, if any.
	Path string `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds projection, scripted path and free orbit settings.
type CameraConfig struct {
	FOV  float32 `yaml:"fov"` // degrees
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`

	// ScrollTimeConstant is the damping time constant in seconds.
	ScrollTimeConstant float64 `yaml:"scroll_time_constant"`

	// PathFile optionally replaces the built-in keyframes.
	PathFile string `yaml:"path_file"`

	Orbit OrbitConfig `yaml:"orbit"`
}

// OrbitConfig holds the free camera limits and spring tuning.
type OrbitConfig struct {
	MinDistance   float32 `yaml:"min_distance"`
	MaxDistance   float32 `yaml:"max_distance"`
	MaxPolarAngle float32 `yaml:"max_polar_angle"` // radians from straight up
	Frequency     float64 `yaml:"frequency"`
	DampingRatio  float64 `yaml:"damping_ratio"`
}

// ScrollConfig describes the virtual document the scroll wheel moves through.
type ScrollConfig struct {
	Pages     float64 `yaml:"pages"`      // document height in viewport heights
	WheelStep float64 `yaml:"wheel_step"` // pixels per wheel notch
}

// AssetsConfig holds model paths. Relative paths resolve against Dir.
type AssetsConfig struct {
	Dir               string     `yaml:"dir"`
	Ship              string     `yaml:"ship"`
	Container         string     `yaml:"container"`
	ContainerPosition [3]float32 `yaml:"container_position,flow"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	Ambient string  `yaml:"ambient"` // looping WAV, empty for silence
	Volume  float32 `yaml:"volume"`
	Muted   bool    `yaml:"muted"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Tideline",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Ocean: ocean.DefaultParams(),
		Camera: CameraConfig{
			FOV:                15,
			Near:               0.1,
			Far:                1000,
			ScrollTimeConstant: scroll.DefaultTimeConstant,
			Orbit: OrbitConfig{
				MinDistance:   5,
				MaxDistance:   30,
				MaxPolarAngle: math.Pi / 1.5,
				Frequency:     6,
				DampingRatio:  1,
			},
		},
		Scroll: ScrollConfig{
			Pages:     8,
			WheelStep: 100,
		},
		Assets: AssetsConfig{
			Dir:               "assets",
			Ship:              "ship.glb",
			Container:         "container.glb",
			ContainerPosition: [3]float32{4, 3, -2},
		},
		Audio: AudioConfig{
			Volume: 0.6,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		HotReload: true,
	}
}

// Validate checks the settings the scene cannot start without. Ocean
// values are left to the control panel.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %v out of range (0, 180)", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes near=%v far=%v invalid", c.Camera.Near, c.Camera.Far))
	}
	if o := c.Camera.Orbit; o.MinDistance <= 0 || o.MaxDistance < o.MinDistance {
		errs = append(errs, fmt.Errorf("orbit distance range [%v, %v] invalid", o.MinDistance, o.MaxDistance))
	}
	if c.Scroll.Pages < 1 {
		errs = append(errs, fmt.Errorf("scroll pages %v must be at least 1", c.Scroll.Pages))
	}
	switch c.Capture.Format {
	case "", "png", "bmp":
	default:
		errs = append(errs, fmt.Errorf("unknown capture format %q", c.Capture.Format))
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Logging.Level))
	}
	return errors.Join(errs...)
}
