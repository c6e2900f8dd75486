// Package audio plays the looping ambient sea track. Its level follows the
// wave intensity so rougher water sounds louder.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/tideline/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager owns the speaker and the ambient loop.
type Manager struct {
	mu sync.Mutex

	initialized bool
	sampleRate  beep.SampleRate

	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	path     string

	// Volume settings (0.0 to 1.0 before intensity)
	base      float64
	intensity float64

	log *zap.Logger
}

// New creates a manager with the given base volume.
func New(volume float64) *Manager {
	return &Manager{
		base:      clamp(volume, 0, 1),
		intensity: 1,
		log:       logger.Named("audio"),
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	m.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopInternal()
	if m.initialized {
		speaker.Close()
	}
	m.initialized = false
}

// PlayAmbient starts looping the WAV file at path, replacing any current loop.
func (m *Manager) PlayAmbient(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("audio not initialized")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open ambient: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode wav: %w", err)
	}

	m.stopInternal()

	var resampled beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}

	m.ctrl = &beep.Ctrl{Streamer: &loopStreamer{streamer: streamer, resampled: resampled}}
	m.volume = &effects.Volume{Streamer: m.ctrl, Base: 10}
	m.applyVolume()
	m.streamer = streamer
	m.path = path

	speaker.Play(m.volume)
	m.log.Info("ambient loop started",
		zap.String("path", path),
		zap.Int("sample_rate", int(format.SampleRate)),
		zap.Float64("level", m.level()))
	return nil
}

// Stop ends the ambient loop.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopInternal()
}

func (m *Manager) stopInternal() {
	if m.initialized {
		speaker.Clear()
	}
	if m.streamer != nil {
		m.streamer.Close()
		m.streamer = nil
	}
	m.ctrl = nil
	m.volume = nil
	m.path = ""
}

// SetPaused pauses or resumes the loop.
func (m *Manager) SetPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ctrl == nil {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = paused
	speaker.Unlock()
}

// Playing reports whether a loop is active and not paused.
func (m *Manager) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ctrl != nil && !m.ctrl.Paused
}

// Path returns the file of the current loop.
func (m *Manager) Path() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.path
}

// SetVolume sets the base volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.base = clamp(vol, 0, 1)
	m.applyVolume()
}

// SetIntensity scales the level by the wave intensity multiplier.
func (m *Manager) SetIntensity(intensity float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if intensity == m.intensity {
		return
	}
	m.intensity = intensity
	m.applyVolume()
}

// Level returns the effective playback level.
func (m *Manager) Level() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level()
}

func (m *Manager) level() float64 {
	return m.base * IntensityGain(m.intensity)
}

func (m *Manager) applyVolume() {
	if m.volume == nil {
		return
	}
	lvl := m.level()
	if m.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	m.volume.Silent = lvl <= 0
	m.volume.Volume = volumeToExponent(lvl)
}

// IntensityGain maps the intensity multiplier to a loudness factor in
// [0.2, 1]. Calm water stays audible; intensity 2 and above is full level.
func IntensityGain(intensity float64) float64 {
	return clamp(intensity/2, 0.2, 1)
}

// volumeToExponent converts a linear 0-1 amplitude to the base-10 exponent
// effects.Volume expects.
func volumeToExponent(vol float64) float64 {
	if vol <= 0 {
		return -10 // Effectively silent
	}
	return math.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// loopStreamer rewinds the source whenever it runs dry.
type loopStreamer struct {
	streamer  beep.StreamSeeker
	resampled beep.Streamer
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	rewound := false
	for filled < len(samples) {
		n, ok := l.resampled.Stream(samples[filled:])
		filled += n
		if n > 0 {
			rewound = false
		}
		if !ok {
			// An empty source would spin forever.
			if rewound {
				return filled, filled > 0
			}
			if err := l.streamer.Seek(0); err != nil {
				return filled, filled > 0
			}
			rewound = true
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.streamer.Err()
}
