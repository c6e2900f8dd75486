// Package app wires the window, input, renderer and scene director into
// the frame loop.
package app

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/tideline/internal/assets"
	"github.com/Faultbox/tideline/internal/camerapath"
	"github.com/Faultbox/tideline/internal/config"
	"github.com/Faultbox/tideline/internal/director"
	"github.com/Faultbox/tideline/internal/engine/audio"
	"github.com/Faultbox/tideline/internal/engine/camera"
	"github.com/Faultbox/tideline/internal/engine/debug"
	"github.com/Faultbox/tideline/internal/engine/input"
	"github.com/Faultbox/tideline/internal/engine/renderer"
	"github.com/Faultbox/tideline/internal/engine/window"
	"github.com/Faultbox/tideline/internal/logger"
	"github.com/Faultbox/tideline/internal/ocean"
	"github.com/Faultbox/tideline/internal/scroll"
)

const (
	// maxFrameTime caps dt after a stall so the damping does not jump.
	maxFrameTime  = 0.1
	titleInterval = 100 * time.Millisecond
	messageTime   = 3 * time.Second
)

// App is the running scene.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager

	director *director.Director
	params   *ocean.Params
	doc      *scroll.Document
	panel    *Panel

	assets  *assets.Manager
	batch   *assets.Batch
	loading assets.Progress
	cancel  context.CancelFunc

	watcher *config.Watcher

	capture        *debug.Capture
	capturePending bool

	message      string
	messageUntil time.Time
	lastTitle    time.Time

	log *zap.Logger
}

// New creates the window, the renderer and the scene, and starts loading
// the models in the background.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:     cfg,
		panel:   NewPanel(),
		capture: debug.NewCapture(cfg.Capture.Dir, "tideline", cfg.Capture.Format),
		log:     logger.Named("app"),
	}
	a.log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	path := camerapath.Default()
	if cfg.Camera.PathFile != "" {
		p, err := camerapath.Load(cfg.Camera.PathFile)
		if err != nil {
			return nil, fmt.Errorf("camera path: %w", err)
		}
		path = p
		a.log.Info("custom camera path", zap.String("file", cfg.Camera.PathFile), zap.Int("keyframes", p.Len()))
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	look := renderer.DefaultLook()
	look.FOV = cfg.Camera.FOV
	look.Near = cfg.Camera.Near
	look.Far = cfg.Camera.Far

	// Renderer needs the GL context the window created.
	fbw, fbh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: fbw, Height: fbh, Look: look})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	params := cfg.Ocean
	a.params = &params
	a.director = director.New(a.params, director.Options{
		Path:         path,
		Orbit:        newOrbit(cfg.Camera.Orbit),
		TimeConstant: cfg.Camera.ScrollTimeConstant,
	})

	_, winH := a.window.GetSize()
	a.doc = scroll.NewDocument(cfg.Scroll.Pages*float64(winH), float64(winH))

	a.startLoading()
	a.startAudio()
	a.startWatcher()

	a.log.Info("initialized", zap.Int("particles", a.director.Grid.Len()))
	return a, nil
}

// newOrbit builds the free camera from its config. The polar limit is
// measured from straight up, pitch from the horizon.
func newOrbit(cfg config.OrbitConfig) *camera.OrbitCamera {
	c := camera.NewOrbitCamera()
	c.MinDistance = cfg.MinDistance
	c.MaxDistance = cfg.MaxDistance
	c.MinPitch = math.Pi/2 - cfg.MaxPolarAngle
	c.Frequency = cfg.Frequency
	c.DampingRatio = cfg.DampingRatio
	return c
}

func (a *App) startLoading() {
	a.assets = assets.NewManager(a.cfg.Assets.Dir)

	var reqs []assets.Request
	if a.cfg.Assets.Ship != "" {
		reqs = append(reqs, assets.Request{Name: "ship", Path: a.cfg.Assets.Ship, Place: assets.PlaceShip})
	}
	if a.cfg.Assets.Container != "" {
		reqs = append(reqs, assets.Request{
			Name:  "container",
			Path:  a.cfg.Assets.Container,
			Place: assets.PlaceContainer(mgl32.Vec3(a.cfg.Assets.ContainerPosition)),
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.loading = assets.Progress{Total: len(reqs)}
	a.batch = a.assets.LoadAsync(ctx, reqs)
}

func (a *App) startAudio() {
	if a.cfg.Audio.Muted || a.cfg.Audio.Ambient == "" {
		return
	}
	m := audio.New(float64(a.cfg.Audio.Volume))
	if err := m.Init(); err != nil {
		a.log.Warn("audio disabled", zap.Error(err))
		return
	}
	if err := m.PlayAmbient(a.assets.Resolve(a.cfg.Audio.Ambient)); err != nil {
		a.log.Warn("ambient loop not started", zap.Error(err))
		m.Close()
		return
	}
	m.SetIntensity(a.params.IntensityMultiplier)
	a.audio = m
}

func (a *App) startWatcher() {
	if !a.cfg.HotReload || a.cfg.Path == "" {
		return
	}
	w, err := config.Watch(a.cfg.Path)
	if err != nil {
		a.log.Warn("config hot reload disabled", zap.Error(err))
		return
	}
	a.watcher = w
}

// Run starts the frame loop and returns when the window closes.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := min(now.Sub(lastTime).Seconds(), maxFrameTime)
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		// 2. Take whatever the background goroutines finished
		a.pollAssets()
		a.pollConfig()

		// 3. Update the scene
		a.update(dt)

		// 4. Render and present
		a.render()
		if a.capturePending {
			a.saveCapture()
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases everything New acquired.
func (a *App) Close() {
	a.log.Info("closing")

	if a.cancel != nil {
		a.cancel()
	}
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("config watcher close", zap.Error(err))
		}
	}
	if a.audio != nil {
		a.audio.Close()
	}
	if a.assets != nil {
		a.assets.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		free := a.director.Mode() == director.Free
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(a.window.DrawableSize())
			_, h := a.window.GetSize()
			a.doc.Height = a.cfg.Scroll.Pages * float64(h)
			a.doc.Resize(float64(h))
		case input.EventMouseWheel:
			if free {
				a.director.Orbit.HandleZoom(event.WheelY)
			} else {
				a.doc.ScrollBy(-float64(event.WheelY) * a.cfg.Scroll.WheelStep)
			}
		case input.EventMouseMove:
			if free && a.input.IsButtonDown(sdl.BUTTON_LEFT) {
				a.director.Orbit.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
			}
		case input.EventKeyDown:
			a.handleKey(event)
		}
	}
}

func (a *App) handleKey(event input.Event) {
	switch event.Key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_PAGEDOWN, sdl.SCANCODE_SPACE:
		a.doc.PageDown()
	case sdl.SCANCODE_PAGEUP:
		a.doc.PageUp()
	case sdl.SCANCODE_HOME:
		a.doc.Home()
	case sdl.SCANCODE_END:
		a.doc.End()
	case sdl.SCANCODE_F11:
		if !event.Repeat {
			a.window.SetFullscreen(!a.window.Fullscreen())
		}
	}
	if event.Repeat {
		// Only slider steps auto-repeat.
		if a.panel.Open() && (event.Key == sdl.SCANCODE_LEFT || event.Key == sdl.SCANCODE_RIGHT) {
			a.handlePanelKey(event.Key)
		}
		return
	}
	switch event.Key {
	case sdl.SCANCODE_C:
		a.director.Toggle()
	case sdl.SCANCODE_F:
		if a.director.FocusShip() {
			a.notify("orbiting ship")
		}
	case sdl.SCANCODE_F12:
		a.capturePending = true
	case sdl.SCANCODE_O:
		a.panel.Toggle()
	case sdl.SCANCODE_M:
		if a.audio != nil {
			a.audio.SetPaused(a.audio.Playing())
		}
	default:
		if a.panel.Open() {
			a.handlePanelKey(event.Key)
		}
	}
}

func (a *App) handlePanelKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_UP:
		a.panel.Prev()
	case sdl.SCANCODE_DOWN:
		a.panel.Next()
	case sdl.SCANCODE_LEFT:
		a.stepField(-1)
	case sdl.SCANCODE_RIGHT:
		a.stepField(1)
	case sdl.SCANCODE_R:
		changed := a.director.ApplyParams(ocean.ResetParams())
		a.log.Info("reset preset applied", zap.Int("changed", len(changed)))
		a.notify("reset")
	case sdl.SCANCODE_S:
		a.saveConfig()
	}
}

func (a *App) stepField(steps int) {
	f, v, ok := a.panel.Step(a.params, steps)
	if !ok {
		return
	}
	effect := a.director.ApplyEdit(f, v)
	a.log.Debug("field edited", zap.Stringer("field", f), zap.Float64("value", v), zap.Stringer("effect", effect))
}

func (a *App) saveConfig() {
	a.cfg.Ocean = *a.params
	path, err := a.cfg.Save()
	if err != nil {
		a.log.Error("failed to save config", zap.Error(err))
		a.notify("save failed")
		return
	}
	a.log.Info("config saved", zap.String("path", path))
	a.notify("saved " + path)
}

func (a *App) saveCapture() {
	a.capturePending = false
	name, err := a.capture.Save(a.renderer.ReadPixels())
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		a.notify("screenshot failed")
		return
	}
	a.log.Info("screenshot saved", zap.String("path", name))
	a.notify("saved " + name)
}

func (a *App) notify(msg string) {
	a.message = msg
	a.messageUntil = time.Now().Add(messageTime)
}

// pollAssets drains the loader without blocking. Channels are set to nil
// once closed.
func (a *App) pollAssets() {
	if a.batch == nil {
		return
	}
	for {
		select {
		case p, ok := <-a.batch.Progress:
			if !ok {
				a.batch.Progress = nil
				continue
			}
			a.loading = p
		case r, ok := <-a.batch.Results:
			if !ok {
				a.batch.Results = nil
				continue
			}
			a.takeResult(r)
		default:
			if a.batch.Progress == nil && a.batch.Results == nil {
				a.batch = nil
			}
			return
		}
	}
}

func (a *App) takeResult(r assets.Result) {
	if r.Err != nil {
		a.log.Warn("model unavailable", zap.String("name", r.Name), zap.Error(r.Err))
		return
	}
	switch r.Name {
	case "ship":
		a.director.SetShip(r.Model)
	case "container":
		a.director.SetContainer(r.Model)
	}
	a.log.Info("model ready", zap.String("name", r.Name))
}

func (a *App) pollConfig() {
	if a.watcher == nil {
		return
	}
	select {
	case next := <-a.watcher.Updates():
		changed := a.director.ApplyParams(next)
		if len(changed) > 0 {
			a.log.Info("ocean config reloaded", zap.Int("changed", len(changed)))
			a.notify("config reloaded")
		}
	default:
	}
}

func (a *App) update(dt float64) {
	if a.director.Mode() == director.Free {
		a.pan(dt)
	}
	a.director.SetScrollTarget(a.doc.Progress())

	a.director.Frame(dt)

	if a.audio != nil {
		a.audio.SetIntensity(a.params.IntensityMultiplier)
	}

	if time.Since(a.lastTitle) >= titleInterval {
		a.window.SetTitle(a.title().String())
		a.lastTitle = time.Now()
	}
}

// pan moves the orbit target with WASD/QE, scaled to a 60 Hz step.
func (a *App) pan(dt float64) {
	var forward, right, up float32
	if a.input.IsKeyDown(sdl.SCANCODE_W) {
		forward++
	}
	if a.input.IsKeyDown(sdl.SCANCODE_S) && !a.panel.Open() {
		forward--
	}
	if a.input.IsKeyDown(sdl.SCANCODE_D) {
		right++
	}
	if a.input.IsKeyDown(sdl.SCANCODE_A) {
		right--
	}
	if a.input.IsKeyDown(sdl.SCANCODE_E) {
		up++
	}
	if a.input.IsKeyDown(sdl.SCANCODE_Q) {
		up--
	}
	if forward == 0 && right == 0 && up == 0 {
		return
	}
	k := float32(dt * 60)
	a.director.Orbit.HandleMovement(forward*k, right*k, up*k)
}

func (a *App) title() hud {
	h := hud{
		Base: a.window.Title(),
		Mode: a.director.Mode(),
		Pose: a.director.Pose(),
	}
	switch {
	case a.loading.Failed:
		h.Loading = a.loading.Status()
	case !a.loading.Done():
		h.Loading = "loading " + a.loading.Status() + "%"
	}
	if a.panel.Open() {
		h.Panel = a.panel.Status(a.params)
	}
	if time.Now().Before(a.messageUntil) {
		h.Message = a.message
	}
	return h
}

func (a *App) render() {
	a.renderer.Begin()

	w, h := a.renderer.Size()
	pose := a.director.Pose()
	view := a.renderer.Look().NewView(pose.Position, pose.LookAt, w, h)

	a.renderer.DrawModel(a.director.Ship, view)
	a.renderer.DrawModel(a.director.Container, view)
	// Points blend additively over the opaque meshes.
	a.renderer.DrawOcean(a.director.Grid, view)

	a.renderer.End()
}
