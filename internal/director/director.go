// Package director runs the per-frame scene update: it picks the camera
// driver, advances scroll damping and the camera pose, then moves the
// ocean and the ship on the shared clock.
package director

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/tideline/internal/camerapath"
	"github.com/Faultbox/tideline/internal/engine/camera"
	"github.com/Faultbox/tideline/internal/engine/model"
	"github.com/Faultbox/tideline/internal/logger"
	"github.com/Faultbox/tideline/internal/ocean"
	"github.com/Faultbox/tideline/internal/scroll"
	"github.com/Faultbox/tideline/internal/ship"
)

// Options configures a Director. Zero values pick defaults.
type Options struct {
	Path         *camerapath.Path
	Orbit        *camera.OrbitCamera
	TimeConstant float64
	Rand         *rand.Rand
}

// Director owns the scene state touched by the frame loop.
type Director struct {
	Params  *ocean.Params
	Grid    *ocean.Grid
	Floater ship.Floater
	Tracker *scroll.Tracker
	Path    *camerapath.Path
	Orbit   *camera.OrbitCamera

	// Ship and Container stay nil until their assets arrive.
	Ship      *model.Model
	Container *model.Model

	pose    camerapath.Pose
	clock   float64
	mode    Mode
	drivers [2]driver

	log *zap.Logger
}

// New creates a director in scripted mode with the camera at the start of
// the path.
func New(params *ocean.Params, opts Options) *Director {
	if opts.Path == nil {
		opts.Path = camerapath.Default()
	}
	if opts.Orbit == nil {
		opts.Orbit = camera.NewOrbitCamera()
	}

	d := &Director{
		Params:  params,
		Grid:    ocean.NewGrid(params, opts.Rand),
		Tracker: scroll.NewTracker(opts.TimeConstant),
		Path:    opts.Path,
		Orbit:   opts.Orbit,
		log:     logger.Named("director"),
	}
	d.drivers = [2]driver{scriptedDriver{d}, freeDriver{d}}
	d.pose = d.Path.Sample(0)
	d.mode = Scripted
	d.drivers[Scripted].Enter()

	d.log.Debug("director ready",
		zap.Int("samples", d.Grid.Len()),
		zap.Int("keyframes", d.Path.Len()))
	return d
}

// Mode returns the current camera mode.
func (d *Director) Mode() Mode {
	return d.mode
}

// SetMode switches camera driver. Setting the current mode does nothing.
func (d *Director) SetMode(m Mode) {
	if m == d.mode {
		return
	}
	d.drivers[d.mode].Exit()
	d.mode = m
	d.drivers[d.mode].Enter()
	d.log.Info("camera mode", zap.Stringer("mode", m))
}

// Toggle flips between scripted and free mode.
func (d *Director) Toggle() {
	if d.mode == Scripted {
		d.SetMode(Free)
	} else {
		d.SetMode(Scripted)
	}
}

// SetScrollTarget feeds raw scroll progress to the tracker. It is accepted
// in both modes and picked up once scripted mode resumes.
func (d *Director) SetScrollTarget(p float64) {
	d.Tracker.SetTarget(p)
}

// SetShip installs the loaded ship. The current scripted yaw applies at once.
func (d *Director) SetShip(m *model.Model) {
	d.Ship = m
	if m != nil {
		m.Transform.Rotation[1] = d.pose.ShipYaw
	}
}

// SetContainer installs the loaded container. It has no per-frame logic.
func (d *Director) SetContainer(m *model.Model) {
	d.Container = m
}

// FocusShip moves the free orbit target onto the ship, keeping the orbit
// angles and distance. It reports false in scripted mode or before the
// ship has loaded.
func (d *Director) FocusShip() bool {
	if d.mode != Free || d.Ship == nil {
		return false
	}
	d.Orbit.SetCenter(d.Ship.Transform.Position)
	return true
}

// Pose returns the camera pose produced by the last frame.
func (d *Director) Pose() camerapath.Pose {
	return d.pose
}

// Clock returns the scene time in seconds.
func (d *Director) Clock() float64 {
	return d.clock
}

// Frame advances the scene by dt seconds. The ocean and the ship read the
// same clock value.
func (d *Director) Frame(dt float64) {
	if dt > 0 {
		d.clock += dt
	}
	d.drivers[d.mode].Update(dt)

	d.Grid.Update(d.Params, d.clock)
	if d.Ship != nil {
		d.Floater.Update(&d.Ship.Transform, d.Params, d.clock)
	}
}

// ApplyEdit writes one parameter and refreshes whatever it invalidates.
func (d *Director) ApplyEdit(f ocean.Field, v float64) ocean.Effect {
	e := d.Params.Set(f, v)
	d.Grid.Apply(d.Params, e)
	if e == ocean.EffectRebuild {
		d.log.Debug("grid rebuilt",
			zap.Stringer("field", f),
			zap.Int("samples", d.Grid.Len()),
			zap.Int("generation", d.Grid.Generation))
	}
	return e
}

// ApplyParams copies every field of next that differs from the current
// store, refreshing the material and the grid at most once each. It
// returns the fields that changed.
func (d *Director) ApplyParams(next ocean.Params) []ocean.Field {
	changed := d.Params.Diff(&next)
	var material, rebuild bool
	for _, f := range changed {
		switch d.Params.Set(f, next.Get(f)) {
		case ocean.EffectMaterial:
			material = true
		case ocean.EffectRebuild:
			rebuild = true
		}
	}
	if material {
		d.Grid.ApplyMaterial(d.Params)
	}
	if rebuild {
		d.Grid.Rebuild(d.Params)
		d.log.Debug("grid rebuilt",
			zap.Int("fields", len(changed)),
			zap.Int("samples", d.Grid.Len()))
	}
	return changed
}
