package director

// Mode selects who drives the camera.
type Mode int

const (
	// Scripted follows the keyframe path from damped scroll progress.
	Scripted Mode = iota
	// Free hands the camera to the orbit controls.
	Free
)

func (m Mode) String() string {
	if m == Free {
		return "free"
	}
	return "scripted"
}

// driver is one camera mode. Enter and Exit run once per transition;
// Update runs every frame while the mode is current.
type driver interface {
	Enter()
	Exit()
	Update(dt float64)
}

type scriptedDriver struct {
	d *Director
}

func (s scriptedDriver) Enter() {
	s.d.Tracker.Engage()
}

func (s scriptedDriver) Exit() {}

func (s scriptedDriver) Update(dt float64) {
	d := s.d
	d.pose = d.Path.Sample(d.Tracker.Update(dt))
	if d.Ship != nil {
		d.Ship.Transform.Rotation[1] = d.pose.ShipYaw
	}
}

type freeDriver struct {
	d *Director
}

// Enter re-centres the orbit on the last scripted look-at, keeping the
// camera where it is.
func (f freeDriver) Enter() {
	d := f.d
	d.Orbit.SeedFrom(d.pose.Position, d.pose.LookAt)
	d.Orbit.Enable()
	d.Tracker.Disengage()
}

func (f freeDriver) Exit() {
	f.d.Orbit.Disable()
}

func (f freeDriver) Update(dt float64) {
	d := f.d
	d.Tracker.Update(dt)
	d.Orbit.Update(dt)
	d.pose.Position = d.Orbit.Position()
	d.pose.LookAt = d.Orbit.Center
}
