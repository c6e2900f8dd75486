package app

import (
	"fmt"
	"math"

	"github.com/Faultbox/tideline/internal/ocean"
)

// Panel is the keyboard-driven set of ocean sliders. It only computes
// values; the caller applies them through the director so that rebuild
// and material effects fire.
type Panel struct {
	open     bool
	selected int
	fields   []ocean.Field
}

// NewPanel creates a closed panel with the first field selected.
func NewPanel() *Panel {
	return &Panel{fields: ocean.Fields()}
}

// Open reports whether the panel is shown.
func (p *Panel) Open() bool {
	return p.open
}

// Toggle shows or hides the panel.
func (p *Panel) Toggle() {
	p.open = !p.open
}

// Selected returns the field the arrow keys edit.
func (p *Panel) Selected() ocean.Field {
	return p.fields[p.selected]
}

// Next selects the following field, wrapping at the end.
func (p *Panel) Next() {
	p.selected = (p.selected + 1) % len(p.fields)
}

// Prev selects the previous field, wrapping at the start.
func (p *Panel) Prev() {
	p.selected = (p.selected - 1 + len(p.fields)) % len(p.fields)
}

// Step moves the selected field by steps slider increments and returns
// the new value. ok is false when the value is already at the limit.
func (p *Panel) Step(params *ocean.Params, steps int) (f ocean.Field, v float64, ok bool) {
	f = p.Selected()
	cur := params.Get(f)
	v = SliderValue(f, cur+float64(steps)*f.Info().Step)
	return f, v, v != cur
}

// SliderValue snaps v to the slider grid of f and clamps it to the
// slider range.
func SliderValue(f ocean.Field, v float64) float64 {
	info := f.Info()
	if info.Step > 0 {
		k := math.Round((v - info.Min) / info.Step)
		v = info.Min + k*info.Step
		// Strip the float noise the step arithmetic leaves behind.
		v = math.Round(v*1e6) / 1e6
	}
	return min(max(v, info.Min), info.Max)
}

// Status renders the selected slider as one line.
func (p *Panel) Status(params *ocean.Params) string {
	f := p.Selected()
	info := f.Info()
	return fmt.Sprintf("%s %s [%s..%s] (%d/%d)",
		info.Label, f.Format(params.Get(f)),
		f.Format(info.Min), f.Format(info.Max),
		p.selected+1, len(p.fields))
}
