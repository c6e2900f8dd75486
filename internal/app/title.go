package app

import (
	"fmt"
	"strings"

	"github.com/Faultbox/tideline/internal/camerapath"
	"github.com/Faultbox/tideline/internal/director"
)

// hud is what the window title reports for one frame.
type hud struct {
	Base    string
	Loading string // empty once every model has arrived
	Mode    director.Mode
	Pose    camerapath.Pose
	Panel   string // empty while the panel is closed
	Message string
}

// String joins the non-empty parts with " | ".
func (h hud) String() string {
	parts := []string{h.Base}
	if h.Loading != "" {
		parts = append(parts, h.Loading)
	}
	if h.Mode == director.Free {
		parts = append(parts, fmt.Sprintf("free camera pos %s target %s",
			formatVec(h.Pose.Position), formatVec(h.Pose.LookAt)))
	}
	if h.Panel != "" {
		parts = append(parts, h.Panel)
	}
	if h.Message != "" {
		parts = append(parts, h.Message)
	}
	return strings.Join(parts, " | ")
}

func formatVec(v [3]float32) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
