package constants

import (
	"os"
	"strings"
	"time"
)

const (
	EnvironmentEnvVar    = "ENVIRONMENT"
	BackgroundPathEnvVar = "BACKGROUND_PATH"

	// A held direction repeats after RepeatDelay, then every RepeatInterval.
	RepeatDelay    = 300 * time.Millisecond
	RepeatInterval = 120 * time.Millisecond
	// FrameDelay paces the event loop at roughly 60 frames per second.
	FrameDelay = 16 * time.Millisecond
)

// IsDevMode reports whether the menu runs on a desktop instead of the
// handheld, which switches the window to a fixed, movable size.
func IsDevMode() bool {
	return strings.EqualFold(os.Getenv(EnvironmentEnvVar), "DEV")
}

// VirtualButton is a controller-agnostic button. Physical keys, controller
// buttons, hats and axes are mapped onto these by the input mapping.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonL2
	VirtualButtonR1
	VirtualButtonR2
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

var virtualButtonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonL2:         "L2",
	VirtualButtonR1:         "R1",
	VirtualButtonR2:         "R2",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

func (vb VirtualButton) GetName() string {
	if name, ok := virtualButtonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

func (vb VirtualButton) IsDirectional() bool {
	return vb == VirtualButtonUp || vb == VirtualButtonDown ||
		vb == VirtualButtonLeft || vb == VirtualButtonRight
}
