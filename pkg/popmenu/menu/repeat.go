package menu

import (
	"time"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/constants"
)

// Repeater re-fires a held direction: once after Delay, then every
// Interval until it is released. Pressing another direction replaces the
// held one.
type Repeater struct {
	Delay    time.Duration
	Interval time.Duration

	held        constants.VirtualButton
	last        time.Time
	hasRepeated bool
}

func NewRepeater() *Repeater {
	return &Repeater{Delay: constants.RepeatDelay, Interval: constants.RepeatInterval}
}

// Press records a button going down. Non-directional buttons are ignored.
func (r *Repeater) Press(button constants.VirtualButton, now time.Time) {
	if !button.IsDirectional() {
		return
	}
	r.held = button
	r.last = now
	r.hasRepeated = false
}

func (r *Repeater) Release(button constants.VirtualButton) {
	if button == r.held {
		r.held = constants.VirtualButtonUnassigned
		r.hasRepeated = false
	}
}

// Due returns the held direction when a repeat is owed at now.
func (r *Repeater) Due(now time.Time) (constants.VirtualButton, bool) {
	if r.held == constants.VirtualButtonUnassigned {
		return constants.VirtualButtonUnassigned, false
	}

	threshold := r.Interval
	if !r.hasRepeated {
		threshold = r.Delay
	}
	if now.Sub(r.last) < threshold {
		return constants.VirtualButtonUnassigned, false
	}

	r.last = now
	r.hasRepeated = true
	return r.held, true
}
