package menu

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/constants"
	"github.com/stretchr/testify/assert"
)

func TestRepeater(t *testing.T) {
	r := &Repeater{Delay: 300 * time.Millisecond, Interval: 100 * time.Millisecond}
	start := time.Unix(0, 0)

	_, due := r.Due(start)
	assert.False(t, due)

	r.Press(constants.VirtualButtonRight, start)

	_, due = r.Due(start.Add(299 * time.Millisecond))
	assert.False(t, due)

	button, due := r.Due(start.Add(300 * time.Millisecond))
	assert.True(t, due)
	assert.Equal(t, constants.VirtualButtonRight, button)

	_, due = r.Due(start.Add(350 * time.Millisecond))
	assert.False(t, due)

	_, due = r.Due(start.Add(400 * time.Millisecond))
	assert.True(t, due)

	r.Release(constants.VirtualButtonRight)
	_, due = r.Due(start.Add(time.Second))
	assert.False(t, due)
}

func TestRepeater_IgnoresNonDirectional(t *testing.T) {
	r := NewRepeater()
	now := time.Unix(0, 0)

	r.Press(constants.VirtualButtonA, now)

	_, due := r.Due(now.Add(time.Hour))
	assert.False(t, due)
}

func TestRepeater_NewDirectionReplacesHeld(t *testing.T) {
	r := NewRepeater()
	now := time.Unix(0, 0)

	r.Press(constants.VirtualButtonUp, now)
	r.Press(constants.VirtualButtonLeft, now)
	r.Release(constants.VirtualButtonUp)

	button, due := r.Due(now.Add(constants.RepeatDelay))
	assert.True(t, due)
	assert.Equal(t, constants.VirtualButtonLeft, button)
}
