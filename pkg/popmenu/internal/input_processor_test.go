package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/constants"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal/logging"
)

func newTestProcessor(t *testing.T) *Processor {
	t.Helper()
	logging.SetLogDir(t.TempDir())

	mapping := DefaultInputMapping()
	mapping.JoystickAxisMap = map[uint8]JoystickAxisMapping{
		1: {PositiveButton: constants.VirtualButtonDown, NegativeButton: constants.VirtualButtonUp, Threshold: 16000},
	}
	mapping.JoystickButtonMap = map[uint8]constants.VirtualButton{0: constants.VirtualButtonA}
	return NewInputProcessor(mapping)
}

func TestProcessor_IgnoresJoyEventsFromControllerInstance(t *testing.T) {
	ip := newTestProcessor(t)

	// Instance IDs keep growing across reconnects while device indices restart at 0.
	ip.RegisterGameControllerJoystick(3)

	assert.Nil(t, ip.ProcessSDLEvent(&sdl.JoyButtonEvent{Type: sdl.JOYBUTTONDOWN, Which: 3, Button: 0}))
	assert.Nil(t, ip.ProcessSDLEvent(&sdl.JoyAxisEvent{Which: 3, Axis: 1, Value: 30000}))
	assert.Nil(t, ip.ProcessSDLEvent(&sdl.JoyHatEvent{Which: 3, Hat: 0, Value: sdl.HAT_UP}))

	evt := ip.ProcessSDLEvent(&sdl.JoyButtonEvent{Type: sdl.JOYBUTTONDOWN, Which: 0, Button: 0})
	require.NotNil(t, evt)
	assert.Equal(t, constants.VirtualButtonA, evt.Button)
	assert.True(t, evt.Pressed)
	assert.Equal(t, SourceJoystick, evt.Source)
}

func TestProcessor_AxisStateIsPerSource(t *testing.T) {
	ip := newTestProcessor(t)

	press := ip.ProcessSDLEvent(&sdl.ControllerAxisEvent{Which: 0, Axis: 1, Value: 30000})
	require.NotNil(t, press)
	assert.Equal(t, constants.VirtualButtonDown, press.Button)
	assert.True(t, press.Pressed)
	assert.Equal(t, SourceController, press.Source)

	// A raw joystick at rest on the same axis number must not release the
	// controller's held direction.
	assert.Nil(t, ip.ProcessSDLEvent(&sdl.JoyAxisEvent{Which: 1, Axis: 1, Value: 0}))

	joyPress := ip.ProcessSDLEvent(&sdl.JoyAxisEvent{Which: 1, Axis: 1, Value: -30000})
	require.NotNil(t, joyPress)
	assert.Equal(t, constants.VirtualButtonUp, joyPress.Button)
	assert.Equal(t, SourceJoystick, joyPress.Source)

	release := ip.ProcessSDLEvent(&sdl.ControllerAxisEvent{Which: 0, Axis: 1, Value: 0})
	require.NotNil(t, release)
	assert.Equal(t, constants.VirtualButtonDown, release.Button)
	assert.False(t, release.Pressed)
}

func TestProcessor_AxisFlipQueuesPress(t *testing.T) {
	ip := newTestProcessor(t)

	require.NotNil(t, ip.ProcessSDLEvent(&sdl.JoyAxisEvent{Which: 0, Axis: 1, Value: 30000}))

	release := ip.ProcessSDLEvent(&sdl.JoyAxisEvent{Which: 0, Axis: 1, Value: -30000})
	require.NotNil(t, release)
	assert.Equal(t, constants.VirtualButtonDown, release.Button)
	assert.False(t, release.Pressed)

	press := ip.ProcessSDLEvent(nil)
	require.NotNil(t, press)
	assert.Equal(t, constants.VirtualButtonUp, press.Button)
	assert.True(t, press.Pressed)

	assert.Nil(t, ip.ProcessSDLEvent(nil))
}

func TestProcessor_HatStateIsPerJoystick(t *testing.T) {
	ip := newTestProcessor(t)

	require.NotNil(t, ip.ProcessSDLEvent(&sdl.JoyHatEvent{Which: 0, Hat: 0, Value: sdl.HAT_LEFT}))

	press := ip.ProcessSDLEvent(&sdl.JoyHatEvent{Which: 1, Hat: 0, Value: sdl.HAT_LEFT})
	require.NotNil(t, press)
	assert.Equal(t, constants.VirtualButtonLeft, press.Button)
	assert.True(t, press.Pressed)
}

func TestProcessor_ForgetJoystick(t *testing.T) {
	ip := newTestProcessor(t)
	ip.RegisterGameControllerJoystick(5)
	require.NotNil(t, ip.ProcessSDLEvent(&sdl.ControllerAxisEvent{Which: 5, Axis: 1, Value: 30000}))

	ip.ForgetJoystick(5)

	assert.False(t, ip.IsGameControllerJoystick(5))
	// The stale held direction is gone, so returning to rest emits nothing.
	assert.Nil(t, ip.ProcessSDLEvent(&sdl.ControllerAxisEvent{Which: 5, Axis: 1, Value: 0}))
}
