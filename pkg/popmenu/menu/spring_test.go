package menu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

func TestSpringConfigFromOrigami(t *testing.T) {
	tests := []struct {
		name              string
		tension, friction float64
		want              SpringConfig
	}{
		{name: "defaults", tension: 40, friction: 5, want: SpringConfig{Tension: 230.2, Friction: 16}},
		{name: "origami default", tension: 40, friction: 7, want: SpringConfig{Tension: 230.2, Friction: 22}},
		{name: "zero stays zero", tension: 0, friction: 0, want: SpringConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpringConfigFromOrigami(tt.tension, tt.friction)
			assert.InDelta(t, tt.want.Tension, got.Tension, 1e-9)
			assert.InDelta(t, tt.want.Friction, got.Friction, 1e-9)
		})
	}
}

func TestSpringConfig_HarmonicaParameters(t *testing.T) {
	cfg := SpringConfig{Tension: 100, Friction: 10}
	assert.InDelta(t, 10.0, cfg.AngularFrequency(), 1e-9)
	assert.InDelta(t, 0.5, cfg.DampingRatio(), 1e-9)

	assert.Zero(t, SpringConfig{}.DampingRatio())
}

func runUntilIdle(t *testing.T, system *HarmonicaSystem, limit time.Duration) time.Duration {
	t.Helper()
	var elapsed time.Duration
	for !system.Idle() {
		require.Less(t, elapsed, limit, "spring did not settle")
		system.Advance(frame)
		elapsed += frame
	}
	return elapsed
}

func TestHarmonicaSystem_SettlesOnEndValue(t *testing.T) {
	system := NewSpringSystem()
	spring := system.CreateSpring()
	spring.SetCurrentValue(1920)
	spring.SetConfig(SpringConfigFromOrigami(DefaultTension, DefaultFriction))

	var values []float64
	rests := 0
	spring.OnUpdate(func(v float64) { values = append(values, v) })
	spring.OnRest(func() { rests++ })

	assert.True(t, system.Idle())
	spring.SetEndValue(0)
	assert.False(t, system.Idle())
	assert.Equal(t, 1, system.ActiveSprings())

	runUntilIdle(t, system, 10*time.Second)

	assert.True(t, spring.AtRest())
	assert.Equal(t, 0.0, spring.CurrentValue())
	assert.Equal(t, 1, rests)
	require.NotEmpty(t, values)
	assert.Equal(t, 0.0, values[len(values)-1])
	assert.Less(t, values[0], 1920.0)
}

func TestHarmonicaSystem_UnderdampedDefaultsOvershoot(t *testing.T) {
	system := NewSpringSystem()
	spring := system.CreateSpring()
	spring.SetCurrentValue(1000)
	spring.SetConfig(SpringConfigFromOrigami(DefaultTension, DefaultFriction))

	lowest := 1000.0
	spring.OnUpdate(func(v float64) { lowest = min(lowest, v) })
	spring.SetEndValue(0)

	runUntilIdle(t, system, 10*time.Second)

	assert.Less(t, lowest, 0.0)
}

func TestHarmonicaSystem_AccumulatesShortFrames(t *testing.T) {
	system := NewSpringSystem()
	spring := system.CreateSpring()
	spring.SetCurrentValue(100)

	updates := 0
	spring.OnUpdate(func(float64) { updates++ })
	spring.SetEndValue(0)

	system.Advance(time.Millisecond)
	system.Advance(time.Millisecond)
	assert.Zero(t, updates)
	assert.Equal(t, 100.0, spring.CurrentValue())

	system.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, updates)
	assert.Less(t, spring.CurrentValue(), 100.0)
}

func TestHarmonicaSystem_DestroyStopsUpdates(t *testing.T) {
	system := NewSpringSystem()
	spring := system.CreateSpring()
	spring.SetCurrentValue(100)

	updates := 0
	spring.OnUpdate(func(float64) { updates++ })
	spring.SetEndValue(0)
	system.Advance(frame)
	require.Equal(t, 1, updates)

	spring.Destroy()
	system.Advance(frame)

	assert.Equal(t, 1, updates)
	assert.True(t, system.Idle())
	assert.Zero(t, system.ActiveSprings())
}

func TestHarmonicaSystem_EndValueEqualToCurrentRestsImmediately(t *testing.T) {
	system := NewSpringSystem()
	spring := system.CreateSpring()
	spring.SetCurrentValue(0)

	rested := false
	spring.OnRest(func() { rested = true })
	spring.SetEndValue(0)

	assert.True(t, rested)
	assert.True(t, system.Idle())
}
