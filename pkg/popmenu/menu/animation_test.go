package menu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attachedLayout(t *testing.T, n int) (*Layout, *fakeSurface) {
	t.Helper()
	surface := newFakeSurface(1080, 1920)
	layout, err := BuildLayout(testItems(n), DefaultConfig(), 1080, 1920, Density(1))
	require.NoError(t, err)
	surface.ContentRoot().AddChild(layout.Root)
	return layout, surface
}

func TestCountdown(t *testing.T) {
	fired := 0
	c := newCountdown(3, func() { fired++ })
	c.Done()
	c.Done()
	assert.Zero(t, fired)
	c.Done()
	assert.Equal(t, 1, fired)
	c.Done()
	assert.Equal(t, 1, fired)

	immediate := 0
	newCountdown(0, func() { immediate++ })
	assert.Equal(t, 1, immediate)

	assert.NotPanics(t, func() { newCountdown(0, nil) })
}

func TestDriver_AnimateInStartsOffScreen(t *testing.T) {
	layout, _ := attachedLayout(t, 4)
	springs := &fakeSprings{}
	driver := NewDriver(springs, &fakeAnimator{}, discardLogger())

	driver.AnimateIn(layout.Items, 1920, DefaultTension, DefaultFriction, nil)

	require.Len(t, springs.springs, 4)
	for i, node := range layout.Items {
		assert.Equal(t, 1920.0, node.TranslationY, "item %d", i)
		assert.Equal(t, 0.0, springs.springs[i].end)
		assert.InDelta(t, 230.2, springs.springs[i].config.Tension, 1e-9)
	}
	assert.False(t, driver.Idle())

	driver.Advance(frame)
	for _, node := range layout.Items {
		assert.Equal(t, 0.0, node.TranslationY)
	}
	assert.True(t, driver.Idle())
}

func TestDriver_AnimateInAggregateCompletion(t *testing.T) {
	layout, _ := attachedLayout(t, 5)
	driver := NewDriver(&fakeSprings{}, &fakeAnimator{}, discardLogger())

	settled := 0
	driver.AnimateIn(layout.Items, 1920, DefaultTension, DefaultFriction, func() { settled++ })
	assert.Zero(t, settled)

	driver.Advance(frame)
	assert.Equal(t, 1, settled)

	driver.Advance(frame)
	assert.Equal(t, 1, settled)
}

func TestDriver_AnimateInWithRealSprings(t *testing.T) {
	layout, _ := attachedLayout(t, 3)
	driver := NewDriver(NewSpringSystem(), NewTweenAnimator(nil), discardLogger())

	settled := false
	driver.AnimateIn(layout.Items, 1920, DefaultTension, DefaultFriction, func() { settled = true })

	for i := 0; i < 1000 && !driver.Idle(); i++ {
		driver.Advance(frame)
	}

	assert.True(t, settled)
	for _, node := range layout.Items {
		assert.Equal(t, 0.0, node.TranslationY)
	}
}

func TestDriver_AnimateOutCompletionFiresOncePerNodeAndOnceOverall(t *testing.T) {
	layout, _ := attachedLayout(t, 7)
	animator := &fakeAnimator{}
	driver := NewDriver(&fakeSprings{}, animator, discardLogger())

	var each []*Node
	all := 0
	driver.AnimateOut(layout.Items, 1920, 300*time.Millisecond,
		func(n *Node) { each = append(each, n) },
		func() { all++ })

	assert.Equal(t, 7, animator.started)
	assert.Zero(t, all)

	driver.Advance(frame)

	assert.ElementsMatch(t, layout.Items, each)
	assert.Equal(t, 1, all)
	for _, node := range layout.Items {
		assert.Equal(t, 1920.0, node.TranslationY)
	}
}

func TestDriver_AnimateOutWithoutNodesCompletesImmediately(t *testing.T) {
	driver := NewDriver(&fakeSprings{}, &fakeAnimator{}, discardLogger())

	done := false
	driver.AnimateOut(nil, 1920, time.Second, nil, func() { done = true })

	assert.True(t, done)
}

func TestDriver_CancelSuppressesCompletion(t *testing.T) {
	layout, _ := attachedLayout(t, 3)
	springs := &fakeSprings{}
	driver := NewDriver(springs, &fakeAnimator{}, discardLogger())

	settled, exited := false, false
	driver.AnimateIn(layout.Items, 1920, DefaultTension, DefaultFriction, func() { settled = true })
	driver.AnimateOut(layout.Items, 1920, time.Second, nil, func() { exited = true })

	driver.Cancel()
	driver.Advance(frame)

	assert.False(t, settled)
	assert.False(t, exited)
	assert.True(t, driver.Idle())
}

func TestDriver_UpdatesOnDetachedNodesAreDropped(t *testing.T) {
	layout, _ := attachedLayout(t, 2)
	driver := NewDriver(&fakeSprings{}, &fakeAnimator{}, discardLogger())

	driver.AnimateIn(layout.Items, 1920, DefaultTension, DefaultFriction, nil)
	layout.Root.Detach()

	assert.NotPanics(t, func() { driver.Advance(frame) })
	for _, node := range layout.Items {
		assert.Equal(t, 1920.0, node.TranslationY)
	}
}
