package menu

import (
	"log/slog"
	"time"

	"go.uber.org/atomic"
)

// countdown fires fn once after Done has been called n times. With n == 0 it
// fires immediately.
type countdown struct {
	remaining *atomic.Int32
	fired     *atomic.Bool
	fn        func()
}

func newCountdown(n int, fn func()) *countdown {
	c := &countdown{
		remaining: atomic.NewInt32(int32(n)),
		fired:     atomic.NewBool(false),
		fn:        fn,
	}
	if n <= 0 {
		c.fire()
	}
	return c
}

func (c *countdown) Done() {
	if c.remaining.Dec() <= 0 {
		c.fire()
	}
}

func (c *countdown) fire() {
	if c.fired.CompareAndSwap(false, true) && c.fn != nil {
		c.fn()
	}
}

// Driver runs the entrance and exit animations of the menu's item nodes.
type Driver struct {
	springs  SpringSystem
	animator Animator
	logger   *slog.Logger

	activeSprings     []Spring
	activeTransitions []Transition
}

func NewDriver(springs SpringSystem, animator Animator, logger *slog.Logger) *Driver {
	if springs == nil {
		springs = NewSpringSystem()
	}
	if animator == nil {
		animator = NewTweenAnimator(AccelerateDecelerate)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Driver{springs: springs, animator: animator, logger: logger}
}

// AnimateIn springs every node from screenHeight up to its rest position.
// Each spring settles on its own; onAllSettled, when set, fires once after
// the last one has come to rest.
func (d *Driver) AnimateIn(nodes []*Node, screenHeight float64, tension, friction float64, onAllSettled func()) {
	cfg := SpringConfigFromOrigami(tension, friction)
	barrier := newCountdown(len(nodes), onAllSettled)

	for _, node := range nodes {
		node.SetTranslationY(screenHeight)

		spring := d.springs.CreateSpring()
		spring.SetCurrentValue(screenHeight)
		spring.SetConfig(cfg)
		spring.OnUpdate(func(value float64) {
			node.SetTranslationY(value)
		})

		settled := false
		spring.OnRest(func() {
			if settled {
				return
			}
			settled = true
			spring.Destroy()
			barrier.Done()
		})

		d.activeSprings = append(d.activeSprings, spring)
		spring.SetEndValue(0)
	}

	d.logger.Debug("Started entrance animation", "nodes", len(nodes), "tension", cfg.Tension, "friction", cfg.Friction)
}

// AnimateOut moves every node down to screenHeight over duration. onEach
// fires once per node as it finishes and onAll fires once after the last.
func (d *Driver) AnimateOut(nodes []*Node, screenHeight float64, duration time.Duration, onEach func(*Node), onAll func()) {
	barrier := newCountdown(len(nodes), onAll)

	for _, node := range nodes {
		transition := d.animator.TranslateY(node, screenHeight, duration, func() {
			if onEach != nil {
				onEach(node)
			}
			barrier.Done()
		})
		d.activeTransitions = append(d.activeTransitions, transition)
	}

	d.logger.Debug("Started exit animation", "nodes", len(nodes), "duration", duration)
}

// Advance forwards one frame of time to the spring system and the animator.
func (d *Driver) Advance(dt time.Duration) {
	d.springs.Advance(dt)
	d.animator.Advance(dt)
	d.compact()
}

func (d *Driver) Idle() bool {
	return d.springs.Idle() && d.animator.Idle()
}

// StopSprings destroys entrance springs that are still moving. Nodes keep
// the offset they had reached.
func (d *Driver) StopSprings() {
	for _, s := range d.activeSprings {
		s.Destroy()
	}
	d.activeSprings = nil
}

// Cancel stops all in-flight animations without firing completions.
func (d *Driver) Cancel() {
	d.StopSprings()
	for _, t := range d.activeTransitions {
		t.Cancel()
	}
	d.activeTransitions = nil
}

func (d *Driver) compact() {
	springs := d.activeSprings[:0]
	for _, s := range d.activeSprings {
		if !s.AtRest() {
			springs = append(springs, s)
		}
	}
	d.activeSprings = springs

	transitions := d.activeTransitions[:0]
	for _, t := range d.activeTransitions {
		if !t.Done() {
			transitions = append(transitions, t)
		}
	}
	d.activeTransitions = transitions
}
