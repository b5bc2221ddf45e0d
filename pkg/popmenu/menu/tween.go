package menu

import (
	"math"
	"time"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

func Linear(t float64) float64 {
	return t
}

// AccelerateDecelerate starts and ends slowly, speeding up in the middle.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// Transition is a running fixed-duration animation.
type Transition interface {
	Cancel()
	Done() bool
}

// Animator runs fixed-duration translations on nodes.
type Animator interface {
	TranslateY(node *Node, to float64, duration time.Duration, onComplete func()) Transition
	Advance(dt time.Duration)
	Idle() bool
}

// TweenAnimator interpolates node translations frame by frame.
type TweenAnimator struct {
	easing Easing
	tweens []*tween
}

func NewTweenAnimator(easing Easing) *TweenAnimator {
	if easing == nil {
		easing = AccelerateDecelerate
	}
	return &TweenAnimator{easing: easing}
}

type tween struct {
	node       *Node
	from, to   float64
	duration   time.Duration
	elapsed    time.Duration
	onComplete func()
	done       bool
}

func (tw *tween) Cancel() {
	tw.done = true
	tw.onComplete = nil
}

func (tw *tween) Done() bool {
	return tw.done
}

// TranslateY animates node from its current offset to `to`. A zero duration
// completes on the next Advance.
func (a *TweenAnimator) TranslateY(node *Node, to float64, duration time.Duration, onComplete func()) Transition {
	tw := &tween{
		node:       node,
		from:       node.TranslationY,
		to:         to,
		duration:   duration,
		onComplete: onComplete,
	}
	a.tweens = append(a.tweens, tw)
	return tw
}

func (a *TweenAnimator) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}

	tweens := make([]*tween, len(a.tweens))
	copy(tweens, a.tweens)

	for _, tw := range tweens {
		if tw.done {
			continue
		}

		tw.elapsed += dt
		progress := 1.0
		if tw.duration > 0 && tw.elapsed < tw.duration {
			progress = float64(tw.elapsed) / float64(tw.duration)
		}

		tw.node.SetTranslationY(tw.from + (tw.to-tw.from)*a.easing(progress))

		if progress >= 1 {
			tw.done = true
			if tw.onComplete != nil {
				tw.onComplete()
			}
		}
	}

	kept := a.tweens[:0]
	for _, tw := range a.tweens {
		if !tw.done {
			kept = append(kept, tw)
		}
	}
	for i := len(kept); i < len(a.tweens); i++ {
		a.tweens[i] = nil
	}
	a.tweens = kept
}

func (a *TweenAnimator) Idle() bool {
	for _, tw := range a.tweens {
		if !tw.done {
			return false
		}
	}
	return true
}
