package menu

import (
	"log/slog"
	"time"
)

type fakeSurface struct {
	root          *Node
	width, height int32
}

func newFakeSurface(width, height int32) *fakeSurface {
	return &fakeSurface{root: NewSurfaceRoot(width, height), width: width, height: height}
}

func (s *fakeSurface) Size() (int32, int32) {
	return s.width, s.height
}

func (s *fakeSurface) ContentRoot() *Node {
	return s.root
}

// fakeSprings settles springs the moment their end value is set when
// synchronous, otherwise on the next Advance.
type fakeSprings struct {
	synchronous bool
	springs     []*fakeSpring
}

type fakeSpring struct {
	system    *fakeSprings
	config    SpringConfig
	current   float64
	end       float64
	resting   bool
	destroyed bool
	updates   []func(float64)
	rests     []func()
}

func (f *fakeSprings) CreateSpring() Spring {
	s := &fakeSpring{system: f, resting: true}
	f.springs = append(f.springs, s)
	return s
}

func (f *fakeSprings) Advance(time.Duration) {
	for _, s := range f.springs {
		s.settle()
	}
}

func (f *fakeSprings) Idle() bool {
	for _, s := range f.springs {
		if !s.resting && !s.destroyed {
			return false
		}
	}
	return true
}

func (s *fakeSpring) SetCurrentValue(value float64) {
	s.current = value
	s.end = value
	s.resting = true
}

func (s *fakeSpring) SetConfig(cfg SpringConfig) { s.config = cfg }

func (s *fakeSpring) SetEndValue(value float64) {
	s.end = value
	s.resting = false
	if s.system.synchronous {
		s.settle()
	}
}

func (s *fakeSpring) OnUpdate(fn func(float64)) { s.updates = append(s.updates, fn) }
func (s *fakeSpring) OnRest(fn func())          { s.rests = append(s.rests, fn) }
func (s *fakeSpring) CurrentValue() float64     { return s.current }
func (s *fakeSpring) AtRest() bool              { return s.resting }

func (s *fakeSpring) Destroy() {
	s.destroyed = true
	s.updates = nil
	s.rests = nil
}

func (s *fakeSpring) settle() {
	if s.destroyed || s.resting {
		return
	}
	s.current = s.end
	s.resting = true
	for _, fn := range s.updates {
		fn(s.current)
	}
	for _, fn := range s.rests {
		fn()
	}
}

// fakeAnimator completes transitions immediately when synchronous,
// otherwise on the next Advance.
type fakeAnimator struct {
	synchronous bool
	pending     []*fakeTransition
	started     int
}

type fakeTransition struct {
	node       *Node
	to         float64
	onComplete func()
	done       bool
}

func (a *fakeAnimator) TranslateY(node *Node, to float64, _ time.Duration, onComplete func()) Transition {
	a.started++
	tr := &fakeTransition{node: node, to: to, onComplete: onComplete}
	if a.synchronous {
		tr.finish()
	} else {
		a.pending = append(a.pending, tr)
	}
	return tr
}

func (a *fakeAnimator) Advance(time.Duration) {
	pending := a.pending
	a.pending = nil
	for _, tr := range pending {
		tr.finish()
	}
}

func (a *fakeAnimator) Idle() bool {
	for _, tr := range a.pending {
		if !tr.done {
			return false
		}
	}
	return true
}

func (t *fakeTransition) Cancel() {
	t.done = true
	t.onComplete = nil
}

func (t *fakeTransition) Done() bool { return t.done }

func (t *fakeTransition) finish() {
	if t.done {
		return
	}
	t.done = true
	t.node.SetTranslationY(t.to)
	if t.onComplete != nil {
		t.onComplete()
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Text: string(rune('A' + i)), Payload: i}
	}
	return items
}
