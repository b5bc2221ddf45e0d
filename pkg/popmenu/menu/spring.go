package menu

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig holds physical stiffness and damping for a unit mass.
type SpringConfig struct {
	Tension  float64
	Friction float64
}

// SpringConfigFromOrigami converts Origami/Quartz Composer coefficients,
// which the menu config is expressed in, to physical values.
func SpringConfigFromOrigami(tension, friction float64) SpringConfig {
	cfg := SpringConfig{}
	if tension != 0 {
		cfg.Tension = (tension-30)*3.62 + 194
	}
	if friction != 0 {
		cfg.Friction = (friction-8)*3 + 25
	}
	return cfg
}

// AngularFrequency and DampingRatio describe the config the way harmonica
// expects it.
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(math.Max(c.Tension, 0))
}

func (c SpringConfig) DampingRatio() float64 {
	w := c.AngularFrequency()
	if w == 0 {
		return 0
	}
	return c.Friction / (2 * w)
}

// Spring moves a value from its current value toward its end value and
// reports every intermediate value through OnUpdate listeners.
type Spring interface {
	SetCurrentValue(value float64)
	SetConfig(cfg SpringConfig)
	SetEndValue(value float64)
	OnUpdate(fn func(value float64))
	OnRest(fn func())
	CurrentValue() float64
	AtRest() bool
	Destroy()
}

// SpringSystem owns springs and integrates them when the host advances it.
type SpringSystem interface {
	CreateSpring() Spring
	Advance(dt time.Duration)
	Idle() bool
}

const (
	solverFPS = 120

	// Frames longer than this are clamped so a stalled host does not
	// integrate a huge step at once.
	maxFrameTime = 64 * time.Millisecond

	restSpeedThreshold        = 0.005
	restDisplacementThreshold = 0.005
)

var solverStep = time.Second / solverFPS

var defaultSpringConfig = SpringConfigFromOrigami(40, 7)

// HarmonicaSystem integrates springs with harmonica's damped harmonic
// oscillator at a fixed solver rate.
type HarmonicaSystem struct {
	springs     []*harmonicaSpring
	accumulator time.Duration
}

func NewSpringSystem() *HarmonicaSystem {
	return &HarmonicaSystem{}
}

func (hs *HarmonicaSystem) CreateSpring() Spring {
	s := &harmonicaSpring{system: hs, resting: true}
	s.SetConfig(defaultSpringConfig)
	hs.springs = append(hs.springs, s)
	return s
}

func (hs *HarmonicaSystem) Idle() bool {
	for _, s := range hs.springs {
		if s.active() {
			return false
		}
	}
	return true
}

func (hs *HarmonicaSystem) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if dt > maxFrameTime {
		dt = maxFrameTime
	}

	hs.accumulator += dt
	steps := int(hs.accumulator / solverStep)
	hs.accumulator -= time.Duration(steps) * solverStep

	if steps == 0 {
		return
	}

	springs := make([]*harmonicaSpring, len(hs.springs))
	copy(springs, hs.springs)

	for _, s := range springs {
		if !s.active() {
			continue
		}
		for i := 0; i < steps && !s.resting; i++ {
			s.step()
		}
		s.notifyUpdate()
		if s.resting {
			s.notifyRest()
		}
	}

	hs.prune()
}

// ActiveSprings counts springs still moving.
func (hs *HarmonicaSystem) ActiveSprings() int {
	count := 0
	for _, s := range hs.springs {
		if s.active() {
			count++
		}
	}
	return count
}

func (hs *HarmonicaSystem) prune() {
	kept := hs.springs[:0]
	for _, s := range hs.springs {
		if !s.destroyed {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(hs.springs); i++ {
		hs.springs[i] = nil
	}
	hs.springs = kept
}

type harmonicaSpring struct {
	system *HarmonicaSystem
	config SpringConfig
	motion harmonica.Spring

	current  float64
	velocity float64
	end      float64

	resting   bool
	destroyed bool

	updateListeners []func(float64)
	restListeners   []func()
}

func (s *harmonicaSpring) SetConfig(cfg SpringConfig) {
	s.config = cfg
	s.motion = harmonica.NewSpring(harmonica.FPS(solverFPS), cfg.AngularFrequency(), cfg.DampingRatio())
}

// SetCurrentValue places the spring at rest on value; the end value moves
// with it until SetEndValue is called.
func (s *harmonicaSpring) SetCurrentValue(value float64) {
	s.current = value
	s.end = value
	s.velocity = 0
	s.resting = true
	s.notifyUpdate()
}

func (s *harmonicaSpring) SetEndValue(value float64) {
	if s.destroyed {
		return
	}
	s.end = value
	s.resting = s.isAtRest()
	if s.resting {
		s.notifyRest()
	}
}

func (s *harmonicaSpring) OnUpdate(fn func(value float64)) {
	s.updateListeners = append(s.updateListeners, fn)
}

func (s *harmonicaSpring) OnRest(fn func()) {
	s.restListeners = append(s.restListeners, fn)
}

func (s *harmonicaSpring) CurrentValue() float64 {
	return s.current
}

func (s *harmonicaSpring) AtRest() bool {
	return s.resting
}

// Destroy detaches the spring from its system; it stops ticking and drops
// its listeners.
func (s *harmonicaSpring) Destroy() {
	s.destroyed = true
	s.updateListeners = nil
	s.restListeners = nil
}

func (s *harmonicaSpring) active() bool {
	return !s.destroyed && !s.resting
}

func (s *harmonicaSpring) isAtRest() bool {
	if s.config.Tension <= 0 {
		return true
	}
	return math.Abs(s.velocity) <= restSpeedThreshold &&
		math.Abs(s.end-s.current) <= restDisplacementThreshold
}

func (s *harmonicaSpring) step() {
	s.current, s.velocity = s.motion.Update(s.current, s.velocity, s.end)
	if s.isAtRest() {
		s.current = s.end
		s.velocity = 0
		s.resting = true
	}
}

func (s *harmonicaSpring) notifyUpdate() {
	for _, fn := range s.updateListeners {
		fn(s.current)
	}
}

func (s *harmonicaSpring) notifyRest() {
	for _, fn := range s.restListeners {
		fn()
	}
}
