package menu

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal/logging"
)

type State int

const (
	StateHidden State = iota
	StateShowing
	// StateDismissing covers the exit animation: dismissal has been
	// requested but the tree is still attached.
	StateDismissing
)

func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateShowing:
		return "showing"
	case StateDismissing:
		return "dismissing"
	default:
		return "unknown"
	}
}

// Surface is the host the menu attaches its tree to.
type Surface interface {
	Size() (width, height int32)
	ContentRoot() *Node
}

type ItemClickFunc func(m *Menu, index int)

type Options struct {
	Items       []Item
	Config      Config
	OnItemClick ItemClickFunc

	Springs  SpringSystem
	Animator Animator
	Density  DensityConverter
	Logger   *slog.Logger
}

func DefaultOptions(items []Item) Options {
	return Options{
		Items:   items,
		Config:  DefaultConfig(),
		Density: Density(1),
	}
}

// Menu is the popup grid controller. All methods must be called from the
// thread that owns the host surface.
type Menu struct {
	host        Surface
	items       []Item
	config      Config
	onItemClick ItemClickFunc
	density     DensityConverter
	driver      *Driver
	logger      *slog.Logger

	state  State
	layout *Layout
	focus  int
}

// New validates the configuration against the host's current size.
func New(host Surface, options Options) (*Menu, error) {
	if host == nil {
		return nil, &ConfigurationError{Field: "host", Value: nil, Reason: "a host surface is required"}
	}
	if err := options.Config.Validate(); err != nil {
		return nil, err
	}

	if options.Density == nil {
		options.Density = Density(1)
	}
	if options.Logger == nil {
		options.Logger = logging.GetInternalLogger()
	}

	width, height := host.Size()
	if _, err := ComputeGeometry(len(options.Items), options.Config, width, height, options.Density); err != nil {
		return nil, err
	}

	items := make([]Item, len(options.Items))
	copy(items, options.Items)

	return &Menu{
		host:        host,
		items:       items,
		config:      options.Config,
		onItemClick: options.OnItemClick,
		density:     options.Density,
		driver:      NewDriver(options.Springs, options.Animator, options.Logger),
		logger:      options.Logger,
		state:       StateHidden,
		focus:       -1,
	}, nil
}

// Show rebuilds the layout, attaches it to the host and springs the items
// into place. Animations still running from an earlier Show or Hide are
// cancelled first.
func (m *Menu) Show() error {
	width, height := m.host.Size()

	layout, err := BuildLayout(m.items, m.config, width, height, m.density)
	if err != nil {
		m.logger.Error("Failed to build menu layout", "width", width, "height", height, "error", err)
		return err
	}

	m.driver.Cancel()
	if m.layout != nil {
		m.layout.Root.Detach()
	}

	m.layout = layout
	m.wireClicks(layout)
	m.host.ContentRoot().AddChild(layout.Root)

	m.driver.AnimateIn(layout.Items, float64(height), m.config.Tension, m.config.Friction, func() {
		m.logger.Debug("Menu items settled", "items", len(layout.Items))
	})

	m.state = StateShowing
	if len(m.items) > 0 {
		m.focus = 0
	}

	m.logger.Debug("Menu shown",
		"items", len(m.items),
		"rows", layout.Geometry.RowCount,
		"item_width", layout.Geometry.ItemWidth,
		"top_margin", layout.Geometry.TopMargin)

	return nil
}

// Hide starts the exit animation and detaches the tree once every item has
// left the screen. IsShowing reports false from this call on, while State
// stays StateDismissing until the tree is detached.
func (m *Menu) Hide() {
	if m.state != StateShowing || m.layout == nil {
		return
	}

	m.state = StateDismissing
	layout := m.layout
	_, height := m.host.Size()

	m.driver.StopSprings()
	m.driver.AnimateOut(layout.Items, float64(height), m.config.Duration, nil, func() {
		m.detach(layout)
	})

	m.logger.Debug("Menu dismissal requested", "duration", m.config.Duration)
}

func (m *Menu) detach(layout *Layout) {
	layout.Root.Detach()

	if m.layout == layout && m.state == StateDismissing {
		m.state = StateHidden
		m.logger.Debug("Menu detached")
	}
}

func (m *Menu) IsShowing() bool {
	return m.state == StateShowing
}

func (m *Menu) State() State {
	return m.state
}

// DispatchItemClick notifies the listener without dismissing the menu.
// It returns false for an index outside the menu.
func (m *Menu) DispatchItemClick(index int) bool {
	if index < 0 || index >= len(m.items) {
		return false
	}
	if m.onItemClick != nil {
		m.onItemClick(m, index)
	}
	return true
}

// HandleItemClick dispatches the click and then dismisses the menu. Clicks
// that arrive while the menu is not showing are dropped.
func (m *Menu) HandleItemClick(index int) {
	if m.state != StateShowing {
		return
	}
	if !m.DispatchItemClick(index) {
		return
	}
	m.Hide()
}

func (m *Menu) HandleDismiss() {
	m.Hide()
}

func (m *Menu) wireClicks(layout *Layout) {
	for _, node := range layout.Items {
		index := node.ItemIndex
		node.OnClick = func() {
			m.HandleItemClick(index)
		}
	}
	layout.Dismiss.OnClick = m.HandleDismiss
}

// Advance moves all running animations forward by dt.
func (m *Menu) Advance(dt time.Duration) {
	m.driver.Advance(dt)
}

// Animating reports whether any entrance or exit animation is in flight.
func (m *Menu) Animating() bool {
	return !m.driver.Idle()
}

// Layout returns the most recently built layout, or nil before Show.
func (m *Menu) Layout() *Layout {
	return m.layout
}

func (m *Menu) Items() []Item {
	return m.items
}

func (m *Menu) Config() Config {
	return m.config
}

// ClickAt routes a pointer click at surface coordinates to the node under
// it. It reports whether a node handled the click.
func (m *Menu) ClickAt(x, y int32) bool {
	if m.layout == nil || !m.layout.Root.Attached() {
		return false
	}
	hit := m.layout.Root.HitTest(x, y)
	if hit == nil {
		return false
	}
	return hit.Click()
}

// ItemAt returns the index of the item under (x, y), or -1.
func (m *Menu) ItemAt(x, y int32) int {
	if m.layout == nil {
		return -1
	}
	hit := m.layout.Grid.HitTest(x, y)
	if hit == nil || hit.Kind != NodeKindItem {
		return -1
	}
	return hit.ItemIndex
}
