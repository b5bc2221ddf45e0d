package popmenu

import (
	"time"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/constants"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/menu"
	"github.com/veandco/go-sdl2/sdl"
)

// maxFrameDelta keeps a stalled frame from teleporting the animations.
const maxFrameDelta = 100 * time.Millisecond

type PopMenuOptions struct {
	Items  []menu.Item
	Config menu.Config
	// InitialFocus is the item focused once the menu opens.
	InitialFocus int
	// FocusFollowsPointer moves focus to the item under the mouse.
	FocusFollowsPointer bool
	// OnItemClick runs before the menu dismisses itself.
	OnItemClick func(index int, item menu.Item)
}

// DefaultPopMenuOptions reads POPMENU_CONFIG when set, otherwise uses the
// built-in defaults.
func DefaultPopMenuOptions(items []menu.Item) PopMenuOptions {
	cfg, err := menu.ConfigFromEnv()
	if err != nil {
		internal.GetInternalLogger().Warn("Ignoring menu config", "path_env", menu.ConfigPathEnvVar, "error", err)
		cfg = menu.DefaultConfig()
	}

	return PopMenuOptions{
		Items:               items,
		Config:              cfg,
		FocusFollowsPointer: true,
	}
}

// PopMenu shows the grid and blocks until it has been dismissed and its exit
// animation has finished. It returns ErrCancelled when the user dismissed
// the menu without choosing an item.
func PopMenu(options PopMenuOptions) (*PopMenuResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, ErrNotInitialized
	}
	renderer := window.Renderer
	logger := internal.GetInternalLogger()

	surface := newSDLSurface(window)

	var result *PopMenuResult

	menuOptions := menu.DefaultOptions(options.Items)
	menuOptions.Config = options.Config
	menuOptions.Density = sdlDensity(window)
	menuOptions.Logger = logger
	menuOptions.OnItemClick = func(m *menu.Menu, index int) {
		item := m.Items()[index]
		result = &PopMenuResult{Index: index, Item: item}
		if options.OnItemClick != nil {
			options.OnItemClick(index, item)
		}
	}

	m, err := menu.New(surface, menuOptions)
	if err != nil {
		return nil, err
	}

	view := newMenuView(m, renderer)
	defer view.destroy()

	if err := m.Show(); err != nil {
		return nil, err
	}
	m.SetFocus(options.InitialFocus)

	processor := internal.GetInputProcessor()
	repeater := menu.NewRepeater()
	last := time.Now()

	for m.State() != menu.StateHidden {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				m.HandleDismiss()
			case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.ControllerDeviceEvent,
				*sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent:
				for inputEvent := processor.ProcessSDLEvent(event); inputEvent != nil; inputEvent = processor.ProcessSDLEvent(nil) {
					if inputEvent.Pressed {
						m.HandleButton(inputEvent.Button)
						repeater.Press(inputEvent.Button, time.Now())
					} else {
						repeater.Release(inputEvent.Button)
					}
				}
			case *sdl.MouseButtonEvent:
				if e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_LEFT {
					m.ClickAt(e.X, e.Y)
				}
			case *sdl.MouseMotionEvent:
				if options.FocusFollowsPointer && m.IsShowing() {
					if index := m.ItemAt(e.X, e.Y); index >= 0 {
						m.SetFocus(index)
					}
				}
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					surface.resize()
					if m.IsShowing() {
						focus := m.Focus()
						if err := m.Show(); err != nil {
							logger.Error("Failed to relayout menu after resize", "error", err)
							m.HandleDismiss()
						} else {
							m.SetFocus(focus)
						}
					}
				}
			}
		}

		now := time.Now()
		if button, due := repeater.Due(now); due {
			m.HandleButton(button)
		}
		m.Advance(min(now.Sub(last), maxFrameDelta))
		last = now

		view.render(window)
		renderer.Present()
		sdl.Delay(uint32(constants.FrameDelay / time.Millisecond))
	}

	if result == nil {
		return nil, ErrCancelled
	}
	return result, nil
}
