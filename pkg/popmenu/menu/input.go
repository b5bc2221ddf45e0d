package menu

import (
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/constants"
)

type Action int

const (
	ActionNone Action = iota
	ActionFocusUp
	ActionFocusDown
	ActionFocusLeft
	ActionFocusRight
	ActionActivate
	ActionDismiss
)

// ActionForButton maps a virtual button press onto a menu action.
func ActionForButton(button constants.VirtualButton) Action {
	switch button {
	case constants.VirtualButtonUp:
		return ActionFocusUp
	case constants.VirtualButtonDown:
		return ActionFocusDown
	case constants.VirtualButtonLeft:
		return ActionFocusLeft
	case constants.VirtualButtonRight:
		return ActionFocusRight
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		return ActionActivate
	case constants.VirtualButtonB, constants.VirtualButtonMenu:
		return ActionDismiss
	default:
		return ActionNone
	}
}

// HandleButton applies a button press and reports whether the menu used it.
// Presses are ignored unless the menu is showing.
func (m *Menu) HandleButton(button constants.VirtualButton) bool {
	if m.state != StateShowing {
		return false
	}

	switch ActionForButton(button) {
	case ActionFocusUp:
		m.MoveFocus(DirectionUp)
	case ActionFocusDown:
		m.MoveFocus(DirectionDown)
	case ActionFocusLeft:
		m.MoveFocus(DirectionLeft)
	case ActionFocusRight:
		m.MoveFocus(DirectionRight)
	case ActionActivate:
		m.ActivateFocused()
	case ActionDismiss:
		m.HandleDismiss()
	default:
		return false
	}
	return true
}
