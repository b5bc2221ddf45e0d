package menu

type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Focus returns the index of the focused item, or -1 when nothing is
// focused.
func (m *Menu) Focus() int {
	return m.focus
}

func (m *Menu) SetFocus(index int) bool {
	if index < 0 || index >= len(m.items) {
		return false
	}
	m.focus = index
	return true
}

// MoveFocus walks the grid. Left and right wrap through the whole item
// list; up and down wrap within the column, landing on the last row's
// nearest item when that row is short.
func (m *Menu) MoveFocus(direction Direction) int {
	count := len(m.items)
	if count == 0 || m.state != StateShowing {
		return m.focus
	}
	if m.focus < 0 {
		m.focus = 0
		return m.focus
	}

	cols := m.config.ColumnCount

	switch direction {
	case DirectionRight:
		m.focus = (m.focus + 1) % count
	case DirectionLeft:
		m.focus = (m.focus - 1 + count) % count
	case DirectionUp:
		if m.focus >= cols {
			m.focus -= cols
		} else {
			lastRowStart := ((count - 1) / cols) * cols
			m.focus = min(lastRowStart+m.focus, count-1)
		}
	case DirectionDown:
		if m.focus+cols < count {
			m.focus += cols
		} else {
			m.focus = m.focus % cols
		}
	}

	return m.focus
}

// ActivateFocused behaves like a click on the focused item.
func (m *Menu) ActivateFocused() {
	if m.focus < 0 {
		return
	}
	m.HandleItemClick(m.focus)
}
