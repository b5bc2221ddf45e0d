package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenu_MoveFocus(t *testing.T) {
	// 7 items in 3 columns:
	//   0 1 2
	//   3 4 5
	//   6
	tests := []struct {
		name      string
		start     int
		direction Direction
		want      int
	}{
		{name: "right", start: 0, direction: DirectionRight, want: 1},
		{name: "right wraps to first", start: 6, direction: DirectionRight, want: 0},
		{name: "left wraps to last", start: 0, direction: DirectionLeft, want: 6},
		{name: "down", start: 1, direction: DirectionDown, want: 4},
		{name: "down onto short row", start: 3, direction: DirectionDown, want: 6},
		{name: "down wraps to top of column", start: 5, direction: DirectionDown, want: 2},
		{name: "up", start: 4, direction: DirectionUp, want: 1},
		{name: "up wraps to last row", start: 0, direction: DirectionUp, want: 6},
		{name: "up wraps to nearest item on short row", start: 2, direction: DirectionUp, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestMenu(t, 7, false)
			require.NoError(t, m.Show())
			require.True(t, m.SetFocus(tt.start))

			assert.Equal(t, tt.want, m.MoveFocus(tt.direction))
			assert.Equal(t, tt.want, m.Focus())
		})
	}
}

func TestMenu_MoveFocusIgnoredWhenHidden(t *testing.T) {
	m, _, _ := newTestMenu(t, 4, false)

	assert.Equal(t, -1, m.MoveFocus(DirectionRight))
	assert.False(t, m.SetFocus(4))
}

func TestMenu_ActivateFocused(t *testing.T) {
	m, _, recorder := newTestMenu(t, 4, false)
	require.NoError(t, m.Show())

	assert.Equal(t, 3, m.MoveFocus(DirectionDown))
	m.ActivateFocused()

	assert.Equal(t, []int{3}, recorder.indices)
	assert.Equal(t, StateHidden, m.State())
}

func TestMenu_ActivateFocusedWithoutItems(t *testing.T) {
	m, _, recorder := newTestMenu(t, 0, false)
	require.NoError(t, m.Show())

	m.ActivateFocused()

	assert.Empty(t, recorder.indices)
	assert.Equal(t, StateShowing, m.State())
}
