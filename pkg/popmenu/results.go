package popmenu

import (
	"errors"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/menu"
)

var (
	ErrCancelled      = errors.New("operation cancelled by user")
	ErrNotInitialized = errors.New("popmenu: Init has not been called")
)

// PopMenuResult describes the item the user picked.
type PopMenuResult struct {
	Index int
	Item  menu.Item
}
