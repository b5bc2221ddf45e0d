package menu

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("invalid menu configuration")
	ErrLayout        = errors.New("menu does not fit on screen")
)

// ConfigurationError reports a configuration value the menu cannot work with.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrConfiguration, e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// LayoutError reports a screen that is too narrow for the requested grid.
type LayoutError struct {
	ScreenWidth int32
	ColumnCount int
	PaddingPx   int32
	ItemWidthPx int32
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s: item width %dpx for screen width %dpx with %d columns and %dpx padding",
		ErrLayout, e.ItemWidthPx, e.ScreenWidth, e.ColumnCount, e.PaddingPx)
}

func (e *LayoutError) Unwrap() error {
	return ErrLayout
}
