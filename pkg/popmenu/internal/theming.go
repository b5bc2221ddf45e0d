package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

type Theme struct {
	HighlightColor       sdl.Color // Focused cell background
	AccentColor          sdl.Color // Cell background, dismiss affordance
	ButtonLabelColor     sdl.Color // Dismiss affordance glyph
	TextColor            sdl.Color // Cell labels
	HighlightedTextColor sdl.Color // Label on the focused cell
	HintColor            sdl.Color // Dismiss caption
	BackgroundColor      sdl.Color // Screen background behind the popup
	BackdropColor        sdl.Color // Translucent overlay drawn under the grid
	FontPath             string
	BackgroundImagePath  string
}

var currentTheme Theme

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}
