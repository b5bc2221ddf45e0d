package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

const FallbackFontEnvVar = "FALLBACK_FONT"

var ErrNoFont = errors.New("no usable font")

type FontSizes struct {
	Large  int `toml:"large"`
	Medium int `toml:"medium"`
	Small  int `toml:"small"`
	Tiny   int `toml:"tiny"`
}

var DefaultFontSizes = FontSizes{
	Large:  50,
	Medium: 44,
	Small:  34,
	Tiny:   24,
}

var Fonts fontsManager

type fontsManager struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
	TinyFont   *ttf.Font
}

const referenceWidth int32 = 1024

// ScaleForWidth grows linearly up to the reference width and damps growth
// to 75% above it.
func ScaleForWidth(screenWidth int32) float32 {
	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	return scaleFactor
}

func CalculateFontSizeForResolution(baseSize int, screenWidth int32) int {
	return int(float32(baseSize) * ScaleForWidth(screenWidth))
}

// GetScaleFactor returns the scale factor based on current screen width
func GetScaleFactor() float32 {
	return ScaleForWidth(GetWindow().GetWidth())
}

// FontCandidates lists the font paths tried in order: the theme font, then
// the FALLBACK_FONT override.
func FontCandidates(theme Theme) []string {
	var paths []string
	if theme.FontPath != "" {
		paths = append(paths, theme.FontPath)
	}
	if fallback := os.Getenv(FallbackFontEnvVar); fallback != "" && fallback != theme.FontPath {
		paths = append(paths, fallback)
	}
	return paths
}

func initFonts(sizes FontSizes) error {
	screenWidth := GetWindow().GetWidth()
	candidates := FontCandidates(GetTheme())

	calcSize := func(base int) int {
		return CalculateFontSizeForResolution(base, screenWidth)
	}

	var err error
	var loaded [4]*ttf.Font
	for i, size := range []int{sizes.Large, sizes.Medium, sizes.Small, sizes.Tiny} {
		loaded[i], err = loadFont(candidates, calcSize(size))
		if err != nil {
			for _, f := range loaded[:i] {
				f.Close()
			}
			return err
		}
	}

	Fonts = fontsManager{
		LargeFont:  loaded[0],
		MediumFont: loaded[1],
		SmallFont:  loaded[2],
		TinyFont:   loaded[3],
	}
	return nil
}

func loadFont(candidates []string, size int) (*ttf.Font, error) {
	var lastErr error
	for _, path := range candidates {
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font, nil
		}
		GetInternalLogger().Debug("Failed to load font", "path", path, "size", size, "error", err)
		lastErr = err
	}

	if lastErr == nil {
		return nil, fmt.Errorf("%w: set a theme font or %s", ErrNoFont, FallbackFontEnvVar)
	}
	return nil, fmt.Errorf("%w: %v", ErrNoFont, lastErr)
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont, Fonts.TinyFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fontsManager{}
}
