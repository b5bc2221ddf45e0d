package popmenu

import (
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/menu"
	"github.com/veandco/go-sdl2/sdl"
)

// baselineDPI is the density at which one dp equals one pixel.
const baselineDPI = 160.0

// sdlSurface hosts the menu tree over the SDL window.
type sdlSurface struct {
	window *internal.Window
	root   *menu.Node
}

func newSDLSurface(window *internal.Window) *sdlSurface {
	s := &sdlSurface{window: window}
	s.root = menu.NewSurfaceRoot(s.Size())
	return s
}

func (s *sdlSurface) Size() (int32, int32) {
	return s.window.GetWidth(), s.window.GetHeight()
}

func (s *sdlSurface) ContentRoot() *menu.Node {
	return s.root
}

// resize keeps the root bounds in step with the window.
func (s *sdlSurface) resize() {
	w, h := s.Size()
	s.root.Bounds.W = w
	s.root.Bounds.H = h
}

// sdlDensity reads the display DPI, falling back to the resolution based
// scale factor when the driver does not report one.
func sdlDensity(window *internal.Window) menu.Density {
	index, err := window.Window.GetDisplayIndex()
	if err == nil {
		_, hdpi, _, dpiErr := sdl.GetDisplayDPI(index)
		if dpiErr == nil && hdpi > 0 {
			return menu.Density(float64(hdpi) / baselineDPI)
		}
		err = dpiErr
	}

	scale := internal.GetScaleFactor()
	internal.GetInternalLogger().Debug("Display DPI unavailable, using scale factor", "scale", scale, "error", err)
	return menu.Density(scale)
}
