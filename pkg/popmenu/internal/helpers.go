package internal

import (
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const ellipsis = "..."

// TruncateToWidth shortens text rune by rune until measure reports it fits
// maxWidth, appending an ellipsis when anything was removed.
func TruncateToWidth(text string, maxWidth int32, measure func(string) int32) string {
	if text == "" || measure(text) <= maxWidth {
		return text
	}

	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := string(runes[:n]) + ellipsis
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}

	return ellipsis
}

// FontMeasure adapts a TTF font to TruncateToWidth.
func FontMeasure(font *ttf.Font) func(string) int32 {
	return func(s string) int32 {
		w, _, err := font.SizeUTF8(s)
		if err != nil {
			return 0
		}
		return int32(w)
	}
}

// RenderLabel draws a single line of text centered horizontally inside
// [x, x+maxWidth) with its top edge at y, caching the rendered texture.
func RenderLabel(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, cache *TextureCache) int32 {
	if text == "" || font == nil {
		return 0
	}

	text = TruncateToWidth(text, maxWidth, FontMeasure(font))
	key := labelCacheKey(text, color)

	texture := cache.Get(key)
	if texture == nil {
		surface, err := font.RenderUTF8Blended(text, color)
		if err != nil {
			GetInternalLogger().Debug("Failed to render label", "text", text, "error", err)
			return 0
		}
		texture, err = renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			GetInternalLogger().Debug("Failed to create label texture", "text", text, "error", err)
			return 0
		}
		cache.Set(key, texture)
	}

	_, _, w, h, _ := texture.Query()
	renderer.Copy(texture, nil, &sdl.Rect{X: x + (maxWidth-w)/2, Y: y, W: w, H: h})
	return h
}

func labelCacheKey(text string, color sdl.Color) string {
	return "label_" + text + "_" + string([]byte{color.R, color.G, color.B, color.A})
}

func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if radius <= 0 {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(rect)
		return
	}

	radius = Min32(radius, Min32(rect.W, rect.H)/2)

	gfx.BoxColor(
		renderer,
		rect.X+radius,
		rect.Y,
		rect.X+rect.W-radius,
		rect.Y+rect.H,
		color,
	)

	gfx.BoxColor(
		renderer,
		rect.X,
		rect.Y+radius,
		rect.X+radius,
		rect.Y+rect.H-radius,
		color,
	)
	gfx.BoxColor(
		renderer,
		rect.X+rect.W-radius,
		rect.Y+radius,
		rect.X+rect.W,
		rect.Y+rect.H-radius,
		color,
	)

	drawRoundedCorner(renderer, rect.X+radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, rect.X+radius, rect.Y+rect.H-radius, radius, color)
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+rect.H-radius, radius, color)
}

func drawRoundedCorner(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	gfx.FilledCircleColor(renderer, centerX, centerY, radius, color)
	gfx.AACircleColor(renderer, centerX, centerY, radius, color)

	// Large radii get extra AA rings to hide the stair-stepping
	if radius > 15 {
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
		gfx.AACircleColor(renderer, centerX, centerY, radius-2, color)
	} else if radius > 2 {
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
	}
}

// DrawCross renders an anti-aliased X centered in rect.
func DrawCross(renderer *sdl.Renderer, rect *sdl.Rect, thickness int32, color sdl.Color) {
	inset := rect.W / 3
	x1, y1 := rect.X+inset, rect.Y+inset
	x2, y2 := rect.X+rect.W-inset, rect.Y+rect.H-inset

	gfx.ThickLineColor(renderer, x1, y1, x2, y2, thickness, color)
	gfx.ThickLineColor(renderer, x1, y2, x2, y1, thickness, color)
}

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func HexToColor(hex uint32) sdl.Color {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return sdl.Color{R: r, G: g, B: b, A: 255}
}

// HexToColorAlpha reads an 0xAARRGGBB value.
func HexToColorAlpha(hex uint32) sdl.Color {
	c := HexToColor(hex)
	c.A = uint8((hex >> 24) & 0xFF)
	return c
}
