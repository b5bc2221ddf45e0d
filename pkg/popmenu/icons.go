package popmenu

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/menu"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// iconLoader resolves item icons into textures once per menu. Failed loads
// are remembered so a broken file is not retried every frame.
type iconLoader struct {
	renderer *sdl.Renderer
	cache    *internal.TextureCache
	failed   map[int]bool
}

func newIconLoader(renderer *sdl.Renderer) *iconLoader {
	return &iconLoader{
		renderer: renderer,
		cache:    internal.NewTextureCache(),
		failed:   make(map[int]bool),
	}
}

func (l *iconLoader) texture(index int, icon menu.Icon, size int32) *sdl.Texture {
	if icon.IsZero() || l.failed[index] {
		return nil
	}

	key := "icon_" + strconv.Itoa(index) + "_" + strconv.Itoa(int(size))
	if t := l.cache.Get(key); t != nil {
		return t
	}

	data := icon.Bytes
	if len(data) == 0 {
		var err error
		data, err = os.ReadFile(icon.Filename)
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to read icon", "index", index, "file", icon.Filename, "error", err)
			l.failed[index] = true
			return nil
		}
	}

	w, h := icon.Width, icon.Height
	if w <= 0 || h <= 0 {
		w, h = size, size
	}

	t, err := loadImageTexture(l.renderer, data, w, h)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to load icon", "index", index, "error", err)
		l.failed[index] = true
		return nil
	}

	l.cache.Set(key, t)
	return t
}

func (l *iconLoader) destroy() {
	l.cache.Destroy()
}

// isSVG sniffs the first bytes for an SVG or XML prolog.
func isSVG(data []byte) bool {
	head := data[:min(len(data), 512)]
	return bytes.Contains(head, []byte("<svg")) || bytes.Contains(head, []byte("<?xml"))
}

// loadImageTexture loads a PNG, JPEG or SVG from bytes. SVGs are rasterized
// at width x height.
func loadImageTexture(renderer *sdl.Renderer, data []byte, width, height int32) (*sdl.Texture, error) {
	if isSVG(data) {
		return loadSVGTexture(renderer, data, width, height)
	}
	return loadRasterTexture(renderer, data)
}

func loadRasterTexture(renderer *sdl.Renderer, data []byte) (*sdl.Texture, error) {
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create RWops from image data: %w", err)
	}
	texture, err := img.LoadTextureRW(renderer, rw, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture from image data: %w", err)
	}
	return texture, nil
}

func rasterizeSVG(data []byte, width, height int32) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	if width <= 0 || height <= 0 {
		width, height = int32(icon.ViewBox.W), int32(icon.ViewBox.H)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), rgba, rgba.Bounds())
	raster := rasterx.NewDasher(int(width), int(height), scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(raster, 1.0)

	return rgba, nil
}

func loadSVGTexture(renderer *sdl.Renderer, data []byte, width, height int32) (*sdl.Texture, error) {
	rgba, err := rasterizeSVG(data, width, height)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("failed to encode SVG as PNG: %w", err)
	}

	return loadRasterTexture(renderer, buf.Bytes())
}
