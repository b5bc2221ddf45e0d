package popmenu

import (
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/i18n"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/menu"
	"github.com/veandco/go-sdl2/sdl"
)

// menuView draws a menu's attached tree every frame.
type menuView struct {
	menu   *menu.Menu
	icons  *iconLoader
	labels *internal.TextureCache
}

func newMenuView(m *menu.Menu, renderer *sdl.Renderer) *menuView {
	return &menuView{
		menu:   m,
		icons:  newIconLoader(renderer),
		labels: internal.NewTextureCache(),
	}
}

func (v *menuView) destroy() {
	v.icons.destroy()
	v.labels.Destroy()
}

func (v *menuView) render(window *internal.Window) {
	renderer := window.Renderer
	theme := internal.GetTheme()

	window.RenderBackground()

	layout := v.menu.Layout()
	if layout == nil || !layout.Root.Attached() {
		return
	}

	backdrop := theme.BackdropColor
	renderer.SetDrawColor(backdrop.R, backdrop.G, backdrop.B, backdrop.A)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})

	layout.Root.Walk(func(n *menu.Node) {
		switch n.Kind {
		case menu.NodeKindItem:
			v.renderItem(renderer, theme, n)
		case menu.NodeKindDismiss:
			v.renderDismiss(renderer, theme, n)
		}
	})

	v.renderHint(renderer, theme, layout)
}

func toSDLRect(r menu.Rect) *sdl.Rect {
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func (v *menuView) renderItem(renderer *sdl.Renderer, theme internal.Theme, n *menu.Node) {
	bounds := n.VisualBounds()
	rect := toSDLRect(bounds)

	focused := v.menu.IsShowing() && v.menu.Focus() == n.ItemIndex
	background, textColor := theme.AccentColor, theme.TextColor
	if focused {
		background, textColor = theme.HighlightColor, theme.HighlightedTextColor
	}

	radius := bounds.W / 8
	internal.DrawRoundedRect(renderer, rect, radius, background)

	padding := bounds.W / 10
	font := internal.Fonts.SmallFont
	labelHeight := int32(0)
	if font != nil && n.Item != nil && n.Item.Text != "" {
		labelHeight = int32(font.Height())
	}

	iconSize := internal.Max32(0, internal.Min32(bounds.W-2*padding, bounds.H-3*padding-labelHeight))
	if n.Item != nil && iconSize > 0 {
		if texture := v.icons.texture(n.ItemIndex, n.Item.Icon, iconSize); texture != nil {
			renderer.Copy(texture, nil, &sdl.Rect{
				X: bounds.X + (bounds.W-iconSize)/2,
				Y: bounds.Y + padding,
				W: iconSize,
				H: iconSize,
			})
		}
	}

	if labelHeight > 0 {
		y := bounds.Y + bounds.H - padding - labelHeight
		internal.RenderLabel(renderer, n.Item.Text, font, bounds.W-2*padding, bounds.X+padding, y, textColor, v.labels)
	}
}

func (v *menuView) renderDismiss(renderer *sdl.Renderer, theme internal.Theme, n *menu.Node) {
	bounds := n.VisualBounds()
	rect := toSDLRect(bounds)

	internal.DrawRoundedRect(renderer, rect, bounds.W/2, theme.AccentColor)
	internal.DrawCross(renderer, rect, internal.Max32(2, bounds.W/12), theme.ButtonLabelColor)

	font := internal.Fonts.TinyFont
	if font == nil {
		return
	}
	label := i18n.Localize(i18n.CloseLabel, nil)
	captionWidth := bounds.W * 4
	y := bounds.Y - int32(font.Height()) - bounds.H/4
	internal.RenderLabel(renderer, label, font, captionWidth, bounds.X+(bounds.W-captionWidth)/2, y, theme.HintColor, v.labels)
}

// renderHint draws the controller hint and item count centered above the grid.
func (v *menuView) renderHint(renderer *sdl.Renderer, theme internal.Theme, layout *menu.Layout) {
	font := internal.Fonts.TinyFont
	if font == nil || len(layout.Items) == 0 {
		return
	}

	top := layout.Items[0].VisualBounds().Y
	y := top - int32(font.Height()) - layout.Geometry.VerticalPadding
	if y < 0 {
		return
	}

	width := layout.Root.Bounds.W
	internal.RenderLabel(renderer, i18n.HintLine(len(layout.Items)), font, width, 0, y, theme.HintColor, v.labels)
}
