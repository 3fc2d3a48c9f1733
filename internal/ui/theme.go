package ui

import (
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/glaze-ui/glaze/internal/theme"
	"github.com/glaze-ui/glaze/internal/ui/widgets"
)

// NewTheme builds the widget theme for t, mapping the token set onto the
// material palette so stock material widgets match the custom ones.
func NewTheme(t theme.Theme) *widgets.Theme {
	th := material.NewTheme()

	th.Palette.Bg = t.BgPrimary
	th.Palette.Fg = t.TextPrimary
	th.Palette.ContrastBg = t.Accent
	th.Palette.ContrastFg = t.AccentText

	th.TextSize = unit.Sp(14)

	return &widgets.Theme{Theme: t, Material: th}
}

// Restyle keeps the shaper of prev (shaping caches are expensive to
// rebuild) and applies the palette of t.
func Restyle(prev *widgets.Theme, t theme.Theme) *widgets.Theme {
	next := NewTheme(t)
	if prev != nil && prev.Material != nil {
		next.Material.Shaper = prev.Material.Shaper
	}
	return next
}
