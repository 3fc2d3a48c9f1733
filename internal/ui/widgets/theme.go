package widgets

import (
	"gioui.org/widget/material"

	"github.com/glaze-ui/glaze/internal/theme"
)

// Theme pairs the glaze tokens with the material theme used for text
// shaping and stock material widgets. Widgets read tokens from it on every
// frame; swapping the Theme pointer restyles everything on the next frame.
type Theme struct {
	theme.Theme
	Material *material.Theme
}
