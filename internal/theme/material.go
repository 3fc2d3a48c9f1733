package theme

import "github.com/glaze-ui/glaze/internal/palette"

// FromPalette maps a generated scheme onto the token set. Status colours
// keep their defaults so success/warning/danger read the same under every
// wallpaper.
func FromPalette(p palette.Palette) (Theme, error) {
	return New(PaletteOptions(p))
}

// PaletteOptions is FromPalette without validation, for callers that want
// to layer further overrides on top before calling New.
func PaletteOptions(p palette.Palette) Options {
	return Options{
		BgPrimary:   p.Background,
		BgSecondary: p.Surface,
		BgTertiary:  palette.AdjustBrightness(p.Background, 0.8),

		Surface:        p.Surface,
		SurfaceVariant: p.SurfaceVariant,
		SurfaceDim:     palette.AdjustBrightness(p.Surface, 0.85),

		Border:         p.Outline,
		BorderFocus:    p.Primary,
		BorderHover:    palette.AdjustBrightness(p.Outline, 1.3),
		Outline:        p.Outline,
		OutlineVariant: palette.AdjustBrightness(p.Outline, 0.7),

		TextPrimary:   p.OnBackground,
		TextSecondary: p.OnSurfaceVariant,
		TextTertiary:  palette.AdjustBrightness(p.OnSurfaceVariant, 0.8),
		TextDark:      p.OnPrimaryContainer,
		TextDisabled:  palette.AdjustBrightness(p.OnSurfaceVariant, 0.5),

		Accent:          p.Primary,
		AccentHover:     palette.AdjustBrightness(p.Primary, 1.2),
		AccentPressed:   palette.AdjustBrightness(p.Primary, 0.8),
		AccentContainer: p.PrimaryContainer,
		AccentText:      p.OnPrimary,
		AccentHoverText: p.OnPrimary,

		Secondary:          p.Secondary,
		SecondaryHover:     palette.AdjustBrightness(p.Secondary, 1.2),
		SecondaryPressed:   palette.AdjustBrightness(p.Secondary, 0.8),
		SecondaryContainer: p.SecondaryContainer,

		Tertiary:          p.Tertiary,
		TertiaryHover:     palette.AdjustBrightness(p.Tertiary, 1.2),
		TertiaryPressed:   palette.AdjustBrightness(p.Tertiary, 0.8),
		TertiaryContainer: p.TertiaryContainer,

		SelectionBg: p.PrimaryContainer,

		TableHeaderBg: p.SurfaceVariant,
		TableRowAlt:   p.SurfaceVariant,
		TableRowHover: palette.AdjustBrightness(p.SurfaceVariant, 1.2),
	}
}
