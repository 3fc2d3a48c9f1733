// Package theme defines the immutable colour and spacing tokens shared by
// every glaze surface.
//
// A Theme is a plain value. Consumers hold their own copy, so there is no
// way for one widget to change the palette seen by another; a different look
// means constructing a different Theme:
//
//	th, err := theme.New(theme.Options{Accent: "#4f8cff"})
//	if err != nil {
//		return err
//	}
//	header.Layout(gtx, th, sections)
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"reflect"
	"sync"

	"gioui.org/unit"
)

var (
	// ErrInvalidColor is returned by New when a colour token cannot be parsed.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidSize is returned by New when a sizing token is negative.
	ErrInvalidSize = errors.New("invalid size")
)

// Theme is the resolved token set. Build it with New or Default; a literal
// Theme{} skips validation and paints everything transparent.
type Theme struct {
	BgPrimary   color.NRGBA
	BgSecondary color.NRGBA
	BgTertiary  color.NRGBA

	Surface        color.NRGBA
	SurfaceVariant color.NRGBA
	SurfaceDim     color.NRGBA

	Border         color.NRGBA
	BorderFocus    color.NRGBA
	BorderHover    color.NRGBA
	Outline        color.NRGBA
	OutlineVariant color.NRGBA

	TextPrimary   color.NRGBA
	TextSecondary color.NRGBA
	TextTertiary  color.NRGBA
	TextDark      color.NRGBA
	TextDisabled  color.NRGBA

	Accent          color.NRGBA
	AccentHover     color.NRGBA
	AccentPressed   color.NRGBA
	AccentContainer color.NRGBA
	// AccentText is drawn on top of Accent.
	AccentText      color.NRGBA
	AccentHoverText color.NRGBA

	Secondary          color.NRGBA
	SecondaryHover     color.NRGBA
	SecondaryPressed   color.NRGBA
	SecondaryContainer color.NRGBA

	Tertiary          color.NRGBA
	TertiaryHover     color.NRGBA
	TertiaryPressed   color.NRGBA
	TertiaryContainer color.NRGBA

	Success   color.NRGBA
	SuccessBg color.NRGBA
	Warning   color.NRGBA
	WarningBg color.NRGBA
	Danger    color.NRGBA
	DangerBg  color.NRGBA
	Info      color.NRGBA
	InfoBg    color.NRGBA

	SelectionBg    color.NRGBA
	HoverOverlay   color.NRGBA
	PressedOverlay color.NRGBA

	TableHeaderBg   color.NRGBA
	TableRowAlt     color.NRGBA
	TableRowHover   color.NRGBA
	ShadowColor     color.NRGBA
	ShadowElevation color.NRGBA

	BorderRadius   unit.Dp
	BorderRadiusSm unit.Dp
	BorderRadiusLg unit.Dp
	BorderWidth    unit.Dp

	Spacing   unit.Dp
	SpacingSm unit.Dp
	SpacingLg unit.Dp
	SpacingXl unit.Dp

	PaddingV  unit.Dp
	PaddingH  unit.Dp
	PaddingSm unit.Dp
	PaddingLg unit.Dp
}

// Options overrides individual tokens. Every field is optional: an empty
// colour or a zero size falls back to the default palette, so a size token
// cannot be overridden to 0; use 1 for the thinnest border. Negative sizes
// are rejected by New. Field names match Theme; the mapstructure tags
// double as configuration keys.
type Options struct {
	BgPrimary   string `mapstructure:"bg_primary"`
	BgSecondary string `mapstructure:"bg_secondary"`
	BgTertiary  string `mapstructure:"bg_tertiary"`

	Surface        string `mapstructure:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant"`
	SurfaceDim     string `mapstructure:"surface_dim"`

	Border         string `mapstructure:"border"`
	BorderFocus    string `mapstructure:"border_focus"`
	BorderHover    string `mapstructure:"border_hover"`
	Outline        string `mapstructure:"outline"`
	OutlineVariant string `mapstructure:"outline_variant"`

	TextPrimary   string `mapstructure:"text_primary"`
	TextSecondary string `mapstructure:"text_secondary"`
	TextTertiary  string `mapstructure:"text_tertiary"`
	TextDark      string `mapstructure:"text_dark"`
	TextDisabled  string `mapstructure:"text_disabled"`

	Accent          string `mapstructure:"accent"`
	AccentHover     string `mapstructure:"accent_hover"`
	AccentPressed   string `mapstructure:"accent_pressed"`
	AccentContainer string `mapstructure:"accent_container"`
	AccentText      string `mapstructure:"accent_text"`
	AccentHoverText string `mapstructure:"accent_hover_text"`

	Secondary          string `mapstructure:"secondary"`
	SecondaryHover     string `mapstructure:"secondary_hover"`
	SecondaryPressed   string `mapstructure:"secondary_pressed"`
	SecondaryContainer string `mapstructure:"secondary_container"`

	Tertiary          string `mapstructure:"tertiary"`
	TertiaryHover     string `mapstructure:"tertiary_hover"`
	TertiaryPressed   string `mapstructure:"tertiary_pressed"`
	TertiaryContainer string `mapstructure:"tertiary_container"`

	Success   string `mapstructure:"success"`
	SuccessBg string `mapstructure:"success_bg"`
	Warning   string `mapstructure:"warning"`
	WarningBg string `mapstructure:"warning_bg"`
	Danger    string `mapstructure:"danger"`
	DangerBg  string `mapstructure:"danger_bg"`
	Info      string `mapstructure:"info"`
	InfoBg    string `mapstructure:"info_bg"`

	SelectionBg    string `mapstructure:"selection_bg"`
	HoverOverlay   string `mapstructure:"hover_overlay"`
	PressedOverlay string `mapstructure:"pressed_overlay"`

	TableHeaderBg   string `mapstructure:"table_header_bg"`
	TableRowAlt     string `mapstructure:"table_row_alt"`
	TableRowHover   string `mapstructure:"table_row_hover"`
	ShadowColor     string `mapstructure:"shadow_color"`
	ShadowElevation string `mapstructure:"shadow_elevation"`

	BorderRadius   int `mapstructure:"border_radius"`
	BorderRadiusSm int `mapstructure:"border_radius_sm"`
	BorderRadiusLg int `mapstructure:"border_radius_lg"`
	BorderWidth    int `mapstructure:"border_width"`

	Spacing   int `mapstructure:"spacing"`
	SpacingSm int `mapstructure:"spacing_sm"`
	SpacingLg int `mapstructure:"spacing_lg"`
	SpacingXl int `mapstructure:"spacing_xl"`

	PaddingV  int `mapstructure:"padding_v"`
	PaddingH  int `mapstructure:"padding_h"`
	PaddingSm int `mapstructure:"padding_sm"`
	PaddingLg int `mapstructure:"padding_lg"`
}

// defaults is the stock dark palette.
var defaults = Options{
	BgPrimary:   "#1a1a2e",
	BgSecondary: "#16213e",
	BgTertiary:  "#0f172a",

	Surface:        "#16213e",
	SurfaceVariant: "#1e2a4a",
	SurfaceDim:     "#0f172a",

	Border:         "#0f3460",
	BorderFocus:    "#e94560",
	BorderHover:    "#1e4d7b",
	Outline:        "#4a5568",
	OutlineVariant: "#2d3748",

	TextPrimary:   "#eee",
	TextSecondary: "#888",
	TextTertiary:  "#666",
	TextDark:      "#333",
	TextDisabled:  "#555",

	Accent:          "#e94560",
	AccentHover:     "#ff6b6b",
	AccentPressed:   "#c73e54",
	AccentContainer: "#2d1520",
	AccentText:      "#ffffff",
	AccentHoverText: "#ffffff",

	Secondary:          "#64b5f6",
	SecondaryHover:     "#90caf9",
	SecondaryPressed:   "#42a5f5",
	SecondaryContainer: "#1a2f3a",

	Tertiary:          "#9c27b0",
	TertiaryHover:     "#ba68c8",
	TertiaryPressed:   "#8e24aa",
	TertiaryContainer: "#2a1a2e",

	Success:   "#4caf50",
	SuccessBg: "#e8f5e9",
	Warning:   "#ff9800",
	WarningBg: "#fff3e0",
	Danger:    "#d32f2f",
	DangerBg:  "#ffebee",
	Info:      "#2196f3",
	InfoBg:    "#e3f2fd",

	SelectionBg:    "#e3f2fd",
	HoverOverlay:   "rgba(255, 255, 255, 0.05)",
	PressedOverlay: "rgba(0, 0, 0, 0.1)",

	TableHeaderBg:   "#1e2a4a",
	TableRowAlt:     "#1e2a4a",
	TableRowHover:   "#253559",
	ShadowColor:     "rgba(0, 0, 0, 0.3)",
	ShadowElevation: "rgba(0, 0, 0, 0.2)",

	BorderRadius:   8,
	BorderRadiusSm: 6,
	BorderRadiusLg: 12,
	BorderWidth:    1,

	Spacing:   16,
	SpacingSm: 8,
	SpacingLg: 24,
	SpacingXl: 32,

	PaddingV:  8,
	PaddingH:  14,
	PaddingSm: 6,
	PaddingLg: 12,
}

var defaultTheme = sync.OnceValue(func() Theme {
	t, err := New(Options{})
	if err != nil {
		panic(fmt.Sprintf("theme: default palette is invalid: %v", err))
	}
	return t
})

// Default returns the process-wide default theme.
func Default() Theme {
	return defaultTheme()
}

// New resolves o against the default palette. The first malformed token
// aborts construction; the error names the offending key.
func New(o Options) (Theme, error) {
	var t Theme
	ov := reflect.ValueOf(o)
	dv := reflect.ValueOf(defaults)
	tv := reflect.ValueOf(&t).Elem()
	ot := ov.Type()

	for i := 0; i < ot.NumField(); i++ {
		f := ot.Field(i)
		key := f.Tag.Get("mapstructure")
		dst := tv.FieldByName(f.Name)

		switch f.Type.Kind() {
		case reflect.String:
			raw := ov.Field(i).String()
			if raw == "" {
				raw = dv.Field(i).String()
			}
			c, err := ParseColor(raw)
			if err != nil {
				return Theme{}, fmt.Errorf("theme token %s: %w", key, err)
			}
			dst.Set(reflect.ValueOf(c))
		case reflect.Int:
			n := ov.Field(i).Int()
			if n < 0 {
				return Theme{}, fmt.Errorf("theme token %s: %w: %d", key, ErrInvalidSize, n)
			}
			if n == 0 {
				n = dv.Field(i).Int()
			}
			dst.Set(reflect.ValueOf(unit.Dp(n)))
		}
	}
	return t, nil
}

// MustNew is like New but panics on error. Intended for package-level
// literals whose values are known to be valid.
func MustNew(o Options) Theme {
	t, err := New(o)
	if err != nil {
		panic(err)
	}
	return t
}

// TokenNames lists the configuration key of every token, in declaration
// order.
func TokenNames() []string {
	ot := reflect.TypeOf(Options{})
	names := make([]string, 0, ot.NumField())
	for i := 0; i < ot.NumField(); i++ {
		names = append(names, ot.Field(i).Tag.Get("mapstructure"))
	}
	return names
}

// IsColorToken reports whether the named token holds a colour rather than a
// size.
func IsColorToken(name string) bool {
	ot := reflect.TypeOf(Options{})
	for i := 0; i < ot.NumField(); i++ {
		f := ot.Field(i)
		if f.Tag.Get("mapstructure") == name {
			return f.Type.Kind() == reflect.String
		}
	}
	return false
}

// Merge returns o with every non-empty field of over applied on top.
func (o Options) Merge(over Options) Options {
	ov := reflect.ValueOf(over)
	rv := reflect.ValueOf(&o).Elem()
	for i := 0; i < ov.NumField(); i++ {
		if !ov.Field(i).IsZero() {
			rv.Field(i).Set(ov.Field(i))
		}
	}
	return o
}
