package theme

import (
	"errors"
	"image/color"
	"reflect"
	"testing"

	"gioui.org/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glaze-ui/glaze/internal/palette"
)

func TestDefaultPalette(t *testing.T) {
	th := Default()

	assert.Equal(t, color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}, th.BgPrimary)
	assert.Equal(t, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}, th.TextPrimary)
	assert.Equal(t, color.NRGBA{R: 0xe9, G: 0x45, B: 0x60, A: 0xff}, th.Accent)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 13}, th.HoverOverlay)
	assert.Equal(t, unit.Dp(12), th.BorderRadiusLg)
	assert.Equal(t, unit.Dp(1), th.BorderWidth)
	assert.Equal(t, unit.Dp(14), th.PaddingH)
}

func TestDefaultIsImmutable(t *testing.T) {
	first := Default()
	first.Accent = color.NRGBA{A: 0xff}
	first.BorderRadius = 99

	second := Default()
	assert.Equal(t, color.NRGBA{R: 0xe9, G: 0x45, B: 0x60, A: 0xff}, second.Accent)
	assert.Equal(t, unit.Dp(8), second.BorderRadius)
}

func TestNewOverrides(t *testing.T) {
	th, err := New(Options{Accent: "#4f8cff", BorderRadiusLg: 20})
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{R: 0x4f, G: 0x8c, B: 0xff, A: 0xff}, th.Accent)
	assert.Equal(t, unit.Dp(20), th.BorderRadiusLg)

	// Untouched tokens keep their defaults.
	def := Default()
	assert.Equal(t, def.BgPrimary, th.BgPrimary)
	assert.Equal(t, def.BorderRadius, th.BorderRadius)
}

func TestNewRejectsInvalidColors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		key  string
	}{
		{name: "word", opts: Options{Accent: "not-a-color"}, key: "accent"},
		{name: "bad hex digit", opts: Options{BgPrimary: "#12345g"}, key: "bg_primary"},
		{name: "wrong length", opts: Options{Border: "#12345"}, key: "border"},
		{name: "rgba out of range", opts: Options{HoverOverlay: "rgba(256, 0, 0, 0.5)"}, key: "hover_overlay"},
		{name: "alpha out of range", opts: Options{ShadowColor: "rgba(0, 0, 0, 1.5)"}, key: "shadow_color"},
		{name: "rgb arity", opts: Options{TextPrimary: "rgb(1, 2)"}, key: "text_primary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidColor), "got %v", err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestNewRejectsEveryColorToken(t *testing.T) {
	for _, name := range TokenNames() {
		if !IsColorToken(name) {
			continue
		}
		t.Run(name, func(t *testing.T) {
			var o Options
			ov := reflect.ValueOf(&o).Elem()
			ot := ov.Type()
			for i := 0; i < ot.NumField(); i++ {
				if ot.Field(i).Tag.Get("mapstructure") == name {
					ov.Field(i).SetString("not-a-color")
				}
			}
			_, err := New(o)
			assert.ErrorIs(t, err, ErrInvalidColor)
		})
	}
}

func TestNewRejectsNegativeSize(t *testing.T) {
	_, err := New(Options{BorderRadius: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Contains(t, err.Error(), "border_radius")
}

func TestNewZeroSizeFallsBackToDefault(t *testing.T) {
	th, err := New(Options{BorderWidth: 0, PaddingSm: 0, PaddingLg: 20})
	require.NoError(t, err)
	assert.Equal(t, Default().BorderWidth, th.BorderWidth)
	assert.Equal(t, Default().PaddingSm, th.PaddingSm)
	assert.Equal(t, unit.Dp(20), th.PaddingLg)

	merged := Options{BorderWidth: 3}.Merge(Options{BorderWidth: 0})
	assert.Equal(t, 3, merged.BorderWidth, "a zero override leaves the base size")
}

func TestOptionsMirrorTheme(t *testing.T) {
	ot := reflect.TypeOf(Options{})
	tt := reflect.TypeOf(Theme{})
	require.Equal(t, ot.NumField(), tt.NumField())
	for i := 0; i < ot.NumField(); i++ {
		f, ok := tt.FieldByName(ot.Field(i).Name)
		require.True(t, ok, "Theme has no field %s", ot.Field(i).Name)
		switch ot.Field(i).Type.Kind() {
		case reflect.String:
			assert.Equal(t, reflect.TypeOf(color.NRGBA{}), f.Type, f.Name)
		case reflect.Int:
			assert.Equal(t, reflect.TypeOf(unit.Dp(0)), f.Type, f.Name)
		default:
			t.Fatalf("unexpected option kind for %s", f.Name)
		}
	}
}

func TestTokenNames(t *testing.T) {
	names := TokenNames()
	assert.Contains(t, names, "accent")
	assert.Contains(t, names, "table_row_hover")
	assert.Contains(t, names, "padding_lg")
	assert.True(t, IsColorToken("accent"))
	assert.False(t, IsColorToken("padding_lg"))
	assert.False(t, IsColorToken("nope"))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{in: "#fff", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#1A1A2E", want: color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}},
		{in: "#11223380", want: color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}},
		{in: " rgb(1, 2, 3) ", want: color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}},
		{in: "rgba(0, 0, 0, 0.3)", want: color.NRGBA{A: 77}},
		{in: "rgba(10,20,30,1)", want: color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestCSS(t *testing.T) {
	assert.Equal(t, "#e94560", CSS(color.NRGBA{R: 0xe9, G: 0x45, B: 0x60, A: 0xff}))
	assert.Equal(t, "rgba(0, 0, 0, 0.30)", CSS(color.NRGBA{A: 77}))
	assert.Equal(t, "#000000", Hex(color.NRGBA{A: 77}))
}

func TestFromPalette(t *testing.T) {
	p, err := palette.Generate("#3f51b5", palette.Dark)
	require.NoError(t, err)

	th, err := FromPalette(p)
	require.NoError(t, err)

	accent, err := ParseColor(p.Primary)
	require.NoError(t, err)
	assert.Equal(t, accent, th.Accent)
	// Status colours stay fixed.
	assert.Equal(t, Default().Success, th.Success)
	assert.Equal(t, Default().Danger, th.Danger)
}

func TestOptionsMerge(t *testing.T) {
	base := Options{Accent: "#111111", Border: "#222222", BorderRadius: 4}
	got := base.Merge(Options{Accent: "#333333", PaddingLg: 20})

	assert.Equal(t, "#333333", got.Accent)
	assert.Equal(t, "#222222", got.Border)
	assert.Equal(t, 4, got.BorderRadius)
	assert.Equal(t, 20, got.PaddingLg)
	assert.Equal(t, "#111111", base.Accent, "receiver is not modified")
}

func TestTokens(t *testing.T) {
	th := MustNew(Options{Accent: "rgba(255, 0, 0, 0.5)", BorderRadius: 9})
	tokens := th.Tokens()
	require.Len(t, tokens, len(TokenNames()))

	byName := map[string]Token{}
	for i, tk := range tokens {
		assert.Equal(t, TokenNames()[i], tk.Name)
		assert.Equal(t, IsColorToken(tk.Name), tk.IsColor, tk.Name)
		byName[tk.Name] = tk
	}
	assert.Equal(t, "rgba(255, 0, 0, 0.50)", byName["accent"].Value())
	assert.Equal(t, "9px", byName["border_radius"].Value())
	assert.Equal(t, th.BgPrimary, byName["bg_primary"].Color)
}
