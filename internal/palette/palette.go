// Package palette derives Material-style colour schemes from a single seed
// colour or from the dominant colour of an image.
package palette

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects a dark or light scheme.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// ErrInvalidSeed is returned when the seed is not a #rgb / #rrggbb colour.
var ErrInvalidSeed = errors.New("invalid seed color")

// ErrInvalidMode is returned by ParseMode for anything but dark or light.
var ErrInvalidMode = errors.New("invalid palette mode")

// Palette is a generated scheme. All values are #rrggbb strings.
type Palette struct {
	Primary            string
	PrimaryContainer   string
	OnPrimary          string
	OnPrimaryContainer string

	Secondary            string
	SecondaryContainer   string
	OnSecondary          string
	OnSecondaryContainer string

	Tertiary            string
	TertiaryContainer   string
	OnTertiary          string
	OnTertiaryContainer string

	Background       string
	OnBackground     string
	Surface          string
	OnSurface        string
	SurfaceVariant   string
	OnSurfaceVariant string

	Error   string
	OnError string
	Outline string
	Shadow  string
}

// Neutral hues (degrees) that backgrounds are pulled towards.
const (
	neutralHueDark  = 0.63 * 360
	neutralHueLight = 0.55 * 360
)

// ParseMode maps "", "dark" and "light" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Generate builds a full scheme around seed.
func Generate(seed string, mode Mode) (Palette, error) {
	src, err := colorful.Hex(seed)
	if err != nil || (len(seed) != 4 && len(seed) != 7) {
		return Palette{}, fmt.Errorf("%w: %q", ErrInvalidSeed, seed)
	}
	_, s, l := src.Hsl()
	seed = src.Clamped().Hex()

	if mode == Light {
		return light(seed, s, l), nil
	}
	return dark(seed, s, l), nil
}

func dark(seed string, s, l float64) Palette {
	var p Palette

	p.Primary = SetSaturation(seed, math.Max(0.6, s))
	p.Primary = SetLightness(p.Primary, math.Max(0.45, math.Min(0.60, l)))
	p.PrimaryContainer = SetSaturation(SetLightness(p.Primary, 0.18), 0.5)
	p.OnPrimary = "#000000"
	p.OnPrimaryContainer = SetLightness(p.Primary, 0.85)

	p.Secondary = SetLightness(SetSaturation(RotateHue(p.Primary, 60), 0.65), 0.55)
	p.SecondaryContainer = SetSaturation(SetLightness(p.Secondary, 0.16), 0.45)
	p.OnSecondary = "#000000"
	p.OnSecondaryContainer = SetLightness(p.Secondary, 0.85)

	p.Tertiary = SetLightness(SetSaturation(RotateHue(p.Primary, -60), 0.70), 0.58)
	p.TertiaryContainer = SetSaturation(SetLightness(p.Tertiary, 0.17), 0.48)
	p.OnTertiary = "#000000"
	p.OnTertiaryContainer = SetLightness(p.Tertiary, 0.85)

	bg := BlendHue(p.Primary, neutralHueDark, 0.7)
	p.Background = SetLightness(SetSaturation(bg, 0.08), 0.11)
	p.OnBackground = "#e6e6e6"
	p.Surface = SetLightness(SetSaturation(bg, 0.10), 0.14)
	p.OnSurface = "#e6e6e6"
	p.SurfaceVariant = SetLightness(SetSaturation(BlendHue(p.Primary, neutralHueDark, 0.5), 0.22), 0.16)
	p.OnSurfaceVariant = "#c4c4c4"

	p.Error = "#cf6679"
	p.OnError = "#000000"
	p.Outline = SetLightness(SetSaturation(p.Primary, 0.35), 0.28)
	p.Shadow = "#000000"
	return p
}

func light(seed string, s, l float64) Palette {
	var p Palette

	p.Primary = SetSaturation(seed, math.Max(0.7, s))
	p.Primary = SetLightness(p.Primary, math.Max(0.40, math.Min(0.55, l)))
	p.PrimaryContainer = SetSaturation(SetLightness(p.Primary, 0.85), 0.4)
	p.OnPrimary = "#ffffff"
	p.OnPrimaryContainer = SetLightness(p.Primary, 0.20)

	p.Secondary = SetLightness(SetSaturation(RotateHue(p.Primary, 60), 0.65), 0.48)
	p.SecondaryContainer = SetSaturation(SetLightness(p.Secondary, 0.88), 0.35)
	p.OnSecondary = "#ffffff"
	p.OnSecondaryContainer = SetLightness(p.Secondary, 0.18)

	p.Tertiary = SetLightness(SetSaturation(RotateHue(p.Primary, -60), 0.70), 0.50)
	p.TertiaryContainer = SetSaturation(SetLightness(p.Tertiary, 0.90), 0.32)
	p.OnTertiary = "#ffffff"
	p.OnTertiaryContainer = SetLightness(p.Tertiary, 0.16)

	bg := BlendHue(p.Primary, neutralHueLight, 0.85)
	p.Background = SetLightness(SetSaturation(bg, 0.02), 0.98)
	p.OnBackground = "#1a1a1a"
	p.Surface = SetLightness(SetSaturation(bg, 0.03), 0.95)
	p.OnSurface = "#1a1a1a"
	p.SurfaceVariant = SetLightness(SetSaturation(BlendHue(p.Primary, neutralHueLight, 0.75), 0.08), 0.90)
	p.OnSurfaceVariant = "#4a4a4a"

	p.Error = "#b00020"
	p.OnError = "#ffffff"
	p.Outline = SetLightness(SetSaturation(p.Primary, 0.30), 0.55)
	p.Shadow = "#000000"
	return p
}
