package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// The helpers below take and return #rrggbb strings. Input that does not
// parse is returned unchanged.

func hsl(hex string) (h, s, l float64, ok bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0, false
	}
	h, s, l = c.Hsl()
	return h, s, l, true
}

func fromHSL(h, s, l float64) string {
	return colorful.Hsl(h, clamp01(s), clamp01(l)).Clamped().Hex()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// AdjustBrightness scales lightness by factor (>1 brightens).
func AdjustBrightness(hex string, factor float64) string {
	h, s, l, ok := hsl(hex)
	if !ok {
		return hex
	}
	return fromHSL(h, s, l*factor)
}

// AdjustSaturation scales saturation by factor.
func AdjustSaturation(hex string, factor float64) string {
	h, s, l, ok := hsl(hex)
	if !ok {
		return hex
	}
	return fromHSL(h, s*factor, l)
}

// SetSaturation sets absolute saturation in [0,1].
func SetSaturation(hex string, saturation float64) string {
	h, _, l, ok := hsl(hex)
	if !ok {
		return hex
	}
	return fromHSL(h, saturation, l)
}

// SetLightness sets absolute lightness in [0,1].
func SetLightness(hex string, lightness float64) string {
	h, s, _, ok := hsl(hex)
	if !ok {
		return hex
	}
	return fromHSL(h, s, lightness)
}

// RotateHue rotates the hue by degrees, wrapping around 360.
func RotateHue(hex string, degrees float64) string {
	h, s, l, ok := hsl(hex)
	if !ok {
		return hex
	}
	return fromHSL(math.Mod(math.Mod(h+degrees, 360)+360, 360), s, l)
}

// BlendHue moves the hue linearly towards neutral (degrees) by factor.
func BlendHue(hex string, neutral, factor float64) string {
	h, s, l, ok := hsl(hex)
	if !ok {
		return hex
	}
	return fromHSL(h*(1-factor)+neutral*factor, s, l)
}

// ContrastingText picks black or white text for a background.
func ContrastingText(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}
	if 0.299*c.R+0.587*c.G+0.114*c.B > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}
