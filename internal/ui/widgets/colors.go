package widgets

import (
	"image/color"
)

// over composites src on top of dst (source-over, straight alpha). The
// overlay tokens (HoverOverlay, PressedOverlay) are translucent and are
// flattened with this before painting.
func over(dst, src color.NRGBA) color.NRGBA {
	if src.A == 0xff || dst.A == 0 {
		return src
	}
	if src.A == 0 {
		return dst
	}
	sa := float32(src.A) / 255
	da := float32(dst.A) / 255
	oa := sa + da*(1-sa)
	blend := func(s, d uint8) uint8 {
		v := (float32(s)*sa + float32(d)*da*(1-sa)) / oa
		return uint8(v + 0.5)
	}
	return color.NRGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: uint8(oa*255 + 0.5),
	}
}
