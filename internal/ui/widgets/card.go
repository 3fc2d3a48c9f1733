package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// Card draws a rounded rectangle background behind w.
func Card(gtx layout.Context, th *Theme, bg color.NRGBA, w layout.Widget) layout.Dimensions {
	return CustomCard(gtx, bg, th.BorderRadiusLg, th.PaddingLg, w)
}

func CustomCard(gtx layout.Context, bg color.NRGBA, radius, inset unit.Dp, w layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			r := gtx.Dp(radius)
			rr := clip.RRect{
				Rect: image.Rectangle{Max: gtx.Constraints.Min},
				NE:   r, NW: r, SE: r, SW: r,
			}
			paint.FillShape(gtx.Ops, bg, rr.Op(gtx.Ops))
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(inset).Layout(gtx, w)
		}),
	)
}

// Border draws a rounded outline around w.
func Border(gtx layout.Context, th *Theme, clr color.NRGBA, w layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			strokeRRect(gtx, image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(th.BorderRadiusLg), gtx.Dp(th.BorderWidth), clr)
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(w),
	)
}

// Divider draws a thin horizontal line across the available width.
func Divider(gtx layout.Context, th *Theme, clr color.NRGBA) layout.Dimensions {
	d := image.Point{X: gtx.Constraints.Min.X, Y: gtx.Dp(th.BorderWidth)}
	paint.FillShape(gtx.Ops, clr, clip.Rect{Max: d}.Op())
	return layout.Dimensions{Size: d}
}

func fillRRect(gtx layout.Context, r image.Rectangle, radius int, clr color.NRGBA) {
	rr := clip.RRect{Rect: r, NE: radius, NW: radius, SE: radius, SW: radius}
	paint.FillShape(gtx.Ops, clr, rr.Op(gtx.Ops))
}

func strokeRRect(gtx layout.Context, r image.Rectangle, radius, width int, clr color.NRGBA) {
	if width <= 0 || clr.A == 0 {
		return
	}
	rr := clip.RRect{Rect: r, NE: radius, NW: radius, SE: radius, SW: radius}
	paint.FillShape(gtx.Ops, clr, clip.Stroke{
		Path:  rr.Path(gtx.Ops),
		Width: float32(width),
	}.Op())
}
