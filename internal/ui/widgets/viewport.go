package widgets

import (
	"image"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
)

// Viewport tracks the window size and the last press in window
// coordinates. Its input area is the parent of every area laid out inside
// it, so it sees the same presses as the widgets below; a widget comparing
// the two positions learns where it sits in the window.
type Viewport struct {
	Size image.Point

	press   image.Point
	pressed bool
}

// Press records a press at p in window coordinates.
func (v *Viewport) Press(p image.Point) {
	v.press, v.pressed = p, true
}

// Origin returns the window position of a widget's origin, given where the
// last press landed in that widget's coordinates.
func (v *Viewport) Origin(local image.Point) (image.Point, bool) {
	if !v.pressed {
		return image.Point{}, false
	}
	return v.press.Sub(local), true
}

// Bounds returns the window rectangle in the coordinates of a widget whose
// origin sits at origin.
func (v *Viewport) Bounds(origin image.Point) image.Rectangle {
	return image.Rectangle{Max: v.Size}.Sub(origin)
}

// Layout covers the constraints with the viewport's input area and lays w
// out inside it.
func (v *Viewport) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	for {
		ev, ok := gtx.Event(pointer.Filter{Target: v, Kinds: pointer.Press})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok && e.Kind == pointer.Press {
			v.Press(e.Position.Round())
		}
	}
	v.Size = gtx.Constraints.Max

	area := clip.Rect{Max: v.Size}.Push(gtx.Ops)
	event.Op(gtx.Ops, v)
	dims := w(gtx)
	area.Pop()
	return dims
}
