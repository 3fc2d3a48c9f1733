package widgets

import (
	"image"
	"image/color"
	"strings"

	"gioui.org/font"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// DefaultHeaderThickness is the cross-axis extent of a header: the height of
// a horizontal header, the width of a vertical one.
const DefaultHeaderThickness = unit.Dp(48)

// HeaderSection is one column (or row) of a header. Size is in pixels along
// the header axis; sections with Size <= 0 are hidden.
type HeaderSection struct {
	Label string
	Size  int
}

type corners struct {
	NW, NE, SE, SW int
}

type headerCell struct {
	index   int
	rect    image.Rectangle
	corners corners
}

// RoundedHeader paints a table header as one continuous bar with rounded
// outer corners and a hover highlight per section. It bypasses material
// styling entirely: fills, labels and the bottom border are drawn by hand.
//
// Hover is a per-section idle/hovered state derived from the last pointer
// position and the section rectangles of the most recent layout. Pointer
// events are fed through PointerMove and PointerLeave.
type RoundedHeader struct {
	Axis      layout.Axis
	Thickness unit.Dp

	cells   []headerCell
	pointer image.Point
	inside  bool
}

func NewRoundedHeader(axis layout.Axis) *RoundedHeader {
	return &RoundedHeader{Axis: axis, Thickness: DefaultHeaderThickness}
}

// PointerMove records a pointer position in header coordinates.
func (h *RoundedHeader) PointerMove(p image.Point) {
	h.pointer = p
	h.inside = true
}

// PointerLeave resets every section to idle.
func (h *RoundedHeader) PointerLeave() {
	h.inside = false
}

// Hovered returns the index of the hovered section, or -1.
func (h *RoundedHeader) Hovered() int {
	if !h.inside {
		return -1
	}
	for _, c := range h.cells {
		if h.pointer.In(c.rect) {
			return c.index
		}
	}
	return -1
}

// SectionRect returns the rectangle of section i from the last layout.
func (h *RoundedHeader) SectionRect(i int) (image.Rectangle, bool) {
	for _, c := range h.cells {
		if c.index == i {
			return c.rect, true
		}
	}
	return image.Rectangle{}, false
}

// arrange recomputes every section rectangle inside bounds. Nothing is
// cached across calls.
func (h *RoundedHeader) arrange(sections []HeaderSection, bounds image.Rectangle, radius int) {
	h.cells = h.cells[:0]
	pos := 0
	for i, s := range sections {
		if s.Size <= 0 {
			continue
		}
		var r image.Rectangle
		if h.Axis == layout.Horizontal {
			r = image.Rect(pos, bounds.Min.Y, pos+s.Size, bounds.Max.Y)
		} else {
			r = image.Rect(bounds.Min.X, pos, bounds.Max.X, pos+s.Size)
		}
		pos += s.Size
		r = r.Intersect(bounds)
		if r.Empty() {
			continue
		}
		h.cells = append(h.cells, headerCell{index: i, rect: r})
	}

	if len(h.cells) == 0 {
		return
	}
	first, last := &h.cells[0], &h.cells[len(h.cells)-1]
	if h.Axis == layout.Horizontal {
		first.corners.NW = clampRadius(radius, first.rect)
		last.corners.NE = clampRadius(radius, last.rect)
	} else {
		first.corners.NW = clampRadius(radius, first.rect)
		last.corners.SW = clampRadius(radius, last.rect)
	}
}

// clampRadius keeps both arcs of a section inside it: the radius never
// exceeds half of the smaller side.
func clampRadius(radius int, r image.Rectangle) int {
	limit := min(r.Dx(), r.Dy()) / 2
	if radius > limit {
		radius = limit
	}
	return max(radius, 0)
}

// headerSurface is what the header paints onto.
type headerSurface interface {
	fill(r image.Rectangle, c corners, col color.NRGBA)
	rect(r image.Rectangle, col color.NRGBA)
	text(r image.Rectangle, s string, col color.NRGBA)
}

type headerStyle struct {
	bg, hover, text, border color.NRGBA
	borderWidth, padding    int
}

func (h *RoundedHeader) paint(s headerSurface, st headerStyle, sections []HeaderSection) {
	hovered := h.Hovered()
	for _, c := range h.cells {
		if c.index < 0 || c.index >= len(sections) {
			continue
		}
		bg := st.bg
		if c.index == hovered {
			bg = st.hover
		}
		s.fill(c.rect, c.corners, bg)

		if st.borderWidth > 0 {
			line := c.rect
			if h.Axis == layout.Horizontal {
				line.Min.Y = line.Max.Y - st.borderWidth
			} else {
				line.Min.X = line.Max.X - st.borderWidth
			}
			s.rect(line, st.border)
		}

		label := c.rect
		if h.Axis == layout.Horizontal {
			label.Min.X += st.padding
			label.Max.X -= st.padding
			label.Max.Y -= st.borderWidth
		} else {
			label.Min.X += st.padding / 2
			label.Max.X -= st.borderWidth
		}
		if label.Dx() > 0 && label.Dy() > 0 && sections[c.index].Label != "" {
			s.text(label, strings.ToUpper(sections[c.index].Label), st.text)
		}
	}
}

// Layout processes pointer events, recomputes geometry from sections and
// the current constraints, and paints.
func (h *RoundedHeader) Layout(gtx layout.Context, th *Theme, sections []HeaderSection) layout.Dimensions {
	h.update(gtx)

	thickness := h.Thickness
	if thickness <= 0 {
		thickness = DefaultHeaderThickness
	}
	total := 0
	for _, s := range sections {
		total += max(s.Size, 0)
	}
	var size image.Point
	if h.Axis == layout.Horizontal {
		size = image.Pt(total, gtx.Dp(thickness))
	} else {
		size = image.Pt(gtx.Dp(thickness), total)
	}
	size = gtx.Constraints.Constrain(size)
	bounds := image.Rectangle{Max: size}

	h.arrange(sections, bounds, gtx.Dp(th.BorderRadiusLg))
	h.paint(&opsSurface{gtx: gtx, th: th}, headerStyle{
		bg:          th.TableHeaderBg,
		hover:       th.TableRowHover,
		text:        th.TextPrimary,
		border:      th.Border,
		borderWidth: gtx.Dp(th.BorderWidth),
		padding:     gtx.Dp(th.PaddingLg),
	}, sections)

	area := clip.Rect(bounds).Push(gtx.Ops)
	event.Op(gtx.Ops, h)
	area.Pop()

	return layout.Dimensions{Size: size}
}

func (h *RoundedHeader) update(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: h,
			Kinds:  pointer.Enter | pointer.Move | pointer.Leave | pointer.Cancel,
		})
		if !ok {
			return
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Enter, pointer.Move:
			h.PointerMove(e.Position.Round())
		case pointer.Leave, pointer.Cancel:
			h.PointerLeave()
		}
	}
}

// opsSurface paints into the frame's op list.
type opsSurface struct {
	gtx layout.Context
	th  *Theme
}

func (s *opsSurface) fill(r image.Rectangle, c corners, col color.NRGBA) {
	rr := clip.RRect{Rect: r, NW: c.NW, NE: c.NE, SE: c.SE, SW: c.SW}
	paint.FillShape(s.gtx.Ops, col, rr.Op(s.gtx.Ops))
}

func (s *opsSurface) rect(r image.Rectangle, col color.NRGBA) {
	paint.FillShape(s.gtx.Ops, col, clip.Rect(r).Op())
}

func (s *opsSurface) text(r image.Rectangle, str string, col color.NRGBA) {
	if s.th.Material == nil {
		return
	}
	defer op.Offset(r.Min).Push(s.gtx.Ops).Pop()
	defer clip.Rect{Max: r.Size()}.Push(s.gtx.Ops).Pop()

	gtx := s.gtx
	gtx.Constraints = layout.Exact(r.Size())
	layout.W.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		l := material.Label(s.th.Material, unit.Sp(12), str)
		l.Color = col
		l.Font.Weight = font.Bold
		l.MaxLines = 1
		return l.Layout(gtx)
	})
}
