package widgets

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

const tableRowHeight = unit.Dp(36)

// Column describes one table column. A positive Width fixes the column;
// otherwise it shares the remaining width in proportion to Weight (a
// non-positive Weight counts as 1).
type Column struct {
	Title  string
	Width  unit.Dp
	Weight float32
}

// CellFunc lays out the cell at row, col.
type CellFunc func(gtx layout.Context, row, col int) layout.Dimensions

// Table is a scrolling row list under a RoundedHeader, drawn inside a
// rounded container card.
type Table struct {
	Columns []Column
	Header  *RoundedHeader
	List    widget.List

	selected int
	changed  bool
	rows     []widget.Clickable
}

func NewTable(cols ...Column) *Table {
	t := &Table{
		Columns:  cols,
		Header:   NewRoundedHeader(layout.Horizontal),
		selected: -1,
	}
	t.List.Axis = layout.Vertical
	return t
}

// Selected returns the selected row, or -1.
func (t *Table) Selected() int { return t.selected }

// Select marks row i selected. Negative values clear the selection.
func (t *Table) Select(i int) {
	if i < 0 {
		i = -1
	}
	if i != t.selected {
		t.selected = i
		t.changed = true
	}
}

// SelectionChanged reports whether the selection changed since the last
// call.
func (t *Table) SelectionChanged() bool {
	ch := t.changed
	t.changed = false
	return ch
}

// ColumnSizes splits total pixels between cols. Fixed columns get their
// width; weighted columns share what is left, the last one absorbing the
// rounding remainder.
func ColumnSizes(cols []Column, total int, dp func(unit.Dp) int) []int {
	sizes := make([]int, len(cols))
	var (
		rest    = total
		weights float32
		last    = -1
	)
	for i, c := range cols {
		if c.Width > 0 {
			sizes[i] = dp(c.Width)
			rest -= sizes[i]
			continue
		}
		weights += columnWeight(c)
		last = i
	}
	if last < 0 || rest <= 0 {
		return sizes
	}
	used := 0
	for i, c := range cols {
		if c.Width > 0 {
			continue
		}
		if i == last {
			sizes[i] = rest - used
			break
		}
		sizes[i] = int(float32(rest) * columnWeight(c) / weights)
		used += sizes[i]
	}
	return sizes
}

func columnWeight(c Column) float32 {
	if c.Weight <= 0 {
		return 1
	}
	return c.Weight
}

func (t *Table) sections(sizes []int) []HeaderSection {
	s := make([]HeaderSection, len(t.Columns))
	for i, c := range t.Columns {
		s[i] = HeaderSection{Label: c.Title, Size: sizes[i]}
	}
	return s
}

func (t *Table) Layout(gtx layout.Context, th *Theme, rowCount int, cell CellFunc) layout.Dimensions {
	if len(t.rows) < rowCount {
		t.rows = append(t.rows, make([]widget.Clickable, rowCount-len(t.rows))...)
	}
	for i := 0; i < rowCount; i++ {
		if t.rows[i].Clicked(gtx) {
			t.Select(i)
		}
	}
	if t.selected >= rowCount {
		t.Select(-1)
	}

	size := gtx.Constraints.Max
	rect := image.Rectangle{Max: size}
	radius := gtx.Dp(th.BorderRadiusLg)
	sizes := ColumnSizes(t.Columns, size.X, gtx.Dp)

	fillRRect(gtx, rect.Add(image.Pt(0, gtx.Dp(2))), radius, th.ShadowColor)
	fillRRect(gtx, rect, radius, th.BgSecondary)

	cl := clip.RRect{Rect: rect, NE: radius, NW: radius, SE: radius, SW: radius}.Push(gtx.Ops)
	gtx.Constraints = layout.Exact(size)
	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.Header.Layout(gtx, th, t.sections(sizes))
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(th.Material, &t.List).Layout(gtx, rowCount, func(gtx layout.Context, i int) layout.Dimensions {
				return t.layoutRow(gtx, th, i, sizes, cell)
			})
		}),
	)
	cl.Pop()

	strokeRRect(gtx, rect, radius, gtx.Dp(th.BorderWidth), th.Border)
	return layout.Dimensions{Size: size}
}

func (t *Table) layoutRow(gtx layout.Context, th *Theme, i int, sizes []int, cell CellFunc) layout.Dimensions {
	click := &t.rows[i]
	return click.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(tableRowHeight))
		bg := th.BgSecondary
		switch {
		case i == t.selected:
			bg = th.SelectionBg
		case click.Hovered():
			bg = th.TableRowHover
		case i%2 == 1:
			bg = th.TableRowAlt
		}
		fillRRect(gtx, image.Rectangle{Max: size}, 0, bg)

		x := 0
		for col, w := range sizes {
			if w <= 0 {
				continue
			}
			off := op.Offset(image.Pt(x, 0)).Push(gtx.Ops)
			cc := clip.Rect{Max: image.Pt(w, size.Y)}.Push(gtx.Ops)
			cgtx := gtx
			cgtx.Constraints = layout.Exact(image.Pt(w, size.Y))
			layout.Inset{Left: th.PaddingLg, Right: th.PaddingLg}.Layout(cgtx, func(gtx layout.Context) layout.Dimensions {
				return layout.W.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return cell(gtx, i, col)
				})
			})
			cc.Pop()
			off.Pop()
			x += w
		}
		return layout.Dimensions{Size: size}
	})
}

// TextCell renders plain body text for use inside a CellFunc.
func TextCell(th *Theme, text string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		l := material.Body2(th.Material, text)
		l.Color = th.TextPrimary
		l.MaxLines = 1
		return l.Layout(gtx)
	}
}
