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
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

const (
	tabMinWidth  = unit.Dp(120)
	tabPaddingH  = unit.Dp(12)
	tabPaddingV  = unit.Dp(4)
	tabUnderline = unit.Dp(2)
	tabTextSize  = unit.Sp(13)
)

// RoundedTabBar is a row of hand-painted tabs styled like RoundedHeader:
// every tab has rounded top corners, idle tabs highlight on hover and the
// selected tab carries an accent underline and an uppercase bold label.
//
// The zero value selects the first tab.
type RoundedTabBar struct {
	Tabs []string

	cells    RoundedHeader
	selected int
	changed  bool
}

func NewRoundedTabBar(tabs ...string) *RoundedTabBar {
	return &RoundedTabBar{Tabs: tabs}
}

// Selected returns the index of the selected tab.
func (t *RoundedTabBar) Selected() int { return t.selected }

// Select switches to tab i. Out of range indices are ignored.
func (t *RoundedTabBar) Select(i int) {
	if i < 0 || i >= len(t.Tabs) || i == t.selected {
		return
	}
	t.selected = i
	t.changed = true
}

// Changed reports whether the selected tab changed since the last call.
func (t *RoundedTabBar) Changed() bool {
	ch := t.changed
	t.changed = false
	return ch
}

// Hovered returns the index of the tab under the pointer, or -1.
func (t *RoundedTabBar) Hovered() int { return t.cells.Hovered() }

func (t *RoundedTabBar) PointerMove(p image.Point) { t.cells.PointerMove(p) }

func (t *RoundedTabBar) PointerLeave() { t.cells.PointerLeave() }

// Press selects the tab under p, if any.
func (t *RoundedTabBar) Press(p image.Point) {
	for _, c := range t.cells.cells {
		if p.In(c.rect) {
			t.Select(c.index)
			return
		}
	}
}

// tabSizes turns label widths into header sections, padding each label and
// enforcing the minimum tab width.
func tabSizes(labels []string, widths []int, minWidth, pad int) []HeaderSection {
	s := make([]HeaderSection, len(labels))
	for i, l := range labels {
		s[i] = HeaderSection{Label: l, Size: max(widths[i]+2*pad, minWidth)}
	}
	return s
}

// arrange lays tabs out like header sections, then rounds the top corners
// of every tab.
func (t *RoundedTabBar) arrange(sections []HeaderSection, bounds image.Rectangle, radius int) {
	t.cells.Axis = layout.Horizontal
	t.cells.arrange(sections, bounds, 0)
	for i := range t.cells.cells {
		c := &t.cells.cells[i]
		r := clampRadius(radius, c.rect)
		c.corners = corners{NW: r, NE: r}
	}
}

// tabSurface extends headerSurface with centred labels of either weight.
type tabSurface interface {
	headerSurface
	label(r image.Rectangle, s string, col color.NRGBA, bold bool)
}

type tabStyle struct {
	bg, hover, text, muted, accent color.NRGBA
	underline, inset, padH, padV   int
}

func (t *RoundedTabBar) paint(s tabSurface, st tabStyle) {
	hovered := t.cells.Hovered()
	for _, c := range t.cells.cells {
		if c.index >= len(t.Tabs) {
			continue
		}
		selected := c.index == t.selected

		bg := st.bg
		if c.index == hovered && !selected {
			bg = st.hover
		}
		s.fill(c.rect, c.corners, bg)

		label, col := t.Tabs[c.index], st.muted
		if selected {
			line := image.Rect(c.rect.Min.X+st.inset, c.rect.Max.Y-st.underline, c.rect.Max.X-st.inset, c.rect.Max.Y)
			if !line.Empty() {
				s.rect(line, st.accent)
			}
			label, col = strings.ToUpper(label), st.text
		}

		r := image.Rect(c.rect.Min.X+st.padH, c.rect.Min.Y+st.padV, c.rect.Max.X-st.padH, c.rect.Max.Y-st.padV)
		if !r.Empty() && label != "" {
			s.label(r, label, col, selected)
		}
	}
}

// Layout handles pointer input and paints the tabs at their natural width,
// constrained by gtx.
func (t *RoundedTabBar) Layout(gtx layout.Context, th *Theme) layout.Dimensions {
	t.update(gtx)

	pad := gtx.Dp(tabPaddingH)
	widths := make([]int, len(t.Tabs))
	for i, s := range t.Tabs {
		widths[i] = measureTab(gtx, th, strings.ToUpper(s))
	}
	sections := tabSizes(t.Tabs, widths, gtx.Dp(tabMinWidth), pad)
	total := 0
	for _, s := range sections {
		total += s.Size
	}
	size := gtx.Constraints.Constrain(image.Pt(total, gtx.Dp(DefaultHeaderThickness)))
	bounds := image.Rectangle{Max: size}

	t.arrange(sections, bounds, gtx.Dp(th.BorderRadiusLg))
	t.paint(&opsSurface{gtx: gtx, th: th}, tabStyle{
		bg:        th.BgPrimary,
		hover:     th.BgSecondary,
		text:      th.TextPrimary,
		muted:     th.TextSecondary,
		accent:    th.Accent,
		underline: gtx.Dp(tabUnderline),
		inset:     gtx.Dp(4),
		padH:      pad,
		padV:      gtx.Dp(tabPaddingV),
	})

	area := clip.Rect(bounds).Push(gtx.Ops)
	pointer.CursorPointer.Add(gtx.Ops)
	event.Op(gtx.Ops, t)
	area.Pop()

	return layout.Dimensions{Size: size}
}

func (t *RoundedTabBar) update(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: t,
			Kinds:  pointer.Press | pointer.Enter | pointer.Move | pointer.Leave | pointer.Cancel,
		})
		if !ok {
			return
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			t.Press(e.Position.Round())
		case pointer.Enter, pointer.Move:
			t.PointerMove(e.Position.Round())
		case pointer.Leave, pointer.Cancel:
			t.PointerLeave()
		}
	}
}

func tabLabel(th *Theme, s string, col color.NRGBA, bold bool) material.LabelStyle {
	l := material.Label(th.Material, tabTextSize, s)
	l.Color = col
	l.MaxLines = 1
	l.Alignment = text.Middle
	if bold {
		l.Font.Weight = font.Bold
	}
	return l
}

// measureTab returns the width of s set as a selected tab label.
func measureTab(gtx layout.Context, th *Theme, s string) int {
	if th.Material == nil {
		return 0
	}
	m := op.Record(gtx.Ops)
	gtx.Constraints.Min = image.Point{}
	dims := tabLabel(th, s, th.TextPrimary, true).Layout(gtx)
	m.Stop()
	return dims.Size.X
}

func (s *opsSurface) label(r image.Rectangle, str string, col color.NRGBA, bold bool) {
	if s.th.Material == nil {
		return
	}
	defer op.Offset(r.Min).Push(s.gtx.Ops).Pop()
	defer clip.Rect{Max: r.Size()}.Push(s.gtx.Ops).Pop()

	gtx := s.gtx
	gtx.Constraints = layout.Exact(r.Size())
	layout.Center.Layout(gtx, tabLabel(s.th, str, col, bold).Layout)
}
