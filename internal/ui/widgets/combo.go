package widgets

import (
	"image"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/glaze-ui/glaze/internal/ui/icons"
)

const (
	// NoSelection is the current index of a combo box with nothing selected.
	NoSelection = -1
	// MaxVisibleRows caps the popup height; longer lists scroll.
	MaxVisibleRows = 8
)

const (
	comboRowHeight = unit.Dp(32)
	comboInset     = unit.Dp(4)
	comboRadius    = unit.Dp(4)
	comboMinWidth  = unit.Dp(160)
)

// ComboBox is a drop-down selector whose popup list is drawn by hand. The
// zero value is an empty combo box with no selection.
//
// The popup is placed below the face when it fits inside the available
// area, above it otherwise. Area, in the combo's own coordinates, overrides
// the available area. Without it the combo uses the window bounds from
// Viewport, located by the press that opened the popup, and falls back to
// the incoming constraints.
type ComboBox struct {
	Area        image.Rectangle
	Viewport    *Viewport
	Placeholder string

	items   []string
	version int

	// Selected and highlighted rows are stored as index+1 so the zero value
	// means none.
	sel int
	hl  int

	open    bool
	changed bool

	rows   []string
	built  int
	builds int

	list    widget.List
	focused bool
	hovered bool
	pressed bool
	scrim   bool

	// Window position of the face, from the opening press.
	origin  image.Point
	located bool

	// Popup geometry of the last frame, for hit testing.
	popupSize image.Point
	rowPx     int
	insetPx   int
}

// AddItems appends labels in order. Duplicates are kept.
func (c *ComboBox) AddItems(labels ...string) {
	if len(labels) == 0 {
		return
	}
	c.items = append(c.items, labels...)
	c.version++
}

// Clear removes every item and the selection.
func (c *ComboBox) Clear() {
	if len(c.items) == 0 {
		return
	}
	if c.sel != 0 {
		c.changed = true
	}
	c.items = nil
	c.sel, c.hl = 0, 0
	c.version++
}

// Items returns a copy of the item labels.
func (c *ComboBox) Items() []string {
	return append([]string(nil), c.items...)
}

func (c *ComboBox) Len() int { return len(c.items) }

// CurrentIndex returns the selected index or NoSelection.
func (c *ComboBox) CurrentIndex() int { return c.sel - 1 }

// CurrentText returns the selected label, or "" when nothing is selected.
func (c *ComboBox) CurrentText() string {
	if c.sel == 0 {
		return ""
	}
	return c.items[c.sel-1]
}

// SetCurrentIndex selects item i. Out of range indices are ignored.
func (c *ComboBox) SetCurrentIndex(i int) {
	if i < 0 || i >= len(c.items) {
		return
	}
	if c.sel != i+1 {
		c.sel = i + 1
		c.changed = true
	}
}

// Changed reports whether the selection changed since the last call.
func (c *ComboBox) Changed() bool {
	ch := c.changed
	c.changed = false
	return ch
}

func (c *ComboBox) IsOpen() bool { return c.open }

// Open shows the popup, rebuilding its rows if the items changed since it
// was last shown.
func (c *ComboBox) Open() {
	if c.open {
		return
	}
	c.rebuild()
	c.open = true
	c.pressed = false
	c.hl = c.sel
	c.list.Position = layout.Position{}
	if c.sel > 0 && c.Scrollable() {
		c.list.Position.First = min(c.sel-1, len(c.items)-MaxVisibleRows)
	}
}

func (c *ComboBox) Close() {
	c.open = false
	c.pressed = false
	c.hl = 0
}

func (c *ComboBox) rebuild() {
	if c.rows != nil && c.built == c.version {
		return
	}
	c.rows = append(c.rows[:0], c.items...)
	if c.rows == nil {
		c.rows = []string{}
	}
	c.built = c.version
	c.builds++
}

// choose selects row i and closes the popup.
func (c *ComboBox) choose(i int) {
	c.SetCurrentIndex(i)
	c.Close()
}

func (c *ComboBox) visibleRows() int {
	return min(len(c.rows), MaxVisibleRows)
}

// Scrollable reports whether the popup needs a scrollbar.
func (c *ComboBox) Scrollable() bool {
	return len(c.items) > MaxVisibleRows
}

func (c *ComboBox) popupHeight(rowH, inset int) int {
	return c.visibleRows()*rowH + 2*inset
}

// rowAt maps a point in popup coordinates to an item index, or -1.
func (c *ComboBox) rowAt(p image.Point) int {
	if c.rowPx <= 0 || !p.In(image.Rectangle{Max: c.popupSize}) {
		return -1
	}
	y := p.Y - c.insetPx
	if y < 0 || y >= c.popupSize.Y-2*c.insetPx {
		return -1
	}
	i := c.list.Position.First + (y+c.list.Position.Offset)/c.rowPx
	if i < 0 || i >= len(c.rows) || i >= len(c.items) {
		return -1
	}
	return i
}

// handleKey applies a key press. Closed combo boxes open on Enter, Space
// and the arrows; open ones move the highlight, select or dismiss.
func (c *ComboBox) handleKey(name key.Name) {
	if !c.open {
		switch name {
		case key.NameReturn, key.NameEnter, key.NameSpace, key.NameDownArrow, key.NameUpArrow:
			c.Open()
		}
		return
	}
	switch name {
	case key.NameEscape:
		c.Close()
	case key.NameUpArrow:
		if c.hl > 1 {
			c.hl--
		} else if len(c.items) > 0 {
			c.hl = 1
		}
		c.reveal()
	case key.NameDownArrow:
		if c.hl < len(c.items) {
			c.hl++
		}
		c.reveal()
	case key.NameReturn, key.NameEnter:
		if c.hl > 0 {
			c.choose(c.hl - 1)
		} else {
			c.Close()
		}
	}
}

// reveal scrolls the popup so the highlighted row is visible.
func (c *ComboBox) reveal() {
	if c.hl == 0 || !c.Scrollable() {
		return
	}
	i := c.hl - 1
	first := c.list.Position.First
	switch {
	case i < first:
		c.list.Position.First, c.list.Position.Offset = i, 0
	case i >= first+MaxVisibleRows:
		c.list.Position.First, c.list.Position.Offset = i-MaxVisibleRows+1, 0
	}
}

// PlacePopup positions a popup of the given size next to anchor inside
// area. It prefers the space below, then above; when neither fits the
// popup goes on the roomier side and its height is clipped to that room.
// The x position is clamped so the popup stays inside area.
func PlacePopup(anchor image.Rectangle, size image.Point, area image.Rectangle) image.Rectangle {
	below := area.Max.Y - anchor.Max.Y
	above := anchor.Min.Y - area.Min.Y

	h := max(size.Y, 0)
	var y int
	switch {
	case h <= below:
		y = anchor.Max.Y
	case h <= above:
		y = anchor.Min.Y - h
	case below >= above:
		h = max(below, 0)
		y = anchor.Max.Y
	default:
		h = above
		y = anchor.Min.Y - h
	}

	w := min(max(size.X, 0), area.Dx())
	x := anchor.Min.X
	if x+w > area.Max.X {
		x = area.Max.X - w
	}
	if x < area.Min.X {
		x = area.Min.X
	}
	return image.Rect(x, y, x+w, y+h)
}

// locate records where the face sits in the window, given the position
// of a press in face coordinates.
func (c *ComboBox) locate(p image.Point) {
	if c.Viewport == nil {
		return
	}
	if o, ok := c.Viewport.Origin(p); ok {
		c.origin, c.located = o, true
	}
}

// popupArea returns the region the popup may cover, in combo coordinates.
func (c *ComboBox) popupArea(constraints image.Point) image.Rectangle {
	switch {
	case !c.Area.Empty():
		return c.Area
	case c.Viewport != nil && c.located:
		return c.Viewport.Bounds(c.origin)
	}
	return image.Rectangle{Max: constraints}
}

func (c *ComboBox) update(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: c,
			Kinds:  pointer.Press | pointer.Release | pointer.Move | pointer.Enter | pointer.Leave | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			gtx.Execute(key.FocusCmd{Tag: c})
			if !c.open {
				c.locate(e.Position.Round())
				c.Open()
				continue
			}
			if i := c.rowAt(e.Position.Round()); i >= 0 {
				c.pressed = true
				c.hl = i + 1
			}
		case pointer.Release:
			if c.open && c.pressed {
				if i := c.rowAt(e.Position.Round()); i >= 0 {
					c.choose(i)
				}
			}
			c.pressed = false
		case pointer.Enter, pointer.Move:
			c.hovered = true
			if c.open {
				if i := c.rowAt(e.Position.Round()); i >= 0 {
					c.hl = i + 1
				}
			}
		case pointer.Leave, pointer.Cancel:
			c.hovered = false
		}
	}

	for {
		ev, ok := gtx.Event(pointer.Filter{Target: &c.scrim, Kinds: pointer.Press})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok && e.Kind == pointer.Press {
			c.Close()
		}
	}

	for {
		ev, ok := gtx.Event(
			key.FocusFilter{Target: c},
			key.Filter{Focus: c, Name: key.NameEscape},
			key.Filter{Focus: c, Name: key.NameUpArrow},
			key.Filter{Focus: c, Name: key.NameDownArrow},
			key.Filter{Focus: c, Name: key.NameReturn},
			key.Filter{Focus: c, Name: key.NameEnter},
			key.Filter{Focus: c, Name: key.NameSpace},
		)
		if !ok {
			break
		}
		switch e := ev.(type) {
		case key.FocusEvent:
			c.focused = e.Focus
			if !e.Focus {
				c.Close()
			}
		case key.Event:
			if e.State == key.Press {
				c.handleKey(e.Name)
			}
		}
	}
}

// Layout draws the face and, while open, defers the popup on top of the
// rest of the frame.
func (c *ComboBox) Layout(gtx layout.Context, th *Theme) layout.Dimensions {
	c.update(gtx)
	area := c.popupArea(gtx.Constraints.Max)

	dims := c.layoutFace(gtx, th)
	if c.open {
		c.rebuild()
		c.layoutPopup(gtx, th, image.Rectangle{Max: dims.Size}, area)
	}
	return dims
}

func (c *ComboBox) layoutFace(gtx layout.Context, th *Theme) layout.Dimensions {
	gtx.Constraints.Min.X = max(gtx.Constraints.Min.X, min(gtx.Dp(comboMinWidth), gtx.Constraints.Max.X))

	text, clr := c.CurrentText(), th.TextPrimary
	if c.sel == 0 {
		text, clr = c.Placeholder, th.TextTertiary
	}

	m := op.Record(gtx.Ops)
	dims := layout.Inset{
		Top: th.PaddingV, Bottom: th.PaddingV,
		Left: th.PaddingH, Right: th.PaddingSm,
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				l := material.Body1(th.Material, text)
				l.Color = clr
				l.MaxLines = 1
				return l.Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if icons.IconDropDown == nil {
					return layout.Dimensions{}
				}
				sz := gtx.Dp(20)
				gtx.Constraints = layout.Exact(image.Pt(sz, sz))
				return icons.IconDropDown.Layout(gtx, th.TextSecondary)
			}),
		)
	})
	call := m.Stop()

	rect := image.Rectangle{Max: dims.Size}
	radius := gtx.Dp(th.BorderRadius)
	bg, border := th.BgSecondary, th.Border
	switch {
	case c.open || c.focused:
		border = th.BorderFocus
	case c.hovered:
		bg = over(bg, th.HoverOverlay)
		border = th.BorderHover
	}
	fillRRect(gtx, rect, radius, bg)
	strokeRRect(gtx, rect, radius, gtx.Dp(th.BorderWidth), border)
	call.Add(gtx.Ops)

	if !c.open {
		a := clip.Rect(rect).Push(gtx.Ops)
		pointer.CursorPointer.Add(gtx.Ops)
		event.Op(gtx.Ops, c)
		a.Pop()
	}
	return dims
}

func (c *ComboBox) layoutPopup(gtx layout.Context, th *Theme, anchor, area image.Rectangle) {
	c.rowPx = gtx.Dp(comboRowHeight)
	c.insetPx = gtx.Dp(comboInset)
	size := image.Pt(anchor.Dx(), c.popupHeight(c.rowPx, c.insetPx))
	rect := PlacePopup(anchor, size, area)
	c.popupSize = rect.Size()

	m := op.Record(gtx.Ops)

	// Scrim: any press outside the popup dismisses it.
	const far = 1 << 24
	s := clip.Rect(image.Rect(-far, -far, far, far)).Push(gtx.Ops)
	event.Op(gtx.Ops, &c.scrim)
	s.Pop()

	off := op.Offset(rect.Min).Push(gtx.Ops)
	bounds := image.Rectangle{Max: rect.Size()}
	radius := gtx.Dp(comboRadius)
	fillRRect(gtx, bounds, radius, th.BgSecondary)

	rr := clip.RRect{Rect: bounds, NE: radius, NW: radius, SE: radius, SW: radius}.Push(gtx.Ops)
	event.Op(gtx.Ops, c)
	c.layoutRows(gtx, th, bounds)
	rr.Pop()

	strokeRRect(gtx, bounds, radius, gtx.Dp(1), th.Border)
	off.Pop()

	op.Defer(gtx.Ops, m.Stop())
}

func (c *ComboBox) layoutRows(gtx layout.Context, th *Theme, bounds image.Rectangle) {
	inner := bounds.Inset(c.insetPx)
	if inner.Empty() || len(c.rows) == 0 {
		return
	}
	defer op.Offset(inner.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(inner.Size())

	c.list.Axis = layout.Vertical
	ls := material.List(th.Material, &c.list)
	if !c.Scrollable() {
		ls.AnchorStrategy = material.Overlay
	}
	ls.Layout(gtx, len(c.rows), func(gtx layout.Context, i int) layout.Dimensions {
		return c.layoutRow(gtx, th, i)
	})
}

func (c *ComboBox) layoutRow(gtx layout.Context, th *Theme, i int) layout.Dimensions {
	size := image.Pt(gtx.Constraints.Max.X, c.rowPx)
	gtx.Constraints = layout.Exact(size)

	fg := th.TextPrimary
	switch {
	case i+1 == c.sel:
		fillRRect(gtx, image.Rectangle{Max: size}, gtx.Dp(th.BorderRadiusSm), th.Accent)
		fg = th.AccentText
	case i+1 == c.hl:
		fillRRect(gtx, image.Rectangle{Max: size}, gtx.Dp(th.BorderRadiusSm), th.TableRowHover)
	}

	layout.Inset{Left: th.PaddingH, Right: th.PaddingH}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.W.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			l := material.Body1(th.Material, c.rows[i])
			l.Color = fg
			l.MaxLines = 1
			return l.Layout(gtx)
		})
	})
	return layout.Dimensions{Size: size}
}
