package widgets

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type labelCall struct {
	text string
	col  color.NRGBA
	bold bool
}

type tabRecorder struct {
	recordingSurface
	labels []labelCall
}

func (s *tabRecorder) label(_ image.Rectangle, str string, col color.NRGBA, bold bool) {
	s.labels = append(s.labels, labelCall{text: str, col: col, bold: bold})
}

var (
	testText   = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	testMuted  = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	testAccent = color.NRGBA{R: 0x33, G: 0x66, B: 0xff, A: 0xff}
)

func testTabStyle() tabStyle {
	return tabStyle{
		bg:        testBg,
		hover:     testHover,
		text:      testText,
		muted:     testMuted,
		accent:    testAccent,
		underline: 2,
		inset:     4,
		padH:      12,
		padV:      4,
	}
}

func twoTabs() (*RoundedTabBar, []HeaderSection) {
	t := NewRoundedTabBar("Tokens", "Stylesheet")
	return t, tabSizes(t.Tabs, []int{50, 110}, 120, 12)
}

func TestTabSizesEnforceMinimum(t *testing.T) {
	got := tabSizes([]string{"a", "b"}, []int{10, 200}, 120, 12)
	assert.Equal(t, []HeaderSection{{Label: "a", Size: 120}, {Label: "b", Size: 224}}, got)
}

func TestTabBarZeroValueSelectsFirst(t *testing.T) {
	var tb RoundedTabBar
	assert.Equal(t, 0, tb.Selected())
	assert.False(t, tb.Changed())
	assert.Equal(t, -1, tb.Hovered())
}

func TestTabBarEveryTabRoundsTopCorners(t *testing.T) {
	tb, sections := twoTabs()
	tb.arrange(sections, image.Rect(0, 0, 400, 48), 8)

	cells := tb.cells.cells
	require.Len(t, cells, 2)
	assert.Equal(t, image.Rect(0, 0, 120, 48), cells[0].rect)
	assert.Equal(t, image.Rect(120, 0, 254, 48), cells[1].rect)
	for _, c := range cells {
		assert.Equal(t, corners{NW: 8, NE: 8}, c.corners)
	}
}

func TestTabBarRadiusClamped(t *testing.T) {
	tb := NewRoundedTabBar("a")
	tb.arrange([]HeaderSection{{Label: "a", Size: 10}}, image.Rect(0, 0, 100, 48), 20)
	require.Len(t, tb.cells.cells, 1)
	assert.Equal(t, corners{NW: 5, NE: 5}, tb.cells.cells[0].corners)
}

func TestTabBarPaintSelected(t *testing.T) {
	tb, sections := twoTabs()
	tb.arrange(sections, image.Rect(0, 0, 400, 48), 8)

	s := &tabRecorder{}
	tb.paint(s, testTabStyle())

	require.Len(t, s.fills, 2)
	assert.Equal(t, testBg, s.fills[0].col)
	assert.Equal(t, testBg, s.fills[1].col)

	require.Len(t, s.rects, 1, "only the selected tab is underlined")
	assert.Equal(t, image.Rect(4, 46, 116, 48), s.rects[0])

	assert.Equal(t, []labelCall{
		{text: "TOKENS", col: testText, bold: true},
		{text: "Stylesheet", col: testMuted},
	}, s.labels)
}

func TestTabBarHoverSkipsSelected(t *testing.T) {
	tb, sections := twoTabs()
	tb.arrange(sections, image.Rect(0, 0, 400, 48), 8)

	tb.PointerMove(image.Pt(10, 10))
	s := &tabRecorder{}
	tb.paint(s, testTabStyle())
	assert.Equal(t, 0, tb.Hovered())
	assert.Equal(t, testBg, s.fills[0].col)

	tb.PointerMove(image.Pt(200, 10))
	s = &tabRecorder{}
	tb.paint(s, testTabStyle())
	assert.Equal(t, 1, tb.Hovered())
	assert.Equal(t, testHover, s.fills[1].col)

	tb.PointerLeave()
	assert.Equal(t, -1, tb.Hovered())
}

func TestTabBarPressSelects(t *testing.T) {
	tb, sections := twoTabs()
	tb.arrange(sections, image.Rect(0, 0, 400, 48), 8)

	tb.Press(image.Pt(300, 10))
	assert.Equal(t, 0, tb.Selected(), "press past the last tab")
	assert.False(t, tb.Changed())

	tb.Press(image.Pt(130, 10))
	assert.Equal(t, 1, tb.Selected())
	assert.True(t, tb.Changed())
	assert.False(t, tb.Changed())

	s := &tabRecorder{}
	tb.paint(s, testTabStyle())
	require.Len(t, s.rects, 1)
	assert.Equal(t, image.Rect(124, 46, 250, 48), s.rects[0])
}

func TestTabBarSelectOutOfRange(t *testing.T) {
	tb := NewRoundedTabBar("a", "b")
	tb.Select(5)
	tb.Select(-1)
	assert.Equal(t, 0, tb.Selected())
	assert.False(t, tb.Changed())
}

func TestTabBarClippedToBounds(t *testing.T) {
	tb, sections := twoTabs()
	tb.arrange(sections, image.Rect(0, 0, 150, 48), 8)

	cells := tb.cells.cells
	require.Len(t, cells, 2)
	assert.Equal(t, image.Rect(120, 0, 150, 48), cells[1].rect)
	assert.Equal(t, corners{NW: 8, NE: 8}, cells[1].corners)
}
