// Package stylesheet renders style documents for window, dialog and table
// container roots from a theme.Theme.
//
// Output is a pure function of the theme: the same Theme always produces the
// same bytes, and a token only reaches the document through theme.CSS, so two
// themes differing in one token yield documents differing only where that
// token is referenced.
package stylesheet

import (
	"fmt"
	"image/color"
	"strings"

	"gioui.org/unit"

	"github.com/glaze-ui/glaze/internal/theme"
)

// Kind names one of the generated documents.
type Kind string

const (
	KindBase   Kind = "base"
	KindDialog Kind = "dialog"
	KindTable  Kind = "table"
)

// Kinds lists every document kind in a stable order.
var Kinds = []Kind{KindBase, KindDialog, KindTable}

// For dispatches to the generator for k.
func For(k Kind, t theme.Theme) (string, error) {
	switch k {
	case KindBase:
		return Base(t), nil
	case KindDialog:
		return Dialog(t), nil
	case KindTable:
		return TableContainer(t), nil
	}
	return "", fmt.Errorf("unknown stylesheet kind %q", k)
}

type variant int

const (
	variantBase variant = iota
	variantDialog
)

func c(col color.NRGBA) string {
	return theme.CSS(col)
}

func px(v unit.Dp) string {
	return fmt.Sprintf("%dpx", int(v))
}

// Base styles a main application window.
func Base(t theme.Theme) string {
	var b strings.Builder

	fmt.Fprintf(&b, `
window { background-color: %s; }
dialog { background-color: %s; }

label { color: %s; }
label#subtitle { color: %s; font-size: 13px; }
`, c(t.BgPrimary), c(t.BgSecondary), c(t.TextPrimary), c(t.TextSecondary))

	writeInputs(&b, t, variantBase)
	writeComboPopup(&b, t)

	fmt.Fprintf(&b, `
table {
    color: %[1]s;
    border: none;
    background: transparent;
    gridline-color: transparent;
    outline: none;
}
table::item {
    background-color: %[2]s;
    padding: 12px 8px;
    border-bottom: %[3]s solid %[4]s;
}
table::item:alternate { background-color: %[5]s; }
table::item:hover { background-color: %[6]s; }
table::item:selected {
    background-color: %[7]s;
    color: %[8]s;
}
table::item:selected:hover {
    background-color: %[9]s;
    color: %[10]s;
}

table-header {
    background: transparent;
    border: none;
}
table-header::section {
    background: transparent;
    border: none;
}
`,
		c(t.TextPrimary), c(t.BgSecondary), px(t.BorderWidth), c(t.Border),
		c(t.TableRowAlt), c(t.TableRowHover), c(t.Accent), c(t.AccentText),
		c(t.AccentHover), c(t.AccentHoverText))

	writeScrollbars(&b, t)
	writeButtons(&b, t, variantBase)
	return b.String()
}

// Dialog styles a modal dialog and every control it may host.
func Dialog(t theme.Theme) string {
	var b strings.Builder

	fmt.Fprintf(&b, `
dialog {
    background-color: %[1]s;
    color: %[2]s;
}
label {
    color: %[3]s;
    font-size: 13px;
}

tabbar::pane {
    background-color: %[4]s;
    border: none;
    border-radius: %[5]s;
    padding: 0;
}
tabbar::tab {
    background-color: transparent;
    color: %[3]s;
    border: none;
    border-bottom: 2px solid transparent;
    padding: 12px 20px;
    margin-right: 8px;
    font-size: 13px;
    font-weight: 500;
}
tabbar::tab:selected {
    color: %[2]s;
    border-bottom: 2px solid %[6]s;
}
tabbar::tab:hover:!selected { color: %[2]s; }

groupbox {
    background-color: %[1]s;
    border: %[7]s solid %[8]s;
    border-radius: %[5]s;
    margin-top: 20px;
    padding: %[9]s %[10]s %[10]s %[10]s;
    font-size: 13px;
}
groupbox::title {
    color: %[2]s;
    font-weight: 600;
    font-size: 14px;
    padding: 0 8px;
    left: 10px;
}
`,
		c(t.BgPrimary), c(t.TextPrimary), c(t.TextSecondary), c(t.BgSecondary),
		px(t.BorderRadius), c(t.Accent), px(t.BorderWidth), c(t.Border),
		px(t.SpacingLg), px(t.Spacing))

	writeIndicator(&b, t, "checkbox", 4)
	writeIndicator(&b, t, "radio", 10)

	fmt.Fprintf(&b, `
spinbox {
    background-color: %[1]s;
    border: %[2]s solid %[3]s;
    border-radius: %[4]s;
    padding: %[5]s %[6]s;
    color: %[7]s;
    font-size: 13px;
    min-height: 24px;
}
spinbox:focus {
    border: %[2]s solid %[8]s;
    background-color: %[9]s;
}
spinbox:hover { border-color: %[10]s; }
spinbox::button:hover { background-color: %[11]s; }

slider::groove {
    background: %[3]s;
    height: 4px;
    border-radius: 2px;
}
slider::handle {
    background: %[8]s;
    width: 18px;
    height: 18px;
    border-radius: 9px;
}
slider::handle:hover { background: %[12]s; }
slider::sub-page { background: %[8]s; }
slider::add-page { background: %[3]s; }
`,
		c(t.BgSecondary), px(t.BorderWidth), c(t.Border), px(t.BorderRadiusSm),
		px(t.PaddingV), px(t.PaddingH), c(t.TextPrimary), c(t.Accent),
		c(t.BgPrimary), c(t.TextSecondary), c(t.TableRowHover), c(t.AccentHover))

	writeComboPopup(&b, t)
	writeInputs(&b, t, variantDialog)
	writeButtons(&b, t, variantDialog)
	return b.String()
}

// TableContainer styles the card a table sits in.
func TableContainer(t theme.Theme) string {
	return fmt.Sprintf(`
table-container {
    background-color: %s;
    border: %s solid %s;
    border-radius: %s;
    box-shadow: 0 %s %s %s;
}
`, c(t.BgSecondary), px(t.BorderWidth), c(t.Border), px(t.BorderRadiusLg),
		px(t.SpacingSm/2), px(t.Spacing), c(t.ShadowColor))
}

func writeInputs(b *strings.Builder, t theme.Theme, v variant) {
	radius, fontSize, extra := t.BorderRadius, "14px", ""
	focusBorder, focusBg := t.BorderFocus, ""
	if v == variantDialog {
		radius, fontSize, extra = t.BorderRadiusSm, "13px", "\n    min-height: 24px;"
		focusBorder = t.Accent
		focusBg = fmt.Sprintf("\n    background-color: %s;", c(t.BgPrimary))
	}

	fmt.Fprintf(b, `
input, combobox {
    background-color: %s;
    border: %s solid %s;
    border-radius: %s;
    padding: %s %s;
    color: %s;
    font-size: %s;%s
}
input:focus, combobox:focus {
    border: %s solid %s;%s
}
input:hover, combobox:hover { border-color: %s; }
`,
		c(t.BgSecondary), px(t.BorderWidth), c(t.Border), px(radius),
		px(t.PaddingV), px(t.PaddingH), c(t.TextPrimary), fontSize, extra,
		px(t.BorderWidth), c(focusBorder), focusBg, c(t.TextSecondary))
}

func writeComboPopup(b *strings.Builder, t theme.Theme) {
	fmt.Fprintf(b, `
combobox::drop-down {
    border: none;
    width: 30px;
}
combobox-popup {
    background-color: %[1]s;
    color: %[2]s;
    border: %[3]s solid %[4]s;
    border-radius: 4px;
    padding: 0;
    outline: none;
}
combobox-popup::item {
    padding: 6px 10px;
    min-height: 24px;
}
combobox-popup::item:hover { background-color: %[5]s; }
combobox-popup::item:selected {
    background-color: %[6]s;
    color: %[7]s;
}
`,
		c(t.BgSecondary), c(t.TextPrimary), px(t.BorderWidth), c(t.Border),
		c(t.TableRowHover), c(t.Accent), c(t.AccentText))
}

func writeScrollbars(b *strings.Builder, t theme.Theme) {
	for _, axis := range []struct{ name, thick, length string }{
		{"vertical", "width", "min-height"},
		{"horizontal", "height", "min-width"},
	} {
		fmt.Fprintf(b, `
scrollbar:%[1]s {
    background: %[4]s;
    %[2]s: 10px;
    border-radius: 5px;
    margin: 0;
}
scrollbar::handle:%[1]s {
    background: %[5]s;
    border-radius: 5px;
    %[3]s: 30px;
}
scrollbar::handle:%[1]s:hover { background: %[6]s; }
`, axis.name, axis.thick, axis.length, c(t.BgSecondary), c(t.Border), c(t.Accent))
	}
}

func writeButtons(b *strings.Builder, t theme.Theme, v variant) {
	radius, fontSize, weight := t.BorderRadius, "14px", "bold"
	secondaryBg := c(t.BgSecondary)
	if v == variantDialog {
		radius, fontSize, weight = t.BorderRadiusSm, "13px", "600"
		secondaryBg = "transparent"
	}

	fmt.Fprintf(b, `
button {
    background-color: %[1]s;
    color: %[2]s;
    border: none;
    border-radius: %[3]s;
    padding: %[4]s %[5]s;
    font-size: %[6]s;
    font-weight: %[7]s;
}
button:hover { background-color: %[8]s; color: %[9]s; }
button:pressed { background-color: %[10]s; color: %[2]s; }
button:disabled {
    background-color: %[11]s;
    color: %[12]s;
}

button#secondary {
    background-color: %[13]s;
    border: %[14]s solid %[11]s;
    color: %[15]s;
}
button#secondary:hover {
    border-color: %[1]s;
    color: %[1]s;
}

button#cancel {
    background-color: transparent;
    border: %[14]s solid %[11]s;
    color: %[12]s;
}
button#cancel:hover {
    border-color: %[15]s;
    color: %[15]s;
    background-color: %[16]s;
}
`,
		c(t.Accent), c(t.AccentText), px(radius), px(t.PaddingV), px(t.PaddingH),
		fontSize, weight, c(t.AccentHover), c(t.AccentHoverText), c(t.AccentPressed),
		c(t.Border), c(t.TextSecondary), secondaryBg, px(t.BorderWidth),
		c(t.TextPrimary), c(t.TableRowHover))

	if v == variantDialog {
		fmt.Fprintf(b, `button#secondary:pressed { background-color: %s; }
`, c(t.BgPrimary))
		return
	}
	fmt.Fprintf(b, `button#danger {
    background-color: transparent;
    border: %s solid %s;
    color: %s;
}
button#danger:hover { background-color: %s; }
`, px(t.BorderWidth), c(t.Danger), c(t.Danger), c(t.DangerBg))
}

func writeIndicator(b *strings.Builder, t theme.Theme, name string, radius int) {
	fmt.Fprintf(b, `
%[1]s {
    color: %[2]s;
    spacing: 10px;
    font-size: 13px;
    padding: 4px;
}
%[1]s::indicator {
    width: 20px;
    height: 20px;
    border: 2px solid %[3]s;
    border-radius: %[4]dpx;
    background-color: %[5]s;
}
%[1]s::indicator:checked {
    background-color: %[6]s;
    border-color: %[6]s;
}
%[1]s::indicator:hover {
    border-color: %[6]s;
    background-color: %[7]s;
}
%[1]s::indicator:checked:hover { background-color: %[8]s; }
`, name, c(t.TextPrimary), c(t.Border), radius, c(t.BgPrimary),
		c(t.Accent), c(t.TableRowHover), c(t.AccentHover))
}
