package theme

import (
	"fmt"
	"image/color"
	"reflect"

	"gioui.org/unit"
)

// Token is one resolved entry of a Theme, addressed by its config key.
type Token struct {
	Name  string
	Color color.NRGBA
	Size  unit.Dp
	// IsColor distinguishes colour tokens from sizes.
	IsColor bool
}

// Value renders the token the way stylesheets print it.
func (tk Token) Value() string {
	if tk.IsColor {
		return CSS(tk.Color)
	}
	return fmt.Sprintf("%gpx", float32(tk.Size))
}

// Tokens lists every token of t in declaration order.
func (t Theme) Tokens() []Token {
	tv := reflect.ValueOf(t)
	ot := reflect.TypeOf(Options{})
	out := make([]Token, 0, ot.NumField())
	for i := 0; i < ot.NumField(); i++ {
		f := ot.Field(i)
		v := tv.FieldByName(f.Name).Interface()
		tk := Token{Name: f.Tag.Get("mapstructure")}
		switch v := v.(type) {
		case color.NRGBA:
			tk.Color, tk.IsColor = v, true
		case unit.Dp:
			tk.Size = v
		}
		out = append(out, tk)
	}
	return out
}
