package theme

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa, rgb(r, g, b) and
// rgba(r, g, b, a) with a in [0,1].
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(v, "#"):
		return parseHex(v)
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseFunc(strings.TrimSuffix(strings.TrimPrefix(v, "rgba("), ")"), 4, s)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseFunc(strings.TrimSuffix(strings.TrimPrefix(v, "rgb("), ")"), 3, s)
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(v string) (color.NRGBA, error) {
	digits := v[1:]
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
	}

	alpha := uint8(0xff)
	switch len(digits) {
	case 3, 6:
	case 8:
		a, _ := strconv.ParseUint(digits[6:], 16, 8)
		alpha = uint8(a)
		v = v[:7]
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
	}

	c, err := colorful.Hex(v)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, v, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

func parseFunc(args string, want int, orig string) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != want {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		ch[i] = uint8(n)
	}

	alpha := uint8(0xff)
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 || math.IsNaN(a) {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		alpha = uint8(math.Round(a * 255))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

// CSS renders c in its canonical text form: #rrggbb when opaque and
// rgba(r, g, b, a) otherwise.
func CSS(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	a := strconv.FormatFloat(float64(c.A)/255, 'f', 2, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, a)
}

// Hex renders the opaque part of c as #rrggbb, dropping alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
