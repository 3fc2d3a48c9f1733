// Package matugen derives palettes with the external matugen tool, which
// implements the Material You scheme variants the built-in generator does
// not.
package matugen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/glaze-ui/glaze/internal/palette"
	"github.com/glaze-ui/glaze/internal/theme"
)

// DefaultScheme is matugen's own default variant.
const DefaultScheme = "scheme-tonal-spot"

// Schemes lists the scheme variants matugen accepts.
var Schemes = []string{
	"scheme-tonal-spot",
	"scheme-vibrant",
	"scheme-expressive",
	"scheme-rainbow",
	"scheme-fruit-salad",
	"scheme-fidelity",
	"scheme-content",
	"scheme-monochrome",
	"scheme-neutral",
}

var (
	ErrUnknownScheme = errors.New("unknown scheme")
	ErrNotInstalled  = errors.New("matugen is not installed")
	ErrNoSource      = errors.New("matugen needs an image or a colour")
	ErrMissingRole   = errors.New("matugen output lacks a colour role")
)

// NormalizeScheme accepts full ("scheme-vibrant") and short ("vibrant")
// names. The empty name is DefaultScheme.
func NormalizeScheme(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultScheme, nil
	}
	for _, s := range Schemes {
		if name == s || "scheme-"+name == s {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownScheme, name, strings.Join(Schemes, ", "))
}

// Runner runs a command and returns its standard output.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// Request selects the palette source: Image wins over Color.
type Request struct {
	Image  string
	Color  string
	Scheme string
	Mode   palette.Mode
}

// Args returns the matugen command line for r, without the program name.
func (r Request) Args() ([]string, error) {
	scheme, err := NormalizeScheme(r.Scheme)
	if err != nil {
		return nil, err
	}
	mode := r.Mode
	if mode == "" {
		mode = palette.Dark
	}

	var args []string
	switch {
	case r.Image != "":
		args = []string{"image", r.Image}
	case r.Color != "":
		c := r.Color
		if !strings.HasPrefix(c, "#") {
			c = "#" + c
		}
		args = []string{"color", "hex", c}
	default:
		return nil, ErrNoSource
	}
	return append(args, "-t", scheme, "-m", string(mode), "-j", "hex"), nil
}

// Client runs matugen. The zero value is not usable; use New.
type Client struct {
	Path     string
	Runner   Runner
	LookPath func(string) (string, error)
}

func New() *Client {
	return &Client{Path: "matugen", Runner: ExecRunner{}, LookPath: exec.LookPath}
}

// Available reports whether the matugen binary can be found.
func (c *Client) Available() bool {
	_, err := c.LookPath(c.Path)
	return err == nil
}

type output struct {
	Colors map[string]map[string]string `json:"colors"`
}

// Colors runs matugen and returns its colour roles for the requested mode.
func (c *Client) Colors(ctx context.Context, r Request) (map[string]string, error) {
	args, err := r.Args()
	if err != nil {
		return nil, err
	}
	if !c.Available() {
		return nil, ErrNotInstalled
	}
	out, err := c.Runner.Output(ctx, c.Path, args...)
	if err != nil {
		return nil, err
	}

	var o output
	if err := json.Unmarshal(out, &o); err != nil {
		return nil, fmt.Errorf("decoding matugen output: %w", err)
	}
	mode := string(r.Mode)
	if mode == "" {
		mode = string(palette.Dark)
	}
	roles := make(map[string]string, len(o.Colors))
	for name, variants := range o.Colors {
		if v, ok := variants[mode]; ok {
			roles[name] = v
		}
	}
	return roles, nil
}

// Options maps matugen colour roles onto theme tokens. Dark themes sit on
// pure black; light themes use matugen's surface. Status colours other than
// danger keep their defaults.
func Options(roles map[string]string, mode palette.Mode) (theme.Options, error) {
	var missing []string
	role := func(name string) string {
		v, ok := roles[name]
		if !ok {
			missing = append(missing, name)
		}
		return v
	}

	o := theme.Options{
		BgSecondary: role("surface_container_lowest"),
		BgTertiary:  role("surface_container_low"),

		Surface:        role("surface_container_low"),
		SurfaceVariant: role("surface_container"),

		Border:         role("outline_variant"),
		BorderFocus:    role("primary"),
		BorderHover:    role("outline"),
		Outline:        role("outline"),
		OutlineVariant: role("outline_variant"),

		TextPrimary:   role("on_surface"),
		TextSecondary: role("on_surface_variant"),
		TextTertiary:  role("outline"),
		TextDark:      role("on_primary_container"),
		TextDisabled:  role("outline_variant"),

		Accent:          role("primary_container"),
		AccentHover:     role("primary"),
		AccentPressed:   role("primary_container"),
		AccentContainer: role("primary_container"),
		AccentText:      role("on_primary_container"),
		AccentHoverText: role("on_primary"),

		Secondary:          role("secondary"),
		SecondaryHover:     role("secondary_fixed_dim"),
		SecondaryPressed:   role("secondary_container"),
		SecondaryContainer: role("secondary_container"),

		Tertiary:          role("tertiary"),
		TertiaryHover:     role("tertiary_fixed_dim"),
		TertiaryPressed:   role("tertiary_container"),
		TertiaryContainer: role("tertiary_container"),

		Danger:   role("error"),
		DangerBg: role("error_container"),

		SelectionBg:    role("primary_container"),
		PressedOverlay: "rgba(0, 0, 0, 0.1)",

		TableHeaderBg:   role("surface_container"),
		TableRowAlt:     role("surface_container_lowest"),
		TableRowHover:   role("surface_container_low"),
		ShadowColor:     role("shadow"),
		ShadowElevation: role("scrim"),
	}
	if mode == palette.Light {
		o.BgPrimary = role("surface")
		o.SurfaceDim = role("surface_dim")
		o.HoverOverlay = "rgba(0, 0, 0, 0.05)"
	} else {
		o.BgPrimary = "#000000"
		o.SurfaceDim = "#000000"
		o.HoverOverlay = "rgba(255, 255, 255, 0.05)"
	}

	if len(missing) > 0 {
		return theme.Options{}, fmt.Errorf("%w: %s", ErrMissingRole, strings.Join(missing, ", "))
	}
	return o, nil
}
