package matugen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glaze-ui/glaze/internal/palette"
	"github.com/glaze-ui/glaze/internal/theme"
)

var roleNames = []string{
	"primary", "on_primary", "primary_container", "on_primary_container",
	"secondary", "secondary_container", "secondary_fixed_dim",
	"tertiary", "tertiary_container", "tertiary_fixed_dim",
	"error", "error_container",
	"surface", "surface_dim", "surface_container", "surface_container_low", "surface_container_lowest",
	"on_surface", "on_surface_variant", "outline", "outline_variant", "shadow", "scrim",
}

func roles(hex string) map[string]string {
	m := make(map[string]string, len(roleNames))
	for _, n := range roleNames {
		m[n] = hex
	}
	return m
}

type fakeRunner struct {
	out  []byte
	err  error
	name string
	args []string
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.name, f.args = name, args
	return f.out, f.err
}

func installed(r Runner) *Client {
	return &Client{Path: "matugen", Runner: r, LookPath: func(p string) (string, error) { return "/usr/bin/" + p, nil }}
}

func matugenJSON(t *testing.T, dark, light string) []byte {
	t.Helper()
	colors := map[string]map[string]string{}
	for _, n := range roleNames {
		colors[n] = map[string]string{"dark": dark, "light": light, "default": dark}
	}
	b, err := json.Marshal(map[string]any{"colors": colors})
	require.NoError(t, err)
	return b
}

func TestNormalizeScheme(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", DefaultScheme},
		{"vibrant", "scheme-vibrant"},
		{"scheme-fruit-salad", "scheme-fruit-salad"},
		{" Neutral ", "scheme-neutral"},
	}
	for _, tt := range tests {
		got, err := NormalizeScheme(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := NormalizeScheme("plaid")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestRequestArgs(t *testing.T) {
	args, err := Request{Image: "/tmp/wall.png", Scheme: "vibrant", Mode: palette.Light}.Args()
	require.NoError(t, err)
	assert.Equal(t, []string{"image", "/tmp/wall.png", "-t", "scheme-vibrant", "-m", "light", "-j", "hex"}, args)

	args, err = Request{Color: "e94560"}.Args()
	require.NoError(t, err)
	assert.Equal(t, []string{"color", "hex", "#e94560", "-t", DefaultScheme, "-m", "dark", "-j", "hex"}, args)

	args, err = Request{Image: "a.png", Color: "#fff"}.Args()
	require.NoError(t, err)
	assert.Equal(t, "image", args[0], "image wins over colour")

	_, err = Request{}.Args()
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestColorsPicksMode(t *testing.T) {
	r := &fakeRunner{out: matugenJSON(t, "#111111", "#eeeeee")}
	c := installed(r)

	got, err := c.Colors(context.Background(), Request{Color: "#3f51b5", Mode: palette.Light})
	require.NoError(t, err)
	assert.Equal(t, "#eeeeee", got["primary"])
	assert.Equal(t, "matugen", r.name)
	assert.Contains(t, r.args, "light")
}

func TestColorsErrors(t *testing.T) {
	missing := &Client{Path: "matugen", Runner: &fakeRunner{}, LookPath: func(string) (string, error) {
		return "", errors.New("not found")
	}}
	assert.False(t, missing.Available())
	_, err := missing.Colors(context.Background(), Request{Color: "#000000"})
	assert.ErrorIs(t, err, ErrNotInstalled)

	boom := errors.New("exit status 1")
	_, err = installed(&fakeRunner{err: boom}).Colors(context.Background(), Request{Color: "#000000"})
	assert.ErrorIs(t, err, boom)

	_, err = installed(&fakeRunner{out: []byte("not json")}).Colors(context.Background(), Request{Color: "#000000"})
	assert.ErrorContains(t, err, "decoding matugen output")
}

func TestOptionsDarkAndLight(t *testing.T) {
	o, err := Options(roles("#445566"), palette.Dark)
	require.NoError(t, err)
	assert.Equal(t, "#000000", o.BgPrimary)
	assert.Equal(t, "#445566", o.Accent)
	assert.Empty(t, o.Success, "status colours keep their defaults")

	th, err := theme.New(o)
	require.NoError(t, err)
	assert.Equal(t, theme.Default().Success, th.Success)

	o, err = Options(roles("#ddeeff"), palette.Light)
	require.NoError(t, err)
	assert.Equal(t, "#ddeeff", o.BgPrimary)
	assert.Equal(t, "#ddeeff", o.SurfaceDim)
}

func TestOptionsMissingRole(t *testing.T) {
	r := roles("#445566")
	delete(r, "scrim")
	delete(r, "primary")

	_, err := Options(r, palette.Dark)
	require.ErrorIs(t, err, ErrMissingRole)
	assert.Contains(t, err.Error(), "scrim")
	assert.Contains(t, err.Error(), "primary")
}
