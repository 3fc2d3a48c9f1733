package app

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/glaze-ui/glaze/internal/config"
	"github.com/glaze-ui/glaze/internal/palette"
	"github.com/glaze-ui/glaze/internal/theme"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	v := viper.New()
	v.Set(config.KeyMode, "dark")
	v.Set(config.KeyHistoryDir, t.TempDir())
	a, err := NewApp(v, zap.NewNop())
	require.NoError(t, err)
	return a
}

func pngOf(t *testing.T, c color.NRGBA) *bytes.Buffer {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestNewAppUsesConfiguredTheme(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, theme.Default(), a.Theme())

	_, ok := a.TakeTheme()
	assert.False(t, ok)
}

func TestNewAppRejectsBadConfig(t *testing.T) {
	v := viper.New()
	v.Set(config.KeySeed, "not-a-colour")
	v.Set(config.KeyHistoryDir, t.TempDir())
	_, err := NewApp(v, nil)
	assert.ErrorIs(t, err, palette.ErrInvalidSeed)
}

func TestSetThemeIsAppliedOnce(t *testing.T) {
	a := newTestApp(t)
	invalidated := 0
	a.Invalidate = func() { invalidated++ }

	next := theme.MustNew(theme.Options{Accent: "#010203"})
	a.SetTheme(next)
	assert.Equal(t, 1, invalidated)
	assert.Equal(t, theme.Default(), a.Theme(), "not active until taken")

	got, ok := a.TakeTheme()
	require.True(t, ok)
	assert.Equal(t, next, got)
	assert.Equal(t, next, a.Theme())

	_, ok = a.TakeTheme()
	assert.False(t, ok)
}

func TestThemeFromWallpaper(t *testing.T) {
	a := newTestApp(t)
	a.Config.Set(config.TokenKey("border"), "#abcdef")

	a.ThemeFromWallpaper("wall.png", pngOf(t, color.NRGBA{R: 0x30, G: 0x30, B: 0xb0, A: 0xff}))

	got, ok := a.TakeTheme()
	require.True(t, ok)

	p, err := palette.Generate("#2020a0", palette.Dark)
	require.NoError(t, err)
	want, err := theme.ParseColor(p.Primary)
	require.NoError(t, err)
	assert.Equal(t, want, got.Accent)
	assert.Equal(t, color.NRGBA{R: 0xab, G: 0xcd, B: 0xef, A: 0xff}, got.Border, "overrides still apply")

	status, busy, err := a.Status()
	assert.NoError(t, err)
	assert.False(t, busy)
	assert.Contains(t, status, "#2020a0")
}

func TestThemeFromWallpaperBadImage(t *testing.T) {
	a := newTestApp(t)
	a.ThemeFromWallpaper("junk.png", bytes.NewBufferString("not an image"))

	_, ok := a.TakeTheme()
	assert.False(t, ok)
	_, busy, err := a.Status()
	assert.Error(t, err)
	assert.False(t, busy)
}

func TestResetTheme(t *testing.T) {
	a := newTestApp(t)
	a.SetTheme(theme.MustNew(theme.Options{Accent: "#010203"}))
	a.TakeTheme()

	a.ResetTheme()
	got, ok := a.TakeTheme()
	require.True(t, ok)
	assert.Equal(t, theme.Default(), got)
}

func TestWallpaperIsRecorded(t *testing.T) {
	a := newTestApp(t)
	recent, v0 := a.Recent()
	assert.Empty(t, recent)

	a.ThemeFromWallpaper("sea.png", pngOf(t, color.NRGBA{R: 0x30, G: 0x30, B: 0xb0, A: 0xff}))

	recent, v1 := a.Recent()
	require.Len(t, recent, 1)
	assert.NotEqual(t, v0, v1)
	assert.Equal(t, "#2020a0", recent[0].Seed)
	assert.Equal(t, "dark", recent[0].Mode)
	assert.Equal(t, "sea.png", recent[0].Name)
}

func TestThemeFromSeed(t *testing.T) {
	a := newTestApp(t)
	a.ThemeFromSeed("#3f51b5", "light")

	got, ok := a.TakeTheme()
	require.True(t, ok)
	p, err := palette.Generate("#3f51b5", palette.Light)
	require.NoError(t, err)
	want, err := theme.ParseColor(p.Primary)
	require.NoError(t, err)
	assert.Equal(t, want, got.Accent)

	recent, _ := a.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, "seed", recent[0].Source)
}

func TestThemeFromSeedInvalid(t *testing.T) {
	a := newTestApp(t)
	a.ThemeFromSeed("#3f51b5", "sepia")

	_, ok := a.TakeTheme()
	assert.False(t, ok)
	_, _, err := a.Status()
	assert.ErrorIs(t, err, palette.ErrInvalidMode)
	recent, _ := a.Recent()
	assert.Empty(t, recent)
}

func TestNewAppWithoutHistory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	v := viper.New()
	v.Set(config.KeyHistoryDir, filepath.Join(file, "sub"))
	a, err := NewApp(v, nil)
	require.NoError(t, err)
	assert.Nil(t, a.History)

	a.ThemeFromSeed("#3f51b5", "dark")
	_, ok := a.TakeTheme()
	assert.True(t, ok, "themes still apply without history")
}
