package screens

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glaze-ui/glaze/internal/app"
	"github.com/glaze-ui/glaze/internal/config"
	"github.com/glaze-ui/glaze/internal/stylesheet"
	"github.com/glaze-ui/glaze/internal/theme"
	"github.com/glaze-ui/glaze/internal/ui/widgets"
)

func newGallery(t *testing.T) *GalleryScreen {
	t.Helper()
	v := viper.New()
	v.Set(config.KeyHistoryDir, t.TempDir())
	a, err := app.NewApp(v, nil)
	require.NoError(t, err)
	return NewGalleryScreen(a, &widgets.Theme{Theme: a.Theme()})
}

func TestTokenGroupsCoverEveryToken(t *testing.T) {
	for _, tk := range theme.Default().Tokens() {
		n := 0
		for _, g := range tokenGroups[1:] {
			if g.Match(tk) {
				n++
			}
		}
		assert.Equal(t, 1, n, "token %s should belong to exactly one group", tk.Name)
	}
}

func TestGalleryGroupFilter(t *testing.T) {
	s := newGallery(t)
	assert.Len(t, s.rows, len(theme.TokenNames()))

	s.Group.SetCurrentIndex(len(tokenGroups) - 1)
	s.refresh()
	require.NotEmpty(t, s.rows)
	for _, tk := range s.rows {
		assert.False(t, tk.IsColor, tk.Name)
	}
}

func TestGallerySetThemeRefreshesValues(t *testing.T) {
	s := newGallery(t)
	next := theme.MustNew(theme.Options{BgPrimary: "#010203"})
	s.SetTheme(&widgets.Theme{Theme: next})

	require.Equal(t, "bg_primary", s.rows[0].Name)
	assert.Equal(t, "#010203", s.rows[0].Value())
}

func TestGalleryPreviewFollowsKindAndTheme(t *testing.T) {
	s := newGallery(t)
	s.updatePreview()
	assert.Equal(t, stylesheet.Base(s.Theme.Theme), s.Preview.Text())

	s.Sheet.SetCurrentIndex(2)
	s.updatePreview()
	assert.Equal(t, stylesheet.TableContainer(s.Theme.Theme), s.Preview.Text())

	s.SetTheme(&widgets.Theme{Theme: theme.MustNew(theme.Options{BgSecondary: "#0a0b0c"})})
	s.updatePreview()
	assert.Contains(t, s.Preview.Text(), "#0a0b0c")
}

func TestGallerySyncRecent(t *testing.T) {
	s := newGallery(t)
	s.syncRecent()
	assert.Zero(t, s.Recent.Len())

	s.App.ThemeFromSeed("#3f51b5", "dark")
	s.syncRecent()
	assert.Equal(t, []string{"#3f51b5 dark"}, s.Recent.Items())
	assert.False(t, s.Recent.Changed())
}

func TestGalleryCombosShareViewport(t *testing.T) {
	s := newGallery(t)
	require.NotNil(t, s.Viewport)
	for _, c := range []*widgets.ComboBox{&s.Group, &s.Sheet, &s.Recent} {
		assert.Same(t, s.Viewport, c.Viewport)
	}
}

func TestGalleryTabs(t *testing.T) {
	s := newGallery(t)
	assert.Equal(t, []string{"Tokens", "Stylesheet"}, s.Tabs.Tabs)
	assert.Equal(t, tabTokens, s.Tabs.Selected())

	s.Tabs.Select(tabStylesheet)
	assert.True(t, s.Tabs.Changed())
	assert.Equal(t, tabStylesheet, s.Tabs.Selected())
}
