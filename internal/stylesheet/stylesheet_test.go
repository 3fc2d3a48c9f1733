package stylesheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glaze-ui/glaze/internal/theme"
)

func generators() map[Kind]func(theme.Theme) string {
	return map[Kind]func(theme.Theme) string{
		KindBase:   Base,
		KindDialog: Dialog,
		KindTable:  TableContainer,
	}
}

func TestDeterministic(t *testing.T) {
	th := theme.Default()
	for kind, gen := range generators() {
		assert.Equal(t, gen(th), gen(th), kind)
		assert.Equal(t, gen(th), gen(theme.Default()), kind)
	}
}

func TestAccentChangeIsLocal(t *testing.T) {
	a := theme.MustNew(theme.Options{Accent: "#010203"})
	b := theme.MustNew(theme.Options{Accent: "#040506"})

	for kind, gen := range generators() {
		docA, docB := gen(a), gen(b)
		assert.Equal(t, docB, strings.ReplaceAll(docA, "#010203", "#040506"), kind)
	}
	assert.Contains(t, Base(a), "#010203")
	assert.Contains(t, Dialog(a), "#010203")
}

func TestTokensReachDocuments(t *testing.T) {
	th := theme.MustNew(theme.Options{
		BgPrimary:      "#101112",
		BgSecondary:    "#202122",
		Border:         "#303132",
		BorderRadiusLg: 18,
		ShadowColor:    "rgba(1, 2, 3, 0.5)",
	})

	base := Base(th)
	assert.Contains(t, base, "window { background-color: #101112; }")
	assert.Contains(t, base, "table-header")
	assert.Contains(t, base, "button#danger")
	assert.NotContains(t, base, "button#secondary:pressed")

	dialog := Dialog(th)
	assert.Contains(t, dialog, "groupbox")
	assert.Contains(t, dialog, "min-height: 24px;")
	assert.Contains(t, dialog, "button#secondary:pressed { background-color: #101112; }")
	assert.NotContains(t, dialog, "button#danger")

	table := TableContainer(th)
	assert.Contains(t, table, "background-color: #202122;")
	assert.Contains(t, table, "border: 1px solid #303132;")
	assert.Contains(t, table, "border-radius: 18px;")
	assert.Contains(t, table, "rgba(1, 2, 3, 0.50)")
}

func TestFor(t *testing.T) {
	th := theme.Default()
	for _, k := range Kinds {
		doc, err := For(k, th)
		require.NoError(t, err)
		assert.Equal(t, generators()[k](th), doc)
	}

	_, err := For("sidebar", th)
	assert.Error(t, err)
}

func TestBracesBalanced(t *testing.T) {
	th := theme.Default()
	for kind, gen := range generators() {
		doc := gen(th)
		assert.Equal(t, strings.Count(doc, "{"), strings.Count(doc, "}"), kind)
		assert.NotContains(t, doc, "%!", "formatting verb leaked into %s", kind)
	}
}
