package lang

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestBundle(t *testing.T) (*Bundle, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	b, err := NewBundle(BundleOptions{
		Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	require.NoError(t, err)
	return b, &logs
}

func TestBuiltinMessages(t *testing.T) {
	b, _ := newTestBundle(t)

	assert.Equal(t, "Back", b.Translate(language.English, Key("gridmenu.item.back.name")).Plain())
	assert.Equal(t, "Retour", b.Translate(language.French, Key("gridmenu.item.back.name")).Plain())

	styled := b.Translate(language.English, Key("gridmenu.item.back.name"))
	require.Len(t, styled.Children, 1)
	assert.Equal(t, "gray", styled.Children[0].Style.Color)
}

func TestTemplateArguments(t *testing.T) {
	b, _ := newTestBundle(t)

	desc := Key("gridmenu.item.page.description").With("Page", 2).With("Pages", 5)
	assert.Equal(t, "Page 2 of 5", b.Translate(language.English, desc).Plain())
	assert.Equal(t, "Page 2 sur 5", b.Translate(language.MustParse("fr-CA"), desc).Plain())
}

func TestFallbackLanguage(t *testing.T) {
	b, _ := newTestBundle(t)

	assert.Equal(t, "Confirm", b.Translate(language.Japanese, Key("gridmenu.item.confirm.name")).Plain())
}

func TestMissingMessageRendersIDAndSuggests(t *testing.T) {
	b, logs := newTestBundle(t)

	got := b.Translate(language.English, Key("gridmenu.item.bakc.name"))
	assert.Equal(t, "gridmenu.item.bakc.name", got.Plain())
	assert.Contains(t, logs.String(), "Missing translation")
	assert.Contains(t, logs.String(), "suggestion=gridmenu.item.back.name")

	logs.Reset()
	b.Translate(language.English, Key("gridmenu.item.bakc.name"))
	assert.NotContains(t, logs.String(), "Missing translation")
}

func TestLiteralAndZero(t *testing.T) {
	b, _ := newTestBundle(t)

	assert.Equal(t, " ", b.Translate(language.English, Literal(" ")).Plain())
	assert.Equal(t, "", b.Translate(language.English, Translation{}).Plain())
}

func TestAddMessagesAndPlurals(t *testing.T) {
	b, _ := newTestBundle(t)
	require.NoError(t, b.AddMessages(language.English, map[string]string{"shop.title": "Shop of {{.Owner}}"}))

	got := b.Translate(language.English, Key("shop.title").With("Owner", "Alex"))
	assert.Equal(t, "Shop of Alex", got.Plain())
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shop.de.toml"), []byte(`"shop.title" = "Laden"`+"\n"), 0o644))

	b, _ := newTestBundle(t)
	require.NoError(t, b.LoadDir(dir))

	assert.Equal(t, "Laden", b.Translate(language.German, Key("shop.title")).Plain())
	assert.Contains(t, b.Languages(), language.German)
}

func TestTranslationIsImmutable(t *testing.T) {
	base := Key("shop.title").With("Owner", "Alex")
	changed := base.With("Owner", "Sam")

	assert.Equal(t, "Alex", base.Args()["Owner"])
	assert.Equal(t, "Sam", changed.Args()["Owner"])

	args := base.Args()
	args["Owner"] = "mutated"
	assert.Equal(t, "Alex", base.Args()["Owner"])
}

func TestIdentityLocalizer(t *testing.T) {
	assert.Equal(t, "a.b", Identity.Translate(language.English, Key("a.b")).Plain())
	assert.Equal(t, "", Identity.Translate(language.English, Translation{}).Plain())
}
