package l10ntest_test

import (
	"context"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/locgen/pkg/codegen/internal/l10ntest"
	"github.com/dmitrymomot/locgen/pkg/localize"
)

func TestStrings(t *testing.T) {
	t.Parallel()

	s := l10ntest.New()
	assert.Equal(t, l10ntest.DefaultLanguage, s.Lang())
	assert.Empty(t, s.Greeting())

	require.NoError(t, s.Load(context.Background(), os.DirFS("testdata")))
	assert.Equal(t, "Hello", s.Greeting())
	assert.Equal(t, "Goodbye", s.Farewell())
	assert.Equal(t, "Main menu", s.MainMenuTitle())

	s.SetLang("fr")
	assert.Equal(t, "fr", s.Lang())
	assert.Equal(t, "Bonjour", s.Greeting())
	assert.Equal(t, "Au revoir", s.Farewell())
	assert.Equal(t, "Menu principal", s.MainMenuTitle())

	t.Run("unknown language falls back to default", func(t *testing.T) {
		s.SetLang("xx")
		assert.Equal(t, "en", s.Lang())
		assert.Equal(t, "Hello", s.Greeting())
	})
}

func TestStrings_LoadMissingTranslation(t *testing.T) {
	t.Parallel()

	root := fstest.MapFS{
		"Localization/en/strings.json": {Data: []byte(`{"FAREWELL":"Goodbye","GREETING":"Hello","main_menu.title":"Main menu"}`)},
		"Localization/fr/strings.json": {Data: []byte(`{"FAREWELL":"Au revoir","GREETING":"Bonjour"}`)},
	}

	s := l10ntest.New()
	err := s.Load(context.Background(), root)
	require.ErrorIs(t, err, localize.ErrMissingTranslation)
	assert.Contains(t, err.Error(), "fr/main_menu.title")
	assert.Empty(t, s.Greeting(), "a failed load leaves every table untouched")
}
