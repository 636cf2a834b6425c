package catalog_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/locgen/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParser(t *testing.T) {
	t.Parallel()
	parser := catalog.NewJSONParser()

	t.Run("flat object", func(t *testing.T) {
		t.Parallel()
		result, err := parser.Parse(context.Background(), []byte(`{"GREETING": "Hello", "FAREWELL": "Bye"}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"GREETING": "Hello", "FAREWELL": "Bye"}, result)
	})

	t.Run("empty object", func(t *testing.T) {
		t.Parallel()
		result, err := parser.Parse(context.Background(), []byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("invalid syntax", func(t *testing.T) {
		t.Parallel()
		result, err := parser.Parse(context.Background(), []byte(`{"GREETING": "Hello",}`))
		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, catalog.ErrFailedToParseJSON)
	})

	t.Run("nested object is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte(`{"menu": {"open": "Open"}}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrNonStringValue)
		assert.Contains(t, err.Error(), `"menu"`)
	})

	t.Run("number value is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte(`{"count": 3}`))
		assert.ErrorIs(t, err, catalog.ErrNonStringValue)
	})

	t.Run("top level array is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte(`["a", "b"]`))
		assert.ErrorIs(t, err, catalog.ErrFailedToParseJSON)
	})

	t.Run("null document is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte(`null`))
		assert.ErrorIs(t, err, catalog.ErrNotAnObject)
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := parser.Parse(ctx, []byte(`{}`))
		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, catalog.ErrParsingCancelled)
	})

	t.Run("supported extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension("json"))
		assert.True(t, parser.SupportsFileExtension(".JSON"))
		assert.False(t, parser.SupportsFileExtension("yaml"))
	})
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	parser := catalog.NewYAMLParser()

	t.Run("flat mapping", func(t *testing.T) {
		t.Parallel()
		result, err := parser.Parse(context.Background(), []byte("GREETING: Bonjour\nFAREWELL: \"Au revoir\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "Bonjour", result["GREETING"])
		assert.Equal(t, "Au revoir", result["FAREWELL"])
	})

	t.Run("unquoted boolean is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte("ENABLED: true\n"))
		assert.ErrorIs(t, err, catalog.ErrNonStringValue)
	})

	t.Run("invalid syntax", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte("GREETING: [unclosed\n"))
		assert.ErrorIs(t, err, catalog.ErrFailedToParseYAML)
	})

	t.Run("supported extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension("yaml"))
		assert.True(t, parser.SupportsFileExtension(".yml"))
		assert.False(t, parser.SupportsFileExtension("json"))
	})
}

func TestTOMLParser(t *testing.T) {
	t.Parallel()
	parser := catalog.NewTOMLParser()

	t.Run("flat document", func(t *testing.T) {
		t.Parallel()
		result, err := parser.Parse(context.Background(), []byte("GREETING = \"Hallo\"\nFAREWELL = \"Tschüss\"\n"))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"GREETING": "Hallo", "FAREWELL": "Tschüss"}, result)
	})

	t.Run("table is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte("[menu]\nopen = \"Open\"\n"))
		assert.ErrorIs(t, err, catalog.ErrNonStringValue)
	})

	t.Run("invalid syntax", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte("GREETING = \n"))
		assert.ErrorIs(t, err, catalog.ErrFailedToParseTOML)
	})
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &catalog.JSONParser{}, catalog.NewParserForFile("strings.json"))
	assert.IsType(t, &catalog.YAMLParser{}, catalog.NewParserForFile("strings.yml"))
	assert.IsType(t, &catalog.YAMLParser{}, catalog.NewParserForFile("strings.YAML"))
	assert.IsType(t, &catalog.TOMLParser{}, catalog.NewParserForFile("strings.toml"))
	assert.Nil(t, catalog.NewParserForFile("strings.po"))
	assert.Nil(t, catalog.NewParserForFile("strings"))
}
