package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/locgen/pkg/config"
)

type generatorConfig struct {
	Target      string   `env:"LOCGEN_TEST_TARGET" envDefault:"cpp"`
	DefaultLang string   `env:"LOCGEN_TEST_DEFAULT_LANG" envDefault:"en"`
	Verbose     bool     `env:"LOCGEN_TEST_VERBOSE" envDefault:"false"`
	Languages   []string `env:"LOCGEN_TEST_LANGUAGES" envSeparator:","`
}

type cachedConfig struct {
	Value string `env:"LOCGEN_TEST_CACHED" envDefault:"default"`
}

type fileConfig struct {
	Package    string `env:"LOCGEN_TEST_FILE_PACKAGE"`
	RuntimeDir string `env:"LOCGEN_TEST_FILE_RUNTIME_DIR"`
}

type requiredConfig struct {
	Root string `env:"LOCGEN_TEST_REQUIRED_ROOT,required"`
}

func TestLoad(t *testing.T) {
	t.Run("environment values", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("LOCGEN_TEST_TARGET", "go")
		t.Setenv("LOCGEN_TEST_VERBOSE", "true")
		t.Setenv("LOCGEN_TEST_LANGUAGES", "en,fr,de")

		var cfg generatorConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "go", cfg.Target)
		assert.Equal(t, "en", cfg.DefaultLang)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, []string{"en", "fr", "de"}, cfg.Languages)
	})

	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("LOCGEN_TEST_TARGET")
		os.Unsetenv("LOCGEN_TEST_DEFAULT_LANG")

		var cfg generatorConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "cpp", cfg.Target)
		assert.Equal(t, "en", cfg.DefaultLang)
		assert.False(t, cfg.Verbose)
	})

	t.Run("missing required", func(t *testing.T) {
		os.Unsetenv("LOCGEN_TEST_REQUIRED_ROOT")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *generatorConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("not a struct", func(t *testing.T) {
		var s string
		assert.ErrorIs(t, config.Load(&s), config.ErrInvalidConfigType)
	})
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("LOCGEN_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("LOCGEN_TEST_CACHED", "second")
	first.Value = "mutated by caller"

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached value must survive env changes and caller mutation")

	config.ResetCache()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("LOCGEN_TEST_FILE_PACKAGE=strs\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("LOCGEN_TEST_FILE_PACKAGE=ignored\nLOCGEN_TEST_FILE_RUNTIME_DIR=\"assets/lang\"\n"), 0o644))

	t.Cleanup(func() {
		os.Unsetenv("LOCGEN_TEST_FILE_PACKAGE")
		os.Unsetenv("LOCGEN_TEST_FILE_RUNTIME_DIR")
	})
	os.Unsetenv("LOCGEN_TEST_FILE_PACKAGE")
	os.Unsetenv("LOCGEN_TEST_FILE_RUNTIME_DIR")
	config.ResetCache()

	require.NoError(t, config.LoadEnv(first, second))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "strs", cfg.Package, "earlier files take precedence")
	assert.Equal(t, "assets/lang", cfg.RuntimeDir)

	t.Run("no paths", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(dir, "absent.env"))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
