package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrymomot/locgen/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSource(t *testing.T) {
	t.Parallel()

	t.Run("lists immediate subdirectories sorted", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeCatalog(t, root, "fr", "strings.json", `{}`)
		writeCatalog(t, root, "en", "strings.json", `{}`)
		require.NoError(t, os.MkdirAll(filepath.Join(root, "de", "nested"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0o644))

		langs, err := catalog.NewDirSource(root).Languages(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"de", "en", "fr"}, langs)
	})

	t.Run("follows symlinked language directories", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		elsewhere := t.TempDir()
		writeCatalog(t, root, "en", "strings.json", `{}`)
		if err := os.Symlink(elsewhere, filepath.Join(root, "ru")); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}

		langs, err := catalog.NewDirSource(root).Languages(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "ru"}, langs)
	})

	t.Run("missing root is an error", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.NewDirSource(filepath.Join(t.TempDir(), "nope")).Languages(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrFailedToReadRoot)
	})

	t.Run("reads catalog file", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeCatalog(t, root, "en", "strings.json", `{"A":"a"}`)

		content, err := catalog.NewDirSource(root).ReadFile(context.Background(), "en", "strings.json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"A":"a"}`, string(content))
	})

	t.Run("absent catalog file", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "en"), 0o755))

		_, err := catalog.NewDirSource(root).ReadFile(context.Background(), "en", "strings.json")
		assert.ErrorIs(t, err, catalog.ErrCatalogNotFound)
	})

	t.Run("directory in place of catalog file counts as absent", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "en", "strings.json"), 0o755))

		_, err := catalog.NewDirSource(root).ReadFile(context.Background(), "en", "strings.json")
		assert.ErrorIs(t, err, catalog.ErrCatalogNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := catalog.NewDirSource(t.TempDir()).Languages(ctx)
		assert.ErrorIs(t, err, catalog.ErrLoadingCancelled)
	})
}

func TestOpenSource(t *testing.T) {
	t.Parallel()

	t.Run("plain path gives a directory source", func(t *testing.T) {
		t.Parallel()
		src, err := catalog.OpenSource(context.Background(), "assets/Localization", catalog.S3Config{})
		require.NoError(t, err)
		assert.IsType(t, &catalog.DirSource{}, src)
		assert.Equal(t, "assets/Localization", src.String())
	})

	t.Run("s3 url gives an s3 source", func(t *testing.T) {
		t.Parallel()
		src, err := catalog.OpenSource(context.Background(), "s3://assets/game/Localization",
			catalog.S3Config{}, catalog.WithS3Client(&MockS3Client{}))
		require.NoError(t, err)
		assert.IsType(t, &catalog.S3Source{}, src)
		assert.Equal(t, "s3://assets/game/Localization/", src.String())
	})

	t.Run("s3 url without bucket", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.OpenSource(context.Background(), "s3:///prefix", catalog.S3Config{})
		assert.ErrorIs(t, err, catalog.ErrInvalidRoot)
	})

	t.Run("empty root", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.OpenSource(context.Background(), "", catalog.S3Config{})
		assert.ErrorIs(t, err, catalog.ErrInvalidRoot)
	})
}
