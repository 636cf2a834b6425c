package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeCatalog creates <root>/<lang>/<name> with content.
func writeCatalog(t *testing.T, root, lang, name, content string) {
	t.Helper()
	dir := filepath.Join(root, lang)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
