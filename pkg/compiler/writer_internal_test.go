package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	decl := filepath.Join(dir, "include", "gen.h")
	def := filepath.Join(dir, "src", "gen.cpp")

	statuses, err := writeFiles(artifact{decl, []byte("h1")}, artifact{def, []byte("c1")})
	require.NoError(t, err)
	assert.Equal(t, []writeStatus{written, written}, statuses)

	statuses, err = writeFiles(artifact{decl, []byte("h1")}, artifact{def, []byte("c2")})
	require.NoError(t, err)
	assert.Equal(t, []writeStatus{unchanged, written}, statuses)

	got, err := os.ReadFile(def)
	require.NoError(t, err)
	assert.Equal(t, "c2", string(got))

	info, err := os.Stat(def)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestRollback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	replaced := filepath.Join(dir, "gen.h")
	created := filepath.Join(dir, "gen.cpp")
	require.NoError(t, os.WriteFile(replaced, []byte("new header"), 0o644))
	require.NoError(t, os.WriteFile(created, []byte("new source"), 0o644))

	rollback([]staged{
		{artifact: artifact{path: replaced}, previous: []byte("old header"), existed: true},
		{artifact: artifact{path: created}},
	})

	got, err := os.ReadFile(replaced)
	require.NoError(t, err)
	assert.Equal(t, "old header", string(got))

	_, err = os.Stat(created)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
