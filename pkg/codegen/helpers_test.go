package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/locgen/pkg/codegen"
	"github.com/dmitrymomot/locgen/pkg/keyindex"
)

func newModel(t *testing.T, langs, keys []string, opts ...codegen.ModelOption) *codegen.Model {
	t.Helper()
	m, err := codegen.NewModel(langs, keyindex.Assign(keys), "en", opts...)
	require.NoError(t, err)
	return m
}
