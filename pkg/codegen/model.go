package codegen

import (
	"fmt"
	"path"
	"slices"

	"github.com/dmitrymomot/locgen/pkg/keyindex"
)

const (
	DefaultRuntimeDir  = "Localization"
	DefaultCatalogFile = "strings.json"
)

// Key is one accessor of the generated artifacts.
type Key struct {
	Name  string
	Index int
}

// Model is the target-independent description of what to generate.
// Rendering is a pure function of a Model.
type Model struct {
	DefaultLanguage string
	// Languages is sorted and contains DefaultLanguage.
	Languages []string
	// Keys is in index order: Keys[i].Index == i.
	Keys []Key
	// RuntimeDir and CatalogFile locate catalogs at run time:
	// <root>/<RuntimeDir>/<lang>/<CatalogFile>.
	RuntimeDir  string
	CatalogFile string
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithRuntimeDir sets the directory under the run-time root holding language directories.
func WithRuntimeDir(dir string) ModelOption {
	return func(m *Model) {
		if dir != "" {
			m.RuntimeDir = dir
		}
	}
}

// WithCatalogFile sets the catalog file name read at run time.
func WithCatalogFile(name string) ModelOption {
	return func(m *Model) {
		if name != "" {
			m.CatalogFile = name
		}
	}
}

// NewModel builds the Model for a validated catalog set. Keys take the
// indices assigned by idx.
func NewModel(languages []string, idx *keyindex.Index, defaultLang string, opts ...ModelOption) (*Model, error) {
	langs := slices.Clone(languages)
	slices.Sort(langs)
	langs = slices.Compact(langs)
	if !slices.Contains(langs, defaultLang) {
		return nil, fmt.Errorf("%w: default language %q is not among %v", ErrInvalidModel, defaultLang, langs)
	}

	keys := make([]Key, idx.Len())
	for i := range keys {
		keys[i] = Key{Name: idx.Key(i), Index: i}
	}

	m := &Model{
		DefaultLanguage: defaultLang,
		Languages:       langs,
		Keys:            keys,
		RuntimeDir:      DefaultRuntimeDir,
		CatalogFile:     DefaultCatalogFile,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// NonDefaultLanguages returns every language except the default, sorted.
func (m *Model) NonDefaultLanguages() []string {
	out := make([]string, 0, len(m.Languages))
	for _, l := range m.Languages {
		if l != m.DefaultLanguage {
			out = append(out, l)
		}
	}
	return out
}

// RuntimePath returns the path of lang's catalog relative to the run-time root.
func (m *Model) RuntimePath(lang string) string {
	return path.Join(m.RuntimeDir, lang, m.CatalogFile)
}
