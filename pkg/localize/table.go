package localize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/locgen/pkg/catalog"
)

const (
	// DefaultDir is the directory under the resolved root holding language directories.
	DefaultDir = "Localization"
	// DefaultFile is the catalog file read from every language directory.
	DefaultFile = catalog.DefaultFileName
)

// Layout describes the generated storage: which languages exist, which one is
// the default, and the key at every index.
type Layout struct {
	Default   string
	Languages []string
	Keys      []string
	Dir       string
	File      string
}

type langTable struct {
	code    string
	strings []string
}

// Table holds the per-language storage and the active language.
type Table struct {
	layout Layout
	index  map[string]int

	mu     sync.RWMutex
	tables map[string]*langTable
	active atomic.Pointer[langTable]
}

// New creates a Table for layout with every slot empty and the default
// language active.
func New(layout Layout) (*Table, error) {
	if layout.Dir == "" {
		layout.Dir = DefaultDir
	}
	if layout.File == "" {
		layout.File = DefaultFile
	}
	if !slices.Contains(layout.Languages, layout.Default) {
		return nil, fmt.Errorf("%w: default language %q is not listed", ErrInvalidLayout, layout.Default)
	}

	t := &Table{
		layout: layout,
		index:  make(map[string]int, len(layout.Keys)),
		tables: make(map[string]*langTable, len(layout.Languages)),
	}
	for i, key := range layout.Keys {
		if _, dup := t.index[key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidLayout, key)
		}
		t.index[key] = i
	}
	for _, lang := range layout.Languages {
		if _, dup := t.tables[lang]; dup {
			return nil, fmt.Errorf("%w: duplicate language %q", ErrInvalidLayout, lang)
		}
		t.tables[lang] = &langTable{code: lang, strings: make([]string, len(layout.Keys))}
	}

	t.active.Store(t.tables[layout.Default])
	return t, nil
}

// Languages returns the layout's languages.
func (t *Table) Languages() []string {
	return slices.Clone(t.layout.Languages)
}

// SetLanguage makes code the active language. Unknown codes select the
// default language.
func (t *Table) SetLanguage(code string) {
	lt, ok := t.tables[code]
	if !ok {
		lt = t.tables[t.layout.Default]
	}
	t.active.Store(lt)
}

// CurrentLanguage returns the active language code.
func (t *Table) CurrentLanguage() string {
	return t.active.Load().code
}

// Lookup returns the active language's string at index i, or "" when i is
// out of range.
func (t *Table) Lookup(i int) string {
	lt := t.active.Load()

	t.mu.RLock()
	defer t.mu.RUnlock()
	if i < 0 || i >= len(lt.strings) {
		return ""
	}
	return lt.strings[i]
}

// LookupKey resolves key by name in the active language.
func (t *Table) LookupKey(key string) (string, bool) {
	i, ok := t.index[key]
	if !ok {
		return "", false
	}
	return t.Lookup(i), true
}

// Set replaces lang's storage with the values of strings, placed at each
// key's index. Every key of the layout must be present.
func (t *Table) Set(lang string, strings map[string]string) error {
	lt, ok := t.tables[lang]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}

	filled, err := t.fill(lang, strings)
	if err != nil {
		return err
	}

	t.mu.Lock()
	lt.strings = filled
	t.mu.Unlock()
	return nil
}

func (t *Table) fill(lang string, strings map[string]string) ([]string, error) {
	filled := make([]string, len(t.layout.Keys))
	var errs []error
	for i, key := range t.layout.Keys {
		s, ok := strings[key]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s/%s", ErrMissingTranslation, lang, key))
			continue
		}
		filled[i] = s
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return filled, nil
}

// Load reads <Dir>/<lang>/<File> from fsys for every language and populates
// the storage. Nothing is replaced unless every language loads cleanly.
func (t *Table) Load(ctx context.Context, fsys fs.FS) error {
	parser := catalog.NewParserForFile(t.layout.File)
	if parser == nil {
		return fmt.Errorf("%w: unsupported catalog file %q", ErrInvalidLayout, t.layout.File)
	}

	loaded := make(map[string][]string, len(t.tables))
	var errs []error
	for _, lang := range t.layout.Languages {
		name := path.Join(t.layout.Dir, lang, t.layout.File)
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			errs = append(errs, errors.Join(ErrFailedToReadCatalog, err))
			continue
		}

		strings, err := parser.Parse(ctx, content)
		if err != nil {
			errs = append(errs, errors.Join(fmt.Errorf("%w: %s", ErrFailedToReadCatalog, name), err))
			continue
		}

		filled, err := t.fill(lang, strings)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		loaded[lang] = filled
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	t.mu.Lock()
	for lang, filled := range loaded {
		t.tables[lang].strings = filled
	}
	t.mu.Unlock()
	return nil
}
