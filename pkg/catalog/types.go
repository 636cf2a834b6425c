package catalog

import (
	"slices"

	"github.com/samber/lo"
)

// Catalog maps a language code to that language's key -> text table.
type Catalog map[string]map[string]string

// Coverage records, for every key, the set of languages that supplied it.
type Coverage map[string]map[string]struct{}

func (c Coverage) add(key, lang string) {
	langs, ok := c[key]
	if !ok {
		langs = make(map[string]struct{})
		c[key] = langs
	}
	langs[lang] = struct{}{}
}

// Languages returns the sorted languages that supplied key.
func (c Coverage) Languages(key string) []string {
	langs := lo.Keys(c[key])
	slices.Sort(langs)
	return langs
}

// Keys returns every key seen in any language, sorted.
func (c Coverage) Keys() []string {
	keys := lo.Keys(c)
	slices.Sort(keys)
	return keys
}

// Result is everything the loader learned about the catalog tree in one run.
type Result struct {
	// Languages holds every discovered language code, sorted. A language whose
	// catalog file is absent is still listed here.
	Languages []string
	Catalog   Catalog
	Coverage  Coverage
	// Missing lists languages that had no catalog file.
	Missing []string
}

// Keys returns the distinct keys across all languages, sorted.
func (r *Result) Keys() []string {
	return r.Coverage.Keys()
}
