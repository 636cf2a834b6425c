package codegen

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cppIdent maps a key or language code onto a C++ identifier fragment.
func cppIdent(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < unicode.MaxASCII && (r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	id := b.String()
	if id == "" || (id[0] >= '0' && id[0] <= '9') {
		id = "k_" + id
	}
	return id
}

// goIdent maps a key onto an exported Go identifier: segments separated by
// anything other than letters and digits are title-cased and joined.
// ALL-CAPS segments are lowered first, so GREETING_TEXT becomes GreetingText
// while mainMenu becomes MainMenu.
func goIdent(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	titleLower := cases.Title(language.Und)
	titleKeep := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, p := range parts {
		if strings.ToUpper(p) == p {
			b.WriteString(titleLower.String(p))
		} else {
			b.WriteString(titleKeep.String(p))
		}
	}
	id := b.String()
	for _, r := range id {
		if !unicode.IsUpper(r) {
			id = "K" + id
		}
		break
	}
	if id == "" {
		id = "K"
	}
	return id
}

// CollisionError lists every pair of names that map onto one identifier.
type CollisionError struct {
	Target      string
	Diagnostics []string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: %s target: %s", ErrIdentifierCollision, e.Target, strings.Join(e.Diagnostics, "; "))
}

func (e *CollisionError) Unwrap() error { return ErrIdentifierCollision }

// collisions returns one diagnostic per name whose identifier is already
// taken by an earlier name or by a reserved word.
func collisions(kind string, names []string, ident func(string) string, reserved []string) []string {
	var diags []string
	seen := make(map[string]string, len(names))
	for _, name := range names {
		id := ident(name)
		if slices.Contains(reserved, id) {
			diags = append(diags, fmt.Sprintf("%s %s maps to reserved identifier %s", kind, name, id))
			continue
		}
		if prev, ok := seen[id]; ok {
			diags = append(diags, fmt.Sprintf("%s %s and %s both map to identifier %s", kind, prev, name, id))
			continue
		}
		seen[id] = name
	}
	return diags
}

// keyNames returns the model's key names in index order.
func (m *Model) keyNames() []string {
	names := make([]string, len(m.Keys))
	for i, k := range m.Keys {
		names[i] = k.Name
	}
	return names
}
