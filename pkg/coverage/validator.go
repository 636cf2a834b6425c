package coverage

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/dmitrymomot/locgen/pkg/catalog"
)

// Kind classifies a Violation.
type Kind int

const (
	// KindDefaultMissing: the default language was not discovered.
	KindDefaultMissing Kind = iota + 1
	// KindIncomplete: a key's language set differs from the discovered set.
	KindIncomplete
)

func (k Kind) String() string {
	switch k {
	case KindDefaultMissing:
		return "default-missing"
	case KindIncomplete:
		return "incomplete"
	default:
		return "unknown"
	}
}

// Violation is one reason a catalog set cannot be compiled.
type Violation struct {
	Kind Kind
	// Language is the missing default language for KindDefaultMissing.
	Language string
	// Key, Have and Expected describe a KindIncomplete violation.
	Key      string
	Have     []string
	Expected []string
	// Missing lists expected languages that lack Key; Unexpected lists
	// languages that supplied Key without being discovered.
	Missing    []string
	Unexpected []string
}

// Error implements error; the message is the human-readable diagnostic.
func (v Violation) Error() string {
	switch v.Kind {
	case KindDefaultMissing:
		return fmt.Sprintf("default localization (%s) was not provided", v.Language)
	case KindIncomplete:
		msg := fmt.Sprintf("key %s has languages %s, but expected %s", v.Key, formatSet(v.Have), formatSet(v.Expected))
		if len(v.Missing) > 0 {
			msg += " (missing: " + strings.Join(v.Missing, ", ") + ")"
		}
		if len(v.Unexpected) > 0 {
			msg += " (unexpected: " + strings.Join(v.Unexpected, ", ") + ")"
		}
		return msg
	default:
		return "unknown coverage violation"
	}
}

// Unwrap lets errors.Is match the violation's sentinel.
func (v Violation) Unwrap() error {
	switch v.Kind {
	case KindDefaultMissing:
		return ErrDefaultLanguageMissing
	case KindIncomplete:
		return ErrIncompleteCoverage
	default:
		return nil
	}
}

func formatSet(langs []string) string {
	return "{" + strings.Join(langs, ", ") + "}"
}

// Report is the outcome of Validate.
type Report struct {
	Violations []Violation
}

// Valid reports whether no violation was found.
func (r Report) Valid() bool {
	return len(r.Violations) == 0
}

// Diagnostics returns one "ERROR: ..." line per violation, in precedence order.
func (r Report) Diagnostics() []string {
	lines := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		lines = append(lines, "ERROR: "+v.Error())
	}
	return lines
}

// Err joins every violation into one error, or returns nil when valid.
func (r Report) Err() error {
	errs := make([]error, 0, len(r.Violations))
	for _, v := range r.Violations {
		errs = append(errs, v)
	}
	return errors.Join(errs...)
}

// Validate checks cov against the discovered languages. The default
// language check comes first, then one check per key in lexicographic order.
func Validate(languages []string, cov catalog.Coverage, defaultLang string) Report {
	expected := lo.Uniq(languages)
	slices.Sort(expected)

	var report Report

	if !slices.Contains(expected, defaultLang) {
		report.Violations = append(report.Violations, Violation{
			Kind:     KindDefaultMissing,
			Language: defaultLang,
		})
	}

	for _, key := range cov.Keys() {
		have := cov.Languages(key)
		if slices.Equal(have, expected) {
			continue
		}

		unexpected, missing := lo.Difference(have, expected)
		report.Violations = append(report.Violations, Violation{
			Kind:       KindIncomplete,
			Key:        key,
			Have:       have,
			Expected:   expected,
			Missing:    missing,
			Unexpected: unexpected,
		})
	}

	return report
}
