// Package coverage checks that a catalog set is complete: the default
// language exists and every key is provided by exactly the full set of
// discovered languages.
//
// Validate collects every violation instead of stopping at the first one, so
// a single run reports all missing translations:
//
//	report := coverage.Validate(res.Languages, res.Coverage, "en")
//	if !report.Valid() {
//		for _, line := range report.Diagnostics() {
//			fmt.Fprintln(os.Stderr, line)
//		}
//	}
package coverage
