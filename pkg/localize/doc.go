// Package localize is the run-time side of code generated by locgen's Go target.
//
// A Table owns one string slice per language, each indexed by the key indices
// assigned at compile time, plus the active language. Generated accessors call
// Lookup with a constant index, so a lookup is a slice read.
//
//	tbl, err := localize.New(localize.Layout{
//		Default:   "en",
//		Languages: []string{"en", "fr"},
//		Keys:      []string{"FAREWELL", "GREETING"},
//	})
//	if err != nil {
//		return err
//	}
//	if err := tbl.Load(ctx, os.DirFS(root)); err != nil {
//		return err
//	}
//	tbl.SetLanguage("fr")
//	tbl.Lookup(1) // "Bonjour"
//
// SetLanguage with a code that is not part of the layout selects the default
// language. The Table is safe for concurrent use.
package localize
