// Package compiler wires the catalog loader, coverage validator, key index
// and code generator into one run.
//
//	loader, err := catalog.NewLoader(catalog.NewDirSource("assets/Localization"))
//	if err != nil {
//		return err
//	}
//	c, err := compiler.New(loader, "gen/LocalizationGen.h", "gen/LocalizationGen.cpp",
//		compiler.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	if err := c.Run(ctx); errors.Is(err, compiler.ErrRejected) {
//		// the declaration now holds one #error line per diagnostic
//	}
//
// Stages run strictly in order and nothing is written before every catalog
// has been loaded and validated. On rejection only the declaration is
// replaced; a definition left over from an earlier successful run stays as
// it was.
package compiler
