// Package catalog discovers and loads per-language string catalogs.
//
// A catalog root is a directory (or an S3 prefix) whose immediate
// subdirectories are language codes. Each language directory holds one
// catalog file, strings.json by default: a flat object mapping keys to
// translated text. YAML and TOML catalogs are accepted when the file name
// carries the matching extension.
//
//	src := catalog.NewDirSource("./assets/Localization")
//	loader, err := catalog.NewLoader(src, catalog.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	res, err := loader.Load(ctx)
//
// Load returns the discovered languages, the Catalog itself and the Coverage
// of every key. A language directory without a catalog file is still counted
// as discovered and reported in Result.Missing, so each key later fails
// coverage for it. A catalog that is not a flat string map is fatal
// (ErrMalformedCatalog).
package catalog
