// Package l10ntest is a Go target package generated from the catalogs in
// testdata/Localization. It is checked in so every build type-checks the
// generated code against pkg/localize; codegen tests fail when the files
// drift from what the templates produce.
package l10ntest

//go:generate go run ../../../../cmd/locgen --target go --package l10ntest --header strings.go --cpp strings_def.go --jsonroot testdata/Localization
