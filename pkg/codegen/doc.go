// Package codegen renders validated localization catalogs into a pair of
// source artifacts for a host language, or a poisoned declaration when the
// catalogs were rejected.
//
// A Model is built once from the discovered languages and the key index;
// every artifact of a run is rendered from that one Model, so accessor
// indices in the declaration always match storage indices in the definition.
//
//	idx := keyindex.Assign(result.Keys())
//	model, err := codegen.NewModel(result.Languages, idx, "en")
//	if err != nil {
//		return err
//	}
//	out, err := codegen.Generate(codegen.NewCPPTarget(), model)
//
// Two targets are available: "cpp" emits a header/source pair for a C++ host
// that reads JSON catalogs at run time, and "go" emits a Go package backed by
// pkg/localize.
package codegen
