// Package keyindex assigns every catalog key a dense integer index.
//
// Keys are ordered lexicographically (byte order) before numbering, so the
// same key set always yields the same indices. Both generated artifacts are
// rendered from one *Index, which keeps their indices identical.
//
// # Usage
//
//	idx := keyindex.Assign([]string{"GREETING", "FAREWELL", "GREETING"})
//	idx.Len()            // 2
//	idx.Of("GREETING")   // 1, true
//	idx.Key(0)           // "FAREWELL"
package keyindex
