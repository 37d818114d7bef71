// Package vdf diffs and patches Valve KeyValues documents.
//
// Documents are read with package parse, which yields both a full
// fidelity parse tree and a reduced data object. [GenerateDataDiff]
// compares two data objects; the resulting diff is applied either to data
// with [ApplyToData] or to a parse tree with [ApplyToAST], which keeps the
// formatting and comments of everything it does not change.
//
// Paths in diffs are dot joined keys. Keys containing a dot cannot be
// addressed.
//
// # Related Packages
//
//   - github.com/vdf-format/vdf/token - tokenizer
//   - github.com/vdf-format/vdf/parse - parser
//   - github.com/vdf-format/vdf/encode - serializer
//   - github.com/vdf-format/vdf/libdiff - diff representation and rendering
package vdf
