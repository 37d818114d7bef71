// Package kv provides the reduced KeyValues data model.
//
// A document reduces to an ordered [Object] mapping keys to a [Value],
// which is one of [String], [Number], [*Object] or [Array]. Keys repeated
// at the same level are folded into an [Array] in document order by
// [Object.Append]; a key seen once keeps its plain value.
//
// Objects marshal to and from JSON and YAML with key order preserved.
//
// # Related Packages
//
//   - github.com/vdf-format/vdf/parse - produces Objects from text
//   - github.com/vdf-format/vdf/libdiff - compares Objects
package kv
