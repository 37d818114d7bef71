// Package libdiff computes structural differences between KeyValues data
// objects.
//
// A [DocumentDiff] is an ordered list of [Entry] values, each naming a dot
// joined key path and an operation. [Diff] walks the source object first,
// emitting removals and replacements in source key order and recursing into
// objects present on both sides, then emits additions in target key order.
// Arrays formed by repeated keys are compared and replaced whole.
//
// Diffs can be rendered for people ([FormatText], [FormatUnified]), stored
// as JSON or YAML, reversed, and exported as RFC 6902 JSON Patch.
package libdiff
