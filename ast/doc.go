// Package ast defines the full fidelity parse tree of a KeyValues document.
//
// Every node records the exact source text it was parsed from in its [Loc].
// Writing out the raw text of a tree in document order reproduces the source
// byte for byte; see package encode.
//
// The node set is closed: [Node] can only be implemented by the types in this
// package, and switches over nodes panic on anything else.
//
// Nodes built by the parser are never shared between trees. Code that
// mutates a tree should work on a [Clone].
package ast
