// Package parse builds the parse tree and data model of a KeyValues
// document in one pass.
//
// [Parse] tokenizes its input, builds an [ast.Document] holding every
// token of the source, and folds each key value pair into a [kv.Object]
// as it goes. Repeated keys at one level become a [kv.Array].
//
// Errors carry the position of the offending token and wrap one of the
// sentinels in this package or in package token.
package parse
