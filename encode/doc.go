// Package encode writes KeyValues text.
//
// [Encode] serializes a parse tree. Nodes carrying source text are written
// verbatim, so a tree from parse is reproduced byte for byte. Synthesized
// nodes, which have no source text, are written in canonical form, with a
// separating space or newline inserted only where adjacent output would
// otherwise read back differently.
//
// [EncodeData] writes a data object in conventional Valve layout.
package encode
