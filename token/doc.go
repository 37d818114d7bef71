// Package token provides tokenization of KeyValues (VDF) text.
//
// [Tokenize] is a single forward pass over the source producing every
// lexical element, including whitespace and comments, so that the raw
// text of the token stream concatenates back to the input.
//
// Tokens carry both the decoded value and the exact raw source slice,
// along with the position at which they start.
package token
