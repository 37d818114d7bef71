package parse

import "github.com/vdf-format/vdf/token"

type parseOpts struct {
	tokenOpts []token.TokenOpt
}

type ParseOption func(*parseOpts)

// ParseComments controls whether comments are kept in the tree.
func ParseComments(v bool) ParseOption {
	return tokenOpt(token.TokenComments(v))
}

// ParseWhitespace controls whether whitespace is kept in the tree. Both
// comments and whitespace are needed for an exact round trip.
func ParseWhitespace(v bool) ParseOption {
	return tokenOpt(token.TokenWhitespace(v))
}

func ParseEscapes(v bool) ParseOption {
	return tokenOpt(token.TokenEscapes(v))
}

func ParseConditionals(v bool) ParseOption {
	return tokenOpt(token.TokenConditionals(v))
}

func ParseIncludes(v bool) ParseOption {
	return tokenOpt(token.TokenIncludes(v))
}

func tokenOpt(o token.TokenOpt) ParseOption {
	return func(p *parseOpts) { p.tokenOpts = append(p.tokenOpts, o) }
}
