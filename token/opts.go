package token

type tokenOpts struct {
	escapes      bool
	conditionals bool
	includes     bool
	comments     bool
	whitespace   bool
}

func defaultOpts() *tokenOpts {
	return &tokenOpts{
		escapes:      true,
		conditionals: true,
		includes:     true,
		comments:     true,
		whitespace:   true,
	}
}

type TokenOpt func(*tokenOpts)

// TokenEscapes controls decoding of \n, \t, \\ and \" in quoted strings.
func TokenEscapes(v bool) TokenOpt {
	return func(o *tokenOpts) { o.escapes = v }
}

// TokenConditionals controls recognition of [ ... ] conditionals. When
// disabled, '[' starts an unquoted string.
func TokenConditionals(v bool) TokenOpt {
	return func(o *tokenOpts) { o.conditionals = v }
}

// TokenIncludes controls recognition of #include and #base. When disabled,
// '#' starts an unquoted string.
func TokenIncludes(v bool) TokenOpt {
	return func(o *tokenOpts) { o.includes = v }
}

// TokenComments controls whether comment tokens are emitted.
func TokenComments(v bool) TokenOpt {
	return func(o *tokenOpts) { o.comments = v }
}

// TokenWhitespace controls whether whitespace tokens are emitted.
func TokenWhitespace(v bool) TokenOpt {
	return func(o *tokenOpts) { o.whitespace = v }
}
