package token

import (
	"fmt"
	"strings"
)

const (
	DirectiveInclude = "include"
	DirectiveBase    = "base"
)

func isDirectiveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// directive reads #include or #base, followed by an optional target
// string on the same line. A directive without a target yields an empty
// Value; rejecting it is left to the parser.
func (ts *tkState) directive() (*Token, error) {
	start := ts.i
	j := start + 1
	for j < len(ts.src) && isDirectiveLetter(ts.src[j]) {
		j++
	}
	name := ts.src[start+1 : j]
	var typ TokenType
	switch {
	case strings.EqualFold(name, DirectiveInclude):
		typ = TInclude
	case strings.EqualFold(name, DirectiveBase):
		typ = TBase
	default:
		return nil, NewTokenizeErr(fmt.Errorf("%w %q", ErrUnknownDirective, "#"+name), ts.pd.Pos(start))
	}
	tok := &Token{Type: typ, Pos: ts.pd.Pos(start)}
	k := j
	for k < len(ts.src) && (ts.src[k] == ' ' || ts.src[k] == '\t') {
		k++
	}
	switch {
	case k < len(ts.src) && ts.src[k] == '"':
		val, end, err := scanQuoted(ts.src, k, ts.opt.escapes)
		if err != nil {
			return nil, ts.wrap(err, k)
		}
		tok.Value, tok.Quoted, tok.QuoteChar = val, true, '"'
		j = end
	case canStartUnquoted(ts.src, k):
		end, err := scanUnquoted(ts.src, k)
		if err != nil {
			return nil, ts.wrap(err, k)
		}
		tok.Value = ts.src[k:end]
		j = end
	}
	tok.Raw = ts.src[start:j]
	ts.i = j
	return tok, nil
}
