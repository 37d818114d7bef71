package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// byteOrderMark at the start of input is read as whitespace.
const byteOrderMark = "\ufeff"

type tkState struct {
	src string
	i   int
	pd  *PosDoc
	opt *tokenOpts
}

// Tokenize appends the tokens of src to dst. The result always ends with
// a TEOF token.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	return TokenizeString(dst, string(src), opts...)
}

func TokenizeString(dst []Token, src string, opts ...TokenOpt) ([]Token, error) {
	opt := defaultOpts()
	for _, o := range opts {
		o(opt)
	}
	ts := &tkState{src: src, pd: NewPosDoc(src), opt: opt}
	for ts.i < len(src) {
		tok, err := ts.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			continue
		}
		dst = append(dst, *tok)
	}
	dst = append(dst, Token{Type: TEOF, Pos: ts.pd.end()})
	return dst, nil
}

func (ts *tkState) peek(off int) byte {
	if ts.i+off >= len(ts.src) {
		return 0
	}
	return ts.src[ts.i+off]
}

// next reads the token at ts.i. A nil token with a nil error means the
// consumed text is not emitted under the current options.
func (ts *tkState) next() (*Token, error) {
	start := ts.i
	c := ts.src[start]
	r, _ := utf8.DecodeRuneInString(ts.src[start:])
	switch {
	case start == 0 && strings.HasPrefix(ts.src, byteOrderMark):
		ts.i = len(byteOrderMark)
		if !ts.opt.whitespace {
			return nil, nil
		}
		return &Token{Type: TWhitespace, Value: byteOrderMark, Raw: byteOrderMark, Pos: ts.pd.Pos(start)}, nil

	case unicode.IsSpace(r):
		ts.i = spaceEnd(ts.src, start)
		if !ts.opt.whitespace {
			return nil, nil
		}
		raw := ts.src[start:ts.i]
		return &Token{Type: TWhitespace, Value: raw, Raw: raw, Pos: ts.pd.Pos(start)}, nil

	case c == '/' && ts.peek(1) == '/':
		end := strings.IndexByte(ts.src[start:], '\n')
		if end < 0 {
			end = len(ts.src)
		} else {
			end += start
		}
		ts.i = end
		if !ts.opt.comments {
			return nil, nil
		}
		raw := ts.src[start:end]
		return &Token{
			Type:    TComment,
			Value:   strings.TrimSuffix(raw[2:], "\r"),
			Raw:     raw,
			Pos:     ts.pd.Pos(start),
			Comment: LineComment,
		}, nil

	case c == '/' && ts.peek(1) == '*':
		// an unclosed block comment runs to the end of input
		end := len(ts.src)
		inner := ts.src[start+2:]
		if j := strings.Index(inner, "*/"); j >= 0 {
			end = start + 2 + j + 2
			inner = inner[:j]
		}
		ts.i = end
		if !ts.opt.comments {
			return nil, nil
		}
		return &Token{
			Type:    TComment,
			Value:   inner,
			Raw:     ts.src[start:end],
			Pos:     ts.pd.Pos(start),
			Comment: BlockComment,
		}, nil

	case c == '[' && ts.opt.conditionals:
		j := strings.IndexByte(ts.src[start:], ']')
		if j < 0 {
			return nil, UnterminatedErr("conditional", ts.pd.Pos(start))
		}
		ts.i = start + j + 1
		raw := ts.src[start:ts.i]
		return &Token{Type: TConditional, Value: raw[1 : len(raw)-1], Raw: raw, Pos: ts.pd.Pos(start)}, nil

	case c == '#' && ts.opt.includes:
		return ts.directive()

	case c == '{':
		ts.i++
		return &Token{Type: TLCurl, Value: "{", Raw: "{", Pos: ts.pd.Pos(start)}, nil

	case c == '}':
		ts.i++
		return &Token{Type: TRCurl, Value: "}", Raw: "}", Pos: ts.pd.Pos(start)}, nil

	case c == '"':
		return ts.quoted()

	default:
		return ts.unquoted()
	}
}

func spaceEnd(s string, i int) int {
	for i < len(s) {
		r, sz := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += sz
	}
	return i
}
