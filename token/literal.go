package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// quoted reads a double quoted string starting at ts.i.
func (ts *tkState) quoted() (*Token, error) {
	start := ts.i
	val, end, err := scanQuoted(ts.src, start, ts.opt.escapes)
	if err != nil {
		return nil, ts.wrap(err, start)
	}
	ts.i = end
	return &Token{
		Type:      TString,
		Value:     val,
		Raw:       ts.src[start:end],
		Pos:       ts.pd.Pos(start),
		Quoted:    true,
		QuoteChar: '"',
	}, nil
}

// unquoted reads a bare string starting at ts.i.
func (ts *tkState) unquoted() (*Token, error) {
	start := ts.i
	end, err := scanUnquoted(ts.src, start)
	if err != nil {
		return nil, ts.wrap(err, start)
	}
	ts.i = end
	raw := ts.src[start:end]
	return &Token{Type: TString, Value: raw, Raw: raw, Pos: ts.pd.Pos(start)}, nil
}

// errAt carries an error and the offset it should be reported at until
// it can be bound to a document position.
type errAt struct {
	err error
	off int
	r   rune
}

func (e *errAt) Error() string { return e.err.Error() }

func (ts *tkState) wrap(err error, start int) error {
	ea, ok := err.(*errAt)
	if !ok {
		return NewTokenizeErr(err, ts.pd.Pos(start))
	}
	switch ea.err {
	case ErrUnexpectedChar:
		return UnexpectedErr(ea.r, ts.pd.Pos(ea.off))
	case ErrUnterminated:
		return UnterminatedErr("quoted string", ts.pd.Pos(ea.off))
	case ErrTooLong:
		return TooLongErr(ts.pd.Pos(ea.off))
	}
	return NewTokenizeErr(ea.err, ts.pd.Pos(ea.off))
}

func scanQuoted(s string, start int, escapes bool) (string, int, error) {
	var (
		b strings.Builder
		n = 0
		j = start + 1
	)
	for {
		if j >= len(s) {
			return "", 0, &errAt{err: ErrUnterminated, off: start}
		}
		c := s[j]
		if c == '"' {
			return b.String(), j + 1, nil
		}
		if n == MaxTokenLength {
			return "", 0, &errAt{err: ErrTooLong, off: start}
		}
		if c == '\\' && escapes && j+1 < len(s) {
			switch s[j+1] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			default:
				// unknown escapes keep their backslash; the next
				// character is read on its own.
				b.WriteByte('\\')
				j++
				n++
				continue
			}
			j += 2
			n++
			continue
		}
		_, sz := utf8.DecodeRuneInString(s[j:])
		b.WriteString(s[j : j+sz])
		j += sz
		n++
	}
}

// unquotedStop reports whether the rune at s[j] ends an unquoted string.
func unquotedStop(s string, j int) (bool, rune) {
	r, sz := utf8.DecodeRuneInString(s[j:])
	if r == utf8.RuneError && sz <= 1 {
		return true, r
	}
	switch r {
	case '"', '{', '}':
		return true, r
	case '/':
		if j+1 < len(s) && (s[j+1] == '/' || s[j+1] == '*') {
			return true, r
		}
		return false, r
	}
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return true, r
	}
	return false, r
}

func scanUnquoted(s string, start int) (int, error) {
	j := start
	n := 0
	for j < len(s) {
		stop, r := unquotedStop(s, j)
		if stop {
			break
		}
		if n == MaxTokenLength {
			return 0, &errAt{err: ErrTooLong, off: start}
		}
		j += utf8.RuneLen(r)
		n++
	}
	if j == start {
		r, _ := utf8.DecodeRuneInString(s[start:])
		if r == utf8.RuneError {
			r = rune(s[start])
		}
		return 0, &errAt{err: ErrUnexpectedChar, off: start, r: r}
	}
	return j, nil
}

// canStartUnquoted reports whether an unquoted string may begin at s[j].
func canStartUnquoted(s string, j int) bool {
	if j >= len(s) {
		return false
	}
	stop, _ := unquotedStop(s, j)
	return !stop
}
