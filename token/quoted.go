package token

import (
	"strings"
)

// NeedsQuote reports whether v must be quoted to be read back as the
// same string: empty values, values that would split or end an unquoted
// string, values starting a conditional or directive, and values that
// would be read as numbers.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v[0] {
	case '[', '#':
		return true
	}
	if ok, _ := IsNumber(v); ok {
		return true
	}
	for i := range v {
		if stop, _ := unquotedStop(v, i); stop {
			return true
		}
	}
	return false
}

// Quote returns v as a double quoted string using the escapes understood
// by the tokenizer.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Render returns the source form of a string value: quoted when forced or
// required, bare otherwise.
func Render(v string, quote bool) string {
	if quote || NeedsQuote(v) {
		return Quote(v)
	}
	return v
}
