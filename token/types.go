package token

import (
	"fmt"
)

type TokenType int

const (
	TString TokenType = iota
	TLCurl
	TRCurl
	TComment
	TWhitespace
	TConditional
	TInclude
	TBase
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TString:      "TString",
		TLCurl:       "TLCurl",
		TRCurl:       "TRCurl",
		TComment:     "TComment",
		TWhitespace:  "TWhitespace",
		TConditional: "TConditional",
		TInclude:     "TInclude",
		TBase:        "TBase",
		TEOF:         "TEOF",
	}[t]
}

// CommentStyle distinguishes // comments from /* */ comments.
type CommentStyle int

const (
	NoComment CommentStyle = iota
	LineComment
	BlockComment
)

func (c CommentStyle) String() string {
	switch c {
	case LineComment:
		return "line"
	case BlockComment:
		return "block"
	default:
		return ""
	}
}

// MaxTokenLength is the maximum number of characters in the decoded value
// of a string token.
const MaxTokenLength = 1024

type Token struct {
	Type TokenType
	// Value is the decoded value: unescaped string contents, the comment
	// text without delimiters, the conditional expression without brackets,
	// or the target of a directive.
	Value string
	// Raw is the exact source text of the token.
	Raw string
	Pos Pos

	Quoted    bool
	QuoteChar byte
	Comment   CommentStyle
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return t.Value
}

// End returns the offset just past the token.
func (t *Token) End() int {
	return t.Pos.I + len(t.Raw)
}
