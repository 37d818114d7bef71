package token

import (
	"errors"
	"strings"
	"testing"
)

type typesTest struct {
	in  string
	out []TokenType
}

func TestTokenizeTypes(t *testing.T) {
	tts := []typesTest{
		{
			in: "key { \"a\" \"1\" // note\n \"b\" \"2\" }",
			out: []TokenType{
				TString, TWhitespace, TLCurl, TWhitespace,
				TString, TWhitespace, TString, TWhitespace, TComment, TWhitespace,
				TString, TWhitespace, TString, TWhitespace, TRCurl, TEOF,
			},
		},
		{
			in:  `a//c`,
			out: []TokenType{TString, TComment, TEOF},
		},
		{
			in:  `a/*x*/b`,
			out: []TokenType{TString, TComment, TString, TEOF},
		},
		{
			in:  `"k" "v" [$WIN32]`,
			out: []TokenType{TString, TWhitespace, TString, TWhitespace, TConditional, TEOF},
		},
		{
			in:  "#base \"a.vdf\"\n#Include b.vdf",
			out: []TokenType{TBase, TWhitespace, TInclude, TEOF},
		},
		{
			in:  `{}`,
			out: []TokenType{TLCurl, TRCurl, TEOF},
		},
		{
			in:  ``,
			out: []TokenType{TEOF},
		},
		{
			in:  "/* open",
			out: []TokenType{TComment, TEOF},
		},
	}
	for _, tt := range tts {
		toks, err := TokenizeString(nil, tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if len(toks) != len(tt.out) {
			t.Errorf("%q: got %d tokens want %d", tt.in, len(toks), len(tt.out))
			continue
		}
		for i := range toks {
			if toks[i].Type != tt.out[i] {
				t.Errorf("%q: token %d got %s want %s", tt.in, i, toks[i].Type, tt.out[i])
			}
		}
	}
}

func TestTokenizeRawConcat(t *testing.T) {
	for _, in := range []string{
		"\"a\" \"b\"",
		"root\r\n{\r\n\t\"x\"\t\t\"1\" [$X360]\r\n\t// c\r\n}\r\n",
		"#base \"../a.vdf\"\n\"k\"\n{\n\t/* multi\nline */ \"v\" { }\n}",
		"unq/path/file.txt \"quoted\\\"esc\"",
		"\ufeff\"bom\" \"ok\"",
	} {
		toks, err := TokenizeString(nil, in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		var b strings.Builder
		for i := range toks {
			b.WriteString(toks[i].Raw)
		}
		if b.String() != in {
			t.Errorf("got %q want %q", b.String(), in)
		}
	}
}

type valueTest struct {
	in    string
	value string
	opts  []TokenOpt
}

func TestTokenizeValues(t *testing.T) {
	vts := []valueTest{
		{in: `"a\nb\"c\\d\qe"`, value: "a\nb\"c\\d\\qe"},
		{in: `"a\nb"`, value: `a\nb`, opts: []TokenOpt{TokenEscapes(false)}},
		{in: `path/to/file`, value: "path/to/file"},
		{in: `"héllo wörld"`, value: "héllo wörld"},
		{in: `[$WIN32||$OSX]`, value: "$WIN32||$OSX"},
		{in: `[x]`, value: "[x]", opts: []TokenOpt{TokenConditionals(false)}},
		{in: `#include "a b.vdf"`, value: "a b.vdf"},
		{in: `#base base.vdf`, value: "base.vdf"},
		{in: `#base`, value: ""},
		{in: `#base x`, value: "#base", opts: []TokenOpt{TokenIncludes(false)}},
		{in: "// note\r\n", value: " note"},
		{in: "/* a */", value: " a "},
	}
	for _, vt := range vts {
		toks, err := TokenizeString(nil, vt.in, vt.opts...)
		if err != nil {
			t.Errorf("%q: %v", vt.in, err)
			continue
		}
		if toks[0].Value != vt.value {
			t.Errorf("%q: got %q want %q", vt.in, toks[0].Value, vt.value)
		}
	}
}

func TestTokenizeMetadata(t *testing.T) {
	toks, err := TokenizeString(nil, "\"q\" u // l\n/* b */")
	if err != nil {
		t.Fatal(err)
	}
	if !toks[0].Quoted || toks[0].QuoteChar != '"' {
		t.Errorf("quoted metadata: %+v", toks[0])
	}
	if toks[2].Quoted {
		t.Errorf("unquoted metadata: %+v", toks[2])
	}
	if toks[4].Comment != LineComment {
		t.Errorf("got %s want line", toks[4].Comment)
	}
	if toks[6].Comment != BlockComment {
		t.Errorf("got %s want block", toks[6].Comment)
	}
}

func TestTokenizeNoTrivia(t *testing.T) {
	toks, err := TokenizeString(nil, "a // c\n b /* d */ c",
		TokenComments(false), TokenWhitespace(false))
	if err != nil {
		t.Fatal(err)
	}
	got := []string{}
	for i := range toks {
		got = append(got, toks[i].Value)
	}
	want := "a,b,c,"
	if strings.Join(got, ",") != want {
		t.Errorf("got %q want %q", strings.Join(got, ","), want)
	}
}

func TestTokenizeByteOrderMark(t *testing.T) {
	toks, err := TokenizeString(nil, "\ufeff\"k\" v")
	if err != nil {
		t.Fatal(err)
	}
	types := []TokenType{TWhitespace, TString, TWhitespace, TString, TEOF}
	if len(toks) != len(types) {
		t.Fatalf("got %d tokens want %d", len(toks), len(types))
	}
	for i, typ := range types {
		if toks[i].Type != typ {
			t.Errorf("token %d: got %s want %s", i, toks[i].Type, typ)
		}
	}
	if toks[1].Value != "k" || toks[1].Pos.Offset() != 3 {
		t.Errorf("got %q at %d", toks[1].Value, toks[1].Pos.Offset())
	}

	toks, err = TokenizeString(nil, "\ufeffk v", TokenWhitespace(false))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 || toks[0].Value != "k" {
		t.Errorf("got %v", toks)
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, err := TokenizeString(nil, "a\n  \"b\"")
	if err != nil {
		t.Fatal(err)
	}
	b := toks[2]
	if b.Value != "b" {
		t.Fatalf("got %q", b.Value)
	}
	if p := b.Pos.Position(); p != (Position{Offset: 4, Line: 2, Column: 3}) {
		t.Errorf("got %+v", p)
	}
	eof := toks[len(toks)-1]
	if eof.Type != TEOF || eof.Pos.I != 7 {
		t.Errorf("eof %s", eof.Info())
	}
}

type errTest struct {
	in   string
	err  error
	off  int
	opts []TokenOpt
}

func TestTokenizeErrors(t *testing.T) {
	ets := []errTest{
		{in: `a "abc`, err: ErrUnterminated, off: 2},
		{in: `"abc\"`, err: ErrUnterminated, off: 0},
		{in: `x [abc`, err: ErrUnterminated, off: 2},
		{in: `#foo "x"`, err: ErrUnknownDirective, off: 0},
		{in: "a \x01", err: ErrUnexpectedChar, off: 2},
		{in: "k \"" + strings.Repeat("x", MaxTokenLength+1) + "\"", err: ErrTooLong, off: 2},
		{in: "k " + strings.Repeat("x", MaxTokenLength+1), err: ErrTooLong, off: 2},
	}
	for _, et := range ets {
		_, err := TokenizeString(nil, et.in, et.opts...)
		if !errors.Is(err, et.err) {
			t.Errorf("%.20q: got %v want %v", et.in, err, et.err)
			continue
		}
		var te *TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("%.20q: not a TokenizeErr: %T", et.in, err)
			continue
		}
		if te.Pos.I != et.off {
			t.Errorf("%.20q: got offset %d want %d", et.in, te.Pos.I, et.off)
		}
	}
}

func TestTokenizeMaxLength(t *testing.T) {
	exact := strings.Repeat("x", MaxTokenLength)
	for _, in := range []string{exact, `"` + exact + `"`, `"` + strings.Repeat(`\n`, MaxTokenLength) + `"`} {
		toks, err := TokenizeString(nil, in)
		if err != nil {
			t.Errorf("%d bytes: %v", len(in), err)
			continue
		}
		if n := len([]rune(toks[0].Value)); n != MaxTokenLength {
			t.Errorf("got %d chars want %d", n, MaxTokenLength)
		}
	}
}

func TestIsNumber(t *testing.T) {
	for in, want := range map[string][2]bool{
		"0":      {true, false},
		"-12":    {true, false},
		"3.25":   {true, true},
		"1e5":    {true, false},
		"1.5E-3": {true, true},
		"007":    {false, false},
		"1.":     {false, false},
		".5":     {false, false},
		"1.0.0":  {false, false},
		"0x10":   {false, false},
		"-":      {false, false},
		"":       {false, false},
	} {
		ok, isFloat := IsNumber(in)
		if ok != want[0] || isFloat != want[1] {
			t.Errorf("%q: got %v,%v want %v,%v", in, ok, isFloat, want[0], want[1])
		}
	}
}

func TestQuote(t *testing.T) {
	for _, s := range []string{
		"plain",
		"two words",
		`with "quotes"`,
		`back\slash`,
		"tab\tand\nnewline",
		"",
		"{brace}",
	} {
		q := Quote(s)
		toks, err := TokenizeString(nil, q)
		if err != nil {
			t.Errorf("%q: %v", q, err)
			continue
		}
		if toks[0].Value != s {
			t.Errorf("unquote(quote(%q)) = %q", s, toks[0].Value)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	for in, want := range map[string]bool{
		"plain":       false,
		"path/to/x":   false,
		"ünïcode":     false,
		"":            true,
		"a b":         true,
		"12":          true,
		"#hash":       true,
		"[cond]":      true,
		"a//b":        true,
		`say"hi"`:     true,
		"x}":          true,
		"1.2.3":       false,
	} {
		if got := NeedsQuote(in); got != want {
			t.Errorf("%q: got %v want %v", in, got, want)
		}
	}
}
