package encode_test

import (
	"strings"
	"testing"

	"github.com/vdf-format/vdf/ast"
	"github.com/vdf-format/vdf/encode"
	"github.com/vdf-format/vdf/kv"
	"github.com/vdf-format/vdf/parse"
)

var roundTrips = []string{
	``,
	`key { "a" "1" // note
 "b" "2" }`,
	"\"root\"\n{\n\t\"name\"\t\t\"x\"\n\t\"n\"\t\t1.5\n}\n",
	"a b\r\nc d\r\n",
	"#base \"base.vdf\"\n#include other.vdf\n\"k\" \"v\"\n",
	"\"k\" \"v\" [$WIN32]\n\"k\" \"w\" [!$WIN32]\n",
	"\"k\" [$X360] { \"a\" \"b\" }",
	"/* block\ncomment */ k /* mid */ v // tail",
	"\"esc\" \"a\\\"b\\\\c\\nd\\q\"\n",
	"path C:/games/x.vdf",
	"// only a comment",
	"   \n\t  ",
	"outer{inner{deep{x 1}}}",
	"\"k\" /* see http://example.com */ \"v\"\n",
	"p/q\u00e91/* x *//* x */{}",
	"\"k\" /* a // b */ [$X] /* // */ { }",
	"\ufeff\"k\" \"v\"\n",
}

func TestRoundTrip(t *testing.T) {
	for _, in := range roundTrips {
		res, err := parse.ParseString(in)
		if err != nil {
			t.Errorf("parse %q: %v", in, err)
			continue
		}
		got, err := encode.String(res.AST)
		if err != nil {
			t.Errorf("encode %q: %v", in, err)
			continue
		}
		if got != in {
			t.Errorf("got %q want %q", got, in)
		}
	}
}

func TestRoundTripSubtree(t *testing.T) {
	in := "a {\n\tb \"c\" // x\n}\n"
	res, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	kvNode := res.AST.Children[0].(*ast.KeyValue)
	got := encode.MustString(kvNode)
	if got != kvNode.Raw {
		t.Errorf("got %q want %q", got, kvNode.Raw)
	}
	if want := "a {\n\tb \"c\" // x\n}"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestStrippedTrivia(t *testing.T) {
	tests := []struct {
		in   string
		opts []parse.ParseOption
		want string
	}{
		{
			in:   "a b\nc { d e }",
			opts: []parse.ParseOption{parse.ParseWhitespace(false)},
			want: "a b c{d e}",
		},
		{
			in:   "a b // c\nd e",
			opts: []parse.ParseOption{parse.ParseWhitespace(false)},
			want: "a b// c\nd e",
		},
		{
			in:   "\"a\" \"b\" // c\n\"d\" \"e\"",
			opts: []parse.ParseOption{parse.ParseComments(false)},
			want: "\"a\" \"b\" \n\"d\" \"e\"",
		},
	}
	for _, tc := range tests {
		res, err := parse.ParseString(tc.in, tc.opts...)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		got := encode.MustString(res.AST)
		if got != tc.want {
			t.Errorf("got %q want %q", got, tc.want)
		}
		back, err := parse.ParseString(got)
		if err != nil {
			t.Errorf("reparse %q: %v", got, err)
			continue
		}
		if !kv.Equal(back.Data, res.Data) {
			t.Errorf("reparse of %q changed data", got)
		}
	}
}

func TestSynthesized(t *testing.T) {
	doc := &ast.Document{Children: []ast.Node{
		ast.NewKeyValue("plain", kv.String("two words"), ""),
		ast.NewWhitespace("\n"),
		ast.NewKeyValue("n", kv.Number("42"), ""),
		&ast.KeyValue{
			Key:   &ast.String{Value: "bare"},
			Value: &ast.String{Value: "value"},
		},
		&ast.Comment{Text: " c"},
		&ast.KeyValue{
			Key:   &ast.String{Value: "x"},
			Value: &ast.Number{Value: "1"},
			Cond:  &ast.Conditional{Expr: "$OSX"},
		},
	}}
	got := encode.MustString(doc)
	want := "\"plain\"    \"two words\"\n\"n\"    42 bare value// c\nx 1 [$OSX]"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	res, err := parse.ParseString(got)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := res.Data.Get("bare"); v != kv.String("value") {
		t.Errorf("got %v", v)
	}
}

func TestSeparatorComments(t *testing.T) {
	kvp := func(sep *ast.Whitespace) *ast.KeyValue {
		return &ast.KeyValue{
			Key:       &ast.String{Value: "k", Quoted: true},
			Separator: sep,
			Value:     &ast.String{Value: "v", Quoted: true},
		}
	}
	tests := []struct {
		sep  *ast.Whitespace
		want string
	}{
		{&ast.Whitespace{Loc: ast.Loc{Raw: " // c"}, LineComment: true}, "\"k\" // c\n\"v\""},
		{&ast.Whitespace{Loc: ast.Loc{Raw: " /* http://x */ "}}, "\"k\" /* http://x */ \"v\""},
	}
	for _, tt := range tests {
		got := encode.MustString(kvp(tt.sep))
		if got != tt.want {
			t.Errorf("got %q want %q", got, tt.want)
		}
	}
}

func TestEncodeData(t *testing.T) {
	obj := kv.NewObject().
		With("name", kv.String("a \"b\"")).
		With("inner", kv.NewObject().With("n", kv.Number("3"))).
		With("rep", kv.Array{kv.String("x"), kv.String("y")})
	got, err := encode.DataString(obj)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		`"name"	"a \"b\""`,
		`"inner"`,
		`{`,
		`	"n"	3`,
		`}`,
		`"rep"	"x"`,
		`"rep"	"y"`,
		``,
	}, "\n")
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	res, err := parse.ParseString(got)
	if err != nil {
		t.Fatal(err)
	}
	if !kv.Equal(res.Data, obj) {
		t.Errorf("reparse changed data:\n%s", got)
	}
}

func TestColorsForced(t *testing.T) {
	res, err := parse.ParseString(`"k" "v%"`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := encode.String(res.AST, encode.EncodeColors(encode.NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"\x1b[38;2;196;96;16m\"k\"\x1b[", "\x1b[38;2;8;196;16m\"v%\"\x1b["} {
		if !strings.Contains(got, want) {
			t.Errorf("got %q, missing %q", got, want)
		}
	}
}

func TestColorsPlainWhenDisabled(t *testing.T) {
	res, err := parse.ParseString(`"k" "v"`)
	if err != nil {
		t.Fatal(err)
	}
	c := encode.NewColors()
	c.Map = nil
	got, err := encode.String(res.AST, encode.EncodeColors(c))
	if err != nil {
		t.Fatal(err)
	}
	if got != `"k" "v"` {
		t.Errorf("got %q", got)
	}
}
