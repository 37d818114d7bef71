package parse

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vdf-format/vdf/ast"
	"github.com/vdf-format/vdf/kv"
	"github.com/vdf-format/vdf/token"
)

func dataJSON(t *testing.T, o *kv.Object) string {
	t.Helper()
	d, err := json.Marshal(o)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestParseData(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{``, `{}`},
		{`"a" "1"`, `{"a":"1"}`},
		{`a 1`, `{"a":1}`},
		{`"a" "1" "a" "2"`, `{"a":["1","2"]}`},
		{`a x a y b z a w`, `{"a":["x","y","w"],"b":"z"}`},
		{`key { "a" "1" // note
 "b" "2" }`, `{"key":{"a":"1","b":"2"}}`},
		{`n -1.5e3 q "7" z 007`, `{"n":-1.5e3,"q":"7","z":"007"}`},
		{`o { } o { x 1 }`, `{"o":[{},{"x":1}]}`},
		{"#base \"b.vdf\"\nk v [$WIN32]", `{"k":"v"}`},
		{`k [$X] { a b }`, `{"k":{"a":"b"}}`},
		{"\ufeff\"k\" \"v\"\n", `{"k":"v"}`},
		{"\ufeffk\r\n{\r\n\tx 1\r\n}", `{"k":{"x":1}}`},
	}
	for _, tc := range tests {
		res, err := ParseString(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got := dataJSON(t, res.Data); got != tc.want {
			t.Errorf("%q: got %s want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseNodes(t *testing.T) {
	res, err := ParseString("\"k\" \"v\" [$WIN32]\nn 2.5\n#include \"x.vdf\"\nk2 [$X] { }")
	if err != nil {
		t.Fatal(err)
	}
	var kinds []string
	for _, c := range res.AST.Children {
		kinds = append(kinds, c.Kind().String())
	}
	want := []string{"KeyValue", "Whitespace", "KeyValue", "Whitespace", "Directive", "Whitespace", "KeyValue"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("children (-want +got):\n%s", diff)
	}

	first := res.AST.Children[0].(*ast.KeyValue)
	if first.Cond == nil || first.Cond.Expr != "$WIN32" || first.CondBeforeValue {
		t.Errorf("trailing conditional: %#v", first.Cond)
	}
	if first.CondSep == nil || first.CondSep.Raw != " " {
		t.Errorf("got cond separator %#v", first.CondSep)
	}
	if s := first.Value.(*ast.String); !s.Quoted || s.QuoteChar != '"' || s.Raw != `"v"` {
		t.Errorf("got %#v", s)
	}

	num, ok := res.AST.Children[2].(*ast.KeyValue).Value.(*ast.Number)
	if !ok || !num.IsFloat || num.Value != "2.5" {
		t.Errorf("got %#v", res.AST.Children[2].(*ast.KeyValue).Value)
	}

	dir := res.AST.Children[4].(*ast.Directive)
	if dir.Directive != ast.Include || dir.Path != "x.vdf" || !dir.Quoted {
		t.Errorf("got %#v", dir)
	}

	last := res.AST.Children[6].(*ast.KeyValue)
	if !last.CondBeforeValue || last.Cond.Expr != "$X" {
		t.Errorf("leading conditional: %#v", last)
	}
	if _, ok := last.Value.(*ast.Object); !ok {
		t.Errorf("got %T", last.Value)
	}
}

func TestParsePositions(t *testing.T) {
	in := "a\n{\n\tb \"c\"\n}"
	res, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	a := res.AST.Children[0].(*ast.KeyValue)
	obj := a.Value.(*ast.Object)
	if obj.Start != (token.Position{Offset: 2, Line: 2, Column: 1}) {
		t.Errorf("object start %+v", obj.Start)
	}
	if obj.End != (token.Position{Offset: len(in), Line: 4, Column: 2}) {
		t.Errorf("object end %+v", obj.End)
	}
	var b *ast.KeyValue
	for _, c := range obj.Children {
		if x, ok := c.(*ast.KeyValue); ok {
			b = x
		}
	}
	if b.Key.Start != (token.Position{Offset: 5, Line: 3, Column: 2}) {
		t.Errorf("key start %+v", b.Key.Start)
	}
	if b.Raw != `b "c"` {
		t.Errorf("got raw %q", b.Raw)
	}
	if res.AST.Raw != in || res.AST.End.Offset != len(in) {
		t.Errorf("document span %+v", res.AST.Loc)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		err    error
		offset int
	}{
		{`a { b c`, ErrUnexpectedEOF, 7},
		{`a b }`, ErrUnbalanced, 4},
		{`a { b c } }`, ErrUnbalanced, 10},
		{`a`, ErrUnexpectedEOF, 1},
		{`a { b }`, ErrUnexpectedToken, 6},
		{`{ a b }`, ErrUnexpectedToken, 0},
		{`[$X] a b`, ErrUnexpectedToken, 0},
		{`a [$X] [$Y] b`, ErrUnexpectedToken, 7},
		{"#base\na b", ErrDirectiveTarget, 0},
		{`a #base x`, ErrUnexpectedToken, 2},
	}
	for _, tc := range tests {
		_, err := ParseString(tc.in)
		if !errors.Is(err, tc.err) {
			t.Errorf("%q: got %v want %v", tc.in, err, tc.err)
			continue
		}
		pe := &ParseErr{}
		if !errors.As(err, &pe) {
			t.Errorf("%q: not a ParseErr: %T", tc.in, err)
			continue
		}
		if pe.Pos.I != tc.offset {
			t.Errorf("%q: got offset %d want %d", tc.in, pe.Pos.I, tc.offset)
		}
	}
}

func TestParseTokenizeErrors(t *testing.T) {
	_, err := ParseString(`a "unterminated`)
	if !errors.Is(err, token.ErrUnterminated) {
		t.Errorf("got %v", err)
	}
	_, err = ParseString("a " + strings.Repeat("x", token.MaxTokenLength+1))
	if !errors.Is(err, token.ErrTooLong) {
		t.Errorf("got %v", err)
	}
}

func TestParseOptions(t *testing.T) {
	res, err := ParseString("a b // c\n", ParseComments(false), ParseWhitespace(false))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.AST.Children) != 1 {
		t.Errorf("got %d children want 1", len(res.AST.Children))
	}
	res, err = ParseString(`k "a\tb"`, ParseEscapes(false))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := res.Data.Get("k"); v != kv.String(`a\tb`) {
		t.Errorf("got %q", v)
	}
	res, err = ParseString(`k [x]`, ParseConditionals(false))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := res.Data.Get("k"); v != kv.String(`[x]`) {
		t.Errorf("got %q", v)
	}
}

func TestParseJSONBoundary(t *testing.T) {
	in := `root { a 1 b "x" a 2.5 c { d "" } }`
	res, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	d, err := json.Marshal(res.Data)
	if err != nil {
		t.Fatal(err)
	}
	back := kv.NewObject()
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !kv.Equal(back, res.Data) {
		t.Errorf("json boundary changed data: %s", d)
	}
}

func TestReduce(t *testing.T) {
	for _, in := range []string{
		`a 1 a 2 b { c "d" c { e f } } g 2.5`,
		"#base x\nk v [$X]\n",
		``,
	} {
		res, err := ParseString(in)
		if err != nil {
			t.Fatal(err)
		}
		got := Reduce(res.AST)
		if !kv.Equal(got, res.Data) {
			t.Errorf("%q: got %s want %s", in, dataJSON(t, got), dataJSON(t, res.Data))
		}
	}
}
