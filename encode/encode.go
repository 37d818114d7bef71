package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vdf-format/vdf/ast"
	"github.com/vdf-format/vdf/token"
)

type EncState struct {
	indent string
	sep    string

	// what the last written text ends with
	bare        bool
	lineComment bool

	Color func(ast.Kind, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{indent: "\t", sep: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w. Raw source text is authoritative; nodes
// without it are written in canonical form.
func Encode(node ast.Node, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	return encode(node, w, es, ValueColor)
}

// String returns the text of node.
func String(node ast.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(node ast.Node) string {
	s, err := String(node)
	if err != nil {
		panic(err)
	}
	return s
}

func encode(node ast.Node, w io.Writer, es *EncState, attr ColorAttr) error {
	switch x := node.(type) {
	case *ast.Document:
		for _, c := range x.Children {
			if err := encode(c, w, es, ValueColor); err != nil {
				return err
			}
		}
		return nil
	case *ast.Object:
		if err := es.leaf(w, ast.ObjectKind, SepColor, raw(x.Open.Raw, "{"), false); err != nil {
			return err
		}
		for _, c := range x.Children {
			if err := encode(c, w, es, ValueColor); err != nil {
				return err
			}
		}
		return es.leaf(w, ast.ObjectKind, SepColor, raw(x.Close.Raw, "}"), false)
	case *ast.KeyValue:
		if x.Key == nil || x.Value == nil {
			return fmt.Errorf("incomplete key value at %s", x.Start)
		}
		for _, p := range x.Parts() {
			a := ValueColor
			if p == ast.Node(x.Key) {
				a = KeyColor
			}
			if err := encode(p, w, es, a); err != nil {
				return err
			}
		}
		return nil
	case *ast.String:
		s := x.Raw
		if s == "" {
			s = token.Render(x.Value, x.Quoted)
		}
		return es.leaf(w, ast.StringKind, attr, s, !strings.HasSuffix(s, `"`))
	case *ast.Number:
		return es.leaf(w, ast.NumberKind, attr, raw(x.Raw, x.Value), true)
	case *ast.Whitespace:
		if x.Raw == "" {
			return nil
		}
		if es.lineComment && x.Raw[0] != '\n' && x.Raw[0] != '\r' {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		if err := writeString(w, x.Raw); err != nil {
			return err
		}
		es.bare = false
		es.lineComment = x.LineComment
		return nil
	case *ast.Comment:
		s := x.Raw
		if s == "" {
			if x.Block {
				s = "/*" + x.Text + "*/"
			} else {
				s = "//" + x.Text
			}
		}
		if err := es.leaf(w, ast.CommentKind, ValueColor, s, false); err != nil {
			return err
		}
		es.lineComment = !x.Block
		return nil
	case *ast.Conditional:
		return es.leaf(w, ast.ConditionalKind, ValueColor, raw(x.Raw, "["+x.Expr+"]"), false)
	case *ast.Directive:
		s := x.Raw
		if s == "" {
			s = "#" + x.Directive.String() + " " + token.Render(x.Path, x.Quoted)
		}
		return es.leaf(w, ast.DirectiveKind, ValueColor, s, !strings.HasSuffix(s, `"`))
	}
	return fmt.Errorf("cannot encode %T", node)
}

// leaf writes s, first separating it from the previous output when the
// two would otherwise run together.
func (es *EncState) leaf(w io.Writer, k ast.Kind, a ColorAttr, s string, bare bool) error {
	if s == "" {
		return nil
	}
	gap := ""
	switch {
	case es.lineComment:
		gap = "\n"
	case es.bare && startsBare(s):
		gap = " "
	}
	if es.Color != nil {
		s = es.Color(k, a, s)
	}
	if err := writeString(w, gap+s); err != nil {
		return err
	}
	es.bare = bare
	es.lineComment = false
	return nil
}

// startsBare reports whether s would continue a preceding unquoted string.
func startsBare(s string) bool {
	switch s[0] {
	case '"', '{', '}':
		return false
	}
	return !strings.HasPrefix(s, "//") && !strings.HasPrefix(s, "/*")
}

func raw(r, canonical string) string {
	if r != "" {
		return r
	}
	return canonical
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
