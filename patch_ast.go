package vdf

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vdf-format/vdf/ast"
	"github.com/vdf-format/vdf/debug"
	"github.com/vdf-format/vdf/kv"
	"github.com/vdf-format/vdf/libdiff"
	"github.com/vdf-format/vdf/parse"
)

// ApplyToAST applies diff to a copy of source. Nodes the diff does not
// touch keep their source text.
//
// Replace updates a value in place when the new value has the same kind,
// keeping the key, separator and quoting; objects are patched member by
// member. Otherwise a new value node is synthesized. Replacing a missing
// key fails with ErrKeyNotFound.
//
// Add inserts a new pair after the last member of its parent, on its own
// line, indented like its siblings, with a four space separator. Missing
// parents are created and an existing key is replaced.
//
// Remove deletes every pair with the key together with its indentation
// and any comment on the rest of its line. A missing key is ignored.
//
// Array values correspond to repeated keys: pairs are updated in order,
// surplus pairs removed and missing ones inserted after the last.
func ApplyToAST(source *ast.Document, diff *libdiff.DocumentDiff) (*ast.Document, error) {
	doc := source.Clone()
	root := docScope(doc)
	for i := range diff.Changes {
		e := &diff.Changes[i]
		if debug.Patch() {
			debug.Logf("ast patch %s %s\n", e.Op, e.Path)
		}
		if err := applyAST(root, kv.SplitPath(e.Path), e); err != nil {
			return nil, applyErr(e, err)
		}
	}
	return doc, nil
}

func applyAST(root *scope, parts []string, e *libdiff.Entry) error {
	k := parts[len(parts)-1]
	parents := parts[:len(parts)-1]
	switch e.Op {
	case libdiff.OpAdd:
		if e.NewValue == nil {
			return ErrMissingValue
		}
		s, err := root.find(parents, true)
		if err != nil {
			return err
		}
		if kvs := ast.KeyValues(s.c, k); len(kvs) != 0 {
			return s.set(kvs, e.NewValue)
		}
		s.insertAt(s.appendPos(), k, e.NewValue)
		return nil
	case libdiff.OpReplace:
		if e.NewValue == nil {
			return ErrMissingValue
		}
		s, err := root.find(parents, false)
		if err != nil {
			return err
		}
		if s == nil {
			return fmt.Errorf("%w: %s", ErrKeyNotFound, strings.Join(parts, "."))
		}
		kvs := ast.KeyValues(s.c, k)
		if len(kvs) == 0 {
			return fmt.Errorf("%w: %s", ErrKeyNotFound, strings.Join(parts, "."))
		}
		return s.set(kvs, e.NewValue)
	case libdiff.OpRemove:
		s, err := root.find(parents, false)
		if err != nil || s == nil {
			return err
		}
		for _, p := range ast.KeyValues(s.c, k) {
			s.remove(p)
		}
		return nil
	}
	return fmt.Errorf("%w %q", ErrBadOp, e.Op)
}

// scope is a container with the indentation of its own line and of its
// members.
type scope struct {
	c      ast.Container
	outer  string
	indent string
}

func docScope(d *ast.Document) *scope {
	ind, _ := detectIndent(d)
	return &scope{c: d, indent: ind}
}

func (s *scope) child(o *ast.Object) *scope {
	ind, ok := detectIndent(o)
	if !ok {
		ind = s.indent + "\t"
	}
	return &scope{c: o, outer: s.indent, indent: ind}
}

// detectIndent returns the text after the last newline preceding the first
// member of c that starts a line.
func detectIndent(c ast.Container) (string, bool) {
	ch := *c.ChildNodes()
	for i := 1; i < len(ch); i++ {
		if _, ok := ch[i].(*ast.KeyValue); !ok {
			continue
		}
		ws, ok := ch[i-1].(*ast.Whitespace)
		if !ok {
			continue
		}
		if j := strings.LastIndexByte(ws.Raw, '\n'); j >= 0 {
			return ws.Raw[j+1:], true
		}
	}
	return "", false
}

// find walks parents from s. Missing objects are created when create is
// set; otherwise a missing key yields a nil scope.
func (s *scope) find(parents []string, create bool) (*scope, error) {
	cur := s
	for i, k := range parents {
		kvs := ast.KeyValues(cur.c, k)
		if len(kvs) == 0 {
			if !create {
				return nil, nil
			}
			p := cur.insertAt(cur.appendPos(), k, kv.NewObject())[0]
			cur = cur.child(p.Value.(*ast.Object))
			continue
		}
		obj, ok := kvs[0].Value.(*ast.Object)
		if len(kvs) > 1 || !ok {
			return nil, notObject(strings.Join(parents[:i+1], "."))
		}
		cur = cur.child(obj)
	}
	return cur, nil
}

// set makes the pairs kvs, all with the same key, hold v.
func (s *scope) set(kvs []*ast.KeyValue, v kv.Value) error {
	vals := flatten(v)
	for i, p := range kvs {
		if i >= len(vals) {
			s.remove(p)
			continue
		}
		if err := s.replaceValue(p, vals[i]); err != nil {
			return err
		}
	}
	if len(vals) > len(kvs) {
		last := kvs[len(kvs)-1]
		ch := *s.c.ChildNodes()
		pos := lineEnd(ch, slices.Index(ch, ast.Node(last))+1)
		s.insertAt(pos, last.Key.Value, kv.Array(vals[len(kvs):]))
	}
	return nil
}

func (s *scope) replaceValue(p *ast.KeyValue, v kv.Value) error {
	switch cur := p.Value.(type) {
	case *ast.String:
		if sv, ok := v.(kv.String); ok {
			cur.SetValue(string(sv))
			return nil
		}
	case *ast.Number:
		if nv, ok := v.(kv.Number); ok {
			cur.SetValue(nv)
			return nil
		}
	case *ast.Object:
		if ov, ok := v.(*kv.Object); ok {
			inner := s.child(cur)
			sub := libdiff.Diff(parse.Reduce(cur), ov)
			for i := range sub.Changes {
				se := &sub.Changes[i]
				if err := applyAST(inner, kv.SplitPath(se.Path), se); err != nil {
					return err
				}
			}
			return nil
		}
	}
	p.Value = ast.NewValue(v, s.indent)
	return nil
}

// appendPos is the position after the last member of s, before trailing
// whitespace.
func (s *scope) appendPos() int {
	ch := *s.c.ChildNodes()
	pos := len(ch)
	for pos > 0 {
		if _, ok := ch[pos-1].(*ast.Whitespace); !ok {
			break
		}
		pos--
	}
	return pos
}

// insertAt inserts pairs for k and v at child position pos, each on its
// own line.
func (s *scope) insertAt(pos int, k string, v kv.Value) []*ast.KeyValue {
	pairs := ast.NewKeyValues(k, v, s.indent)
	if len(pairs) == 0 {
		return nil
	}
	children := s.c.ChildNodes()
	_, isObj := s.c.(*ast.Object)
	nodes := make([]ast.Node, 0, 2*len(pairs)+1)
	for i, p := range pairs {
		if isObj || pos > 0 || i > 0 {
			nodes = append(nodes, ast.NewWhitespace("\n"+s.indent))
		}
		nodes = append(nodes, p)
	}
	rest := (*children)[pos:]
	switch {
	case len(rest) != 0 && !startsLine(rest[0]):
		nodes = append(nodes, ast.NewWhitespace("\n"+s.indent))
	case len(rest) == 0 && isObj:
		nodes = append(nodes, ast.NewWhitespace("\n"+s.outer))
	case len(rest) == 0 && pos == 0:
		nodes = append(nodes, ast.NewWhitespace("\n"))
	}
	*children = slices.Insert(*children, pos, nodes...)
	return pairs
}

// remove deletes p with the whitespace before it and a line comment
// following it on the same line.
func (s *scope) remove(p *ast.KeyValue) {
	children := s.c.ChildNodes()
	ch := *children
	i := slices.Index(ch, ast.Node(p))
	if i < 0 {
		return
	}
	start, end := i, i+1
	j := end
	if j < len(ch) && isInlineSpace(ch[j]) {
		j++
	}
	if j < len(ch) {
		if c, ok := ch[j].(*ast.Comment); ok && !c.Block {
			end = j + 1
		}
	}
	switch {
	case start > 0 && isWhitespace(ch[start-1]):
		start--
	case end < len(ch) && isWhitespace(ch[end]):
		end++
	}
	*children = slices.Delete(ch, start, end)
}

// lineEnd skips comments and whitespace that continue the line ending at
// position i.
func lineEnd(ch []ast.Node, i int) int {
	for i < len(ch) {
		switch x := ch[i].(type) {
		case *ast.Whitespace:
			if strings.Contains(x.Raw, "\n") {
				return i
			}
		case *ast.Comment:
			if !x.Block {
				return i + 1
			}
		default:
			return i
		}
		i++
	}
	return i
}

func startsLine(n ast.Node) bool {
	ws, ok := n.(*ast.Whitespace)
	return ok && strings.Contains(ws.Raw, "\n")
}

func isWhitespace(n ast.Node) bool {
	_, ok := n.(*ast.Whitespace)
	return ok
}

func isInlineSpace(n ast.Node) bool {
	ws, ok := n.(*ast.Whitespace)
	return ok && !strings.Contains(ws.Raw, "\n")
}

func flatten(v kv.Value) []kv.Value {
	arr, ok := v.(kv.Array)
	if !ok {
		return []kv.Value{v}
	}
	var res []kv.Value
	for _, e := range arr {
		res = append(res, flatten(e)...)
	}
	return res
}
