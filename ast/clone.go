package ast

import "fmt"

// Clone returns a deep copy of n. The copy shares no nodes with n.
func Clone(n Node) Node {
	switch x := n.(type) {
	case *Document:
		return x.Clone()
	case *Object:
		return x.Clone()
	case *KeyValue:
		return x.Clone()
	case *String:
		return x.Clone()
	case *Number:
		return x.Clone()
	case *Whitespace:
		return x.Clone()
	case *Comment:
		return x.Clone()
	case *Conditional:
		return x.Clone()
	case *Directive:
		return x.Clone()
	}
	panic(fmt.Sprintf("ast: cannot clone %T", n))
}

func cloneNodes(ns []Node) []Node {
	if ns == nil {
		return nil
	}
	res := make([]Node, len(ns))
	for i, n := range ns {
		res[i] = Clone(n)
	}
	return res
}

func (d *Document) Clone() *Document {
	return &Document{Loc: d.Loc, Children: cloneNodes(d.Children)}
}

func (o *Object) Clone() *Object {
	return &Object{
		Loc:      o.Loc,
		Open:     o.Open,
		Children: cloneNodes(o.Children),
		Close:    o.Close,
	}
}

func (kv *KeyValue) Clone() *KeyValue {
	res := &KeyValue{
		Loc:             kv.Loc,
		CondBeforeValue: kv.CondBeforeValue,
	}
	if kv.Key != nil {
		res.Key = kv.Key.Clone()
	}
	if kv.Separator != nil {
		res.Separator = kv.Separator.Clone()
	}
	if kv.Value != nil {
		res.Value = Clone(kv.Value).(Value)
	}
	if kv.Cond != nil {
		res.Cond = kv.Cond.Clone()
	}
	if kv.CondSep != nil {
		res.CondSep = kv.CondSep.Clone()
	}
	return res
}

func (s *String) Clone() *String {
	c := *s
	return &c
}

func (n *Number) Clone() *Number {
	c := *n
	return &c
}

func (w *Whitespace) Clone() *Whitespace {
	c := *w
	return &c
}

func (c *Comment) Clone() *Comment {
	r := *c
	return &r
}

func (c *Conditional) Clone() *Conditional {
	r := *c
	return &r
}

func (d *Directive) Clone() *Directive {
	r := *d
	return &r
}
