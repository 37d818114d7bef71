package ast

import "fmt"

// Walk visits n and its descendants in source order. If f returns false
// the children of the visited node are skipped.
func Walk(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch x := n.(type) {
	case *Document:
		for _, c := range x.Children {
			Walk(c, f)
		}
	case *Object:
		for _, c := range x.Children {
			Walk(c, f)
		}
	case *KeyValue:
		for _, c := range x.Parts() {
			Walk(c, f)
		}
	case *String, *Number, *Whitespace, *Comment, *Conditional, *Directive:
	default:
		panic(fmt.Sprintf("ast: cannot walk %T", n))
	}
}

// Parts returns the non nil parts of kv in source order.
func (kv *KeyValue) Parts() []Node {
	res := make([]Node, 0, 5)
	add := func(n Node, ok bool) {
		if ok {
			res = append(res, n)
		}
	}
	add(kv.Key, kv.Key != nil)
	add(kv.Separator, kv.Separator != nil)
	if kv.CondBeforeValue {
		add(kv.Cond, kv.Cond != nil)
		add(kv.CondSep, kv.CondSep != nil)
		add(kv.Value, kv.Value != nil)
		return res
	}
	add(kv.Value, kv.Value != nil)
	add(kv.CondSep, kv.CondSep != nil)
	add(kv.Cond, kv.Cond != nil)
	return res
}
