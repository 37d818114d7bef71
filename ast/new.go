package ast

import (
	"fmt"

	"github.com/vdf-format/vdf/kv"
	"github.com/vdf-format/vdf/token"
)

// DefaultSeparator separates the key and value of synthesized pairs.
const DefaultSeparator = "    "

// NewString returns a quoted string without source text.
func NewString(v string) *String {
	return &String{Value: v, Quoted: true, QuoteChar: '"'}
}

func NewNumber(n kv.Number) *Number {
	return &Number{Value: string(n), IsFloat: n.IsFloat()}
}

func NewWhitespace(s string) *Whitespace {
	return &Whitespace{Loc: Loc{Raw: s}}
}

// NewValue synthesizes a value node for v, which must not be an Array.
// Object members are placed on their own lines, indented one tab deeper
// than indent.
func NewValue(v kv.Value, indent string) Value {
	switch x := v.(type) {
	case kv.String:
		return NewString(string(x))
	case kv.Number:
		return NewNumber(x)
	case *kv.Object:
		obj := &Object{
			Open:  Loc{Raw: "{"},
			Close: Loc{Raw: "}"},
		}
		inner := indent + "\t"
		for _, k := range x.Keys() {
			cv, _ := x.Get(k)
			for _, p := range NewKeyValues(k, cv, inner) {
				obj.Children = append(obj.Children, NewWhitespace("\n"+inner), p)
			}
		}
		obj.Children = append(obj.Children, NewWhitespace("\n"+indent))
		return obj
	}
	panic(fmt.Sprintf("ast: no value node for %T", v))
}

// NewKeyValue synthesizes a pair with the default separator. v must not be
// an Array.
func NewKeyValue(k string, v kv.Value, indent string) *KeyValue {
	return &KeyValue{
		Key:       NewString(k),
		Separator: NewWhitespace(DefaultSeparator),
		Value:     NewValue(v, indent),
	}
}

// NewKeyValues synthesizes one pair for v, or one per element when v is an
// Array.
func NewKeyValues(k string, v kv.Value, indent string) []*KeyValue {
	arr, ok := v.(kv.Array)
	if !ok {
		return []*KeyValue{NewKeyValue(k, v, indent)}
	}
	res := make([]*KeyValue, 0, len(arr))
	for _, e := range arr {
		res = append(res, NewKeyValues(k, e, indent)...)
	}
	return res
}

// SetValue replaces the value of s with v, keeping the original quoting
// when v can still be written with it.
func (s *String) SetValue(v string) {
	if s.Value == v && s.Raw != "" {
		return
	}
	s.Value = v
	s.Raw = ""
	if !s.Quoted && token.NeedsQuote(v) {
		s.Quoted = true
		s.QuoteChar = '"'
	}
}

func (n *Number) SetValue(v kv.Number) {
	if n.Value == string(v) && n.Raw != "" {
		return
	}
	n.Value = string(v)
	n.IsFloat = v.IsFloat()
	n.Raw = ""
}
