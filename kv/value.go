package kv

import (
	"strconv"

	"github.com/vdf-format/vdf/token"
)

// Value is one of String, Number, *Object or Array.
type Value interface {
	kvValue()
}

type String string

// Number holds a numeric literal in the JSON number grammar.
type Number string

// Array holds the values of a key repeated at one level, in document order.
type Array []Value

func (String) kvValue()  {}
func (Number) kvValue()  {}
func (Array) kvValue()   {}
func (*Object) kvValue() {}

// ParseNumber returns s as a Number if it is a numeric literal.
func ParseNumber(s string) (Number, bool) {
	if ok, _ := token.IsNumber(s); !ok {
		return "", false
	}
	return Number(s), true
}

func Int(i int64) Number {
	return Number(strconv.FormatInt(i, 10))
}

// Float returns the shortest literal for f, which must be finite.
func Float(f float64) Number {
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

func (n Number) String() string {
	return string(n)
}

func (n Number) IsFloat() bool {
	_, isFloat := token.IsNumber(string(n))
	return isFloat
}

func (n Number) Int64() (int64, bool) {
	i, err := strconv.ParseInt(string(n), 10, 64)
	return i, err == nil
}

func (n Number) Float64() float64 {
	f, _ := strconv.ParseFloat(string(n), 64)
	return f
}

// Equal compares numbers by value, exactly for integers in the int64 range.
func (n Number) Equal(m Number) bool {
	if n == m {
		return true
	}
	ni, nok := n.Int64()
	mi, mok := m.Int64()
	if nok && mok {
		return ni == mi
	}
	return n.Float64() == m.Float64()
}

// Equal reports whether a and b are deeply equal. Objects compare without
// regard to key order.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x.Equal(y)
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Object:
		y, ok := b.(*Object)
		if !ok {
			return false
		}
		if x == nil || y == nil {
			return x == y
		}
		if x.Len() != y.Len() {
			return false
		}
		for _, k := range x.keys {
			yv, ok := y.vals[k]
			if !ok || !Equal(x.vals[k], yv) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}

// Clone returns a deep copy of v.
func Clone(v Value) Value {
	switch x := v.(type) {
	case Array:
		res := make(Array, len(x))
		for i := range x {
			res[i] = Clone(x[i])
		}
		return res
	case *Object:
		return x.Clone()
	}
	return v
}
