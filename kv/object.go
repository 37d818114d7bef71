package kv

import "slices"

// Object is an insertion ordered mapping from keys to values.
// The zero value is not usable; use NewObject.
type Object struct {
	keys []string
	vals map[string]Value
}

func NewObject() *Object {
	return &Object{vals: map[string]Value{}}
}

func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys of o in order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

func (o *Object) Get(k string) (Value, bool) {
	v, ok := o.vals[k]
	return v, ok
}

func (o *Object) Has(k string) bool {
	_, ok := o.vals[k]
	return ok
}

// Set assigns v to k, keeping the position of an existing key.
func (o *Object) Set(k string, v Value) {
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

// With is Set returning o, for building objects in expressions.
func (o *Object) With(k string, v Value) *Object {
	o.Set(k, v)
	return o
}

// Append folds another occurrence of k into o: the first occurrence is
// stored as is, the second turns the value into a two element Array, and
// later ones extend it.
func (o *Object) Append(k string, v Value) {
	cur, ok := o.vals[k]
	if !ok {
		o.Set(k, v)
		return
	}
	if arr, ok := cur.(Array); ok {
		o.vals[k] = append(arr, v)
		return
	}
	o.vals[k] = Array{cur, v}
}

// Delete removes k and reports whether it was present.
func (o *Object) Delete(k string) bool {
	if _, ok := o.vals[k]; !ok {
		return false
	}
	delete(o.vals, k)
	i := slices.Index(o.keys, k)
	o.keys = slices.Delete(o.keys, i, i+1)
	return true
}

func (o *Object) Clone() *Object {
	res := &Object{
		keys: slices.Clone(o.keys),
		vals: make(map[string]Value, len(o.vals)),
	}
	for k, v := range o.vals {
		res.vals[k] = Clone(v)
	}
	return res
}
