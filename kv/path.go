package kv

import "strings"

// SplitPath splits a dot joined key path. Keys containing dots are not
// escaped. A path always names at least one key, so "" is the empty key
// and "." the empty key inside it.
func SplitPath(p string) []string {
	return strings.Split(p, ".")
}

// JoinPath joins keys into a path.
func JoinPath(keys ...string) string {
	return strings.Join(keys, ".")
}

// GetPath looks up a dot joined key path. Every segment but the last must
// name an Object.
func (o *Object) GetPath(p string) (Value, bool) {
	parts := SplitPath(p)
	cur := o
	for i, k := range parts {
		v, ok := cur.vals[k]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		next, ok := v.(*Object)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}
