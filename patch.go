package vdf

import (
	"fmt"
	"strings"

	"github.com/vdf-format/vdf/debug"
	"github.com/vdf-format/vdf/kv"
	"github.com/vdf-format/vdf/libdiff"
)

// ApplyToData applies diff to a copy of source.
//
// Add and replace assign the new value, creating missing intermediate
// objects. Remove deletes the key and does nothing when the key or one of
// its parents is absent. Navigating through a value that is not an object
// fails with ErrNotObject.
func ApplyToData(source *kv.Object, diff *libdiff.DocumentDiff) (*kv.Object, error) {
	res := source.Clone()
	for i := range diff.Changes {
		e := &diff.Changes[i]
		if debug.Patch() {
			debug.Logf("data patch %s %s\n", e.Op, e.Path)
		}
		if err := applyData(res, e); err != nil {
			return nil, applyErr(e, err)
		}
	}
	return res, nil
}

func applyData(root *kv.Object, e *libdiff.Entry) error {
	parts := kv.SplitPath(e.Path)
	k := parts[len(parts)-1]
	switch e.Op {
	case libdiff.OpAdd, libdiff.OpReplace:
		if e.NewValue == nil {
			return ErrMissingValue
		}
		parent, err := dataParent(root, parts[:len(parts)-1], true)
		if err != nil {
			return err
		}
		parent.Set(k, kv.Clone(e.NewValue))
		return nil
	case libdiff.OpRemove:
		parent, err := dataParent(root, parts[:len(parts)-1], false)
		if err != nil || parent == nil {
			return err
		}
		parent.Delete(k)
		return nil
	}
	return fmt.Errorf("%w %q", ErrBadOp, e.Op)
}

// dataParent walks parts from root. Missing objects are created when
// create is set; otherwise a missing key yields a nil object.
func dataParent(root *kv.Object, parts []string, create bool) (*kv.Object, error) {
	cur := root
	for i, k := range parts {
		v, ok := cur.Get(k)
		if !ok {
			if !create {
				return nil, nil
			}
			next := kv.NewObject()
			cur.Set(k, next)
			cur = next
			continue
		}
		next, ok := v.(*kv.Object)
		if !ok {
			return nil, notObject(strings.Join(parts[:i+1], "."))
		}
		cur = next
	}
	return cur, nil
}
