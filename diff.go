package vdf

import (
	"fmt"

	"github.com/vdf-format/vdf/kv"
	"github.com/vdf-format/vdf/libdiff"
)

// GenerateDataDiff returns the changes turning source into target.
func GenerateDataDiff(source, target *kv.Object) *libdiff.DocumentDiff {
	return libdiff.Diff(source, target)
}

type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateDiff checks diff against source without applying it: every
// entry must have a known op, add and replace entries must
// carry a new value, and the paths of remove and replace entries must
// exist in source.
func ValidateDiff(source *kv.Object, diff *libdiff.DocumentDiff) Validation {
	res := Validation{Errors: []string{}}
	fail := func(i int, e *libdiff.Entry, msg string) {
		res.Errors = append(res.Errors, fmt.Sprintf("change %d: %s %q: %s", i, e.Op, e.Path, msg))
	}
	for i := range diff.Changes {
		e := &diff.Changes[i]
		switch e.Op {
		case libdiff.OpAdd:
			if e.NewValue == nil {
				fail(i, e, "missing new value")
			}
		case libdiff.OpReplace:
			if e.NewValue == nil {
				fail(i, e, "missing new value")
			}
			if _, ok := source.GetPath(e.Path); !ok {
				fail(i, e, "path does not exist")
			}
		case libdiff.OpRemove:
			if _, ok := source.GetPath(e.Path); !ok {
				fail(i, e, "path does not exist")
			}
		default:
			fail(i, e, "unknown op")
		}
	}
	res.Valid = len(res.Errors) == 0
	return res
}
