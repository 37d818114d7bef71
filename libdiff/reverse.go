package libdiff

// Reverse returns the diff undoing d: entries in reverse order, adds and
// removes swapped, and replacements with their values exchanged.
func Reverse(d *DocumentDiff) *DocumentDiff {
	res := &DocumentDiff{Changes: make([]Entry, len(d.Changes))}
	n := len(d.Changes)
	for i, e := range d.Changes {
		r := Entry{Path: e.Path, Op: e.Op, OldValue: e.NewValue, NewValue: e.OldValue}
		switch e.Op {
		case OpAdd:
			r.Op = OpRemove
		case OpRemove:
			r.Op = OpAdd
		}
		res.Changes[n-1-i] = r
	}
	return res
}
