package libdiff

import "github.com/vdf-format/vdf/kv"

func MakeAdd(path string, v kv.Value) Entry {
	return Entry{Path: path, Op: OpAdd, NewValue: kv.Clone(v)}
}

func MakeRemove(path string, v kv.Value) Entry {
	return Entry{Path: path, Op: OpRemove, OldValue: kv.Clone(v)}
}

func MakeReplace(path string, from, to kv.Value) Entry {
	return Entry{Path: path, Op: OpReplace, OldValue: kv.Clone(from), NewValue: kv.Clone(to)}
}
