package libdiff

import (
	"github.com/vdf-format/vdf/debug"
	"github.com/vdf-format/vdf/kv"
)

// Diff returns the changes turning source into target. Neither argument is
// modified and the result shares no values with them.
func Diff(source, target *kv.Object) *DocumentDiff {
	d := &DocumentDiff{Changes: []Entry{}}
	diffObject(d, nil, source, target)
	if debug.Diff() {
		debug.Logf("diff: %+v\n", d.Stats())
	}
	return d
}

func diffObject(d *DocumentDiff, prefix []string, from, to *kv.Object) {
	keys := func(k string) []string {
		return append(prefix[:len(prefix):len(prefix)], k)
	}
	for _, k := range from.Keys() {
		path := kv.JoinPath(keys(k)...)
		fv, _ := from.Get(k)
		tv, ok := to.Get(k)
		if !ok {
			d.Changes = append(d.Changes, MakeRemove(path, fv))
			continue
		}
		fo, fok := fv.(*kv.Object)
		tobj, tok := tv.(*kv.Object)
		if fok && tok {
			diffObject(d, keys(k), fo, tobj)
			continue
		}
		if !kv.Equal(fv, tv) {
			d.Changes = append(d.Changes, MakeReplace(path, fv, tv))
		}
	}
	for _, k := range to.Keys() {
		if from.Has(k) {
			continue
		}
		tv, _ := to.Get(k)
		d.Changes = append(d.Changes, MakeAdd(kv.JoinPath(keys(k)...), tv))
	}
}
