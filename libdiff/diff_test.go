package libdiff

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vdf-format/vdf/kv"
)

func obj(t *testing.T, s string) *kv.Object {
	t.Helper()
	o := kv.NewObject()
	if err := json.Unmarshal([]byte(s), o); err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	return o
}

func summary(d *DocumentDiff) []string {
	res := []string{}
	for _, e := range d.Changes {
		res = append(res, string(e.Op)+" "+e.Path)
	}
	return res
}

func TestDiff(t *testing.T) {
	tests := []struct {
		from, to string
		want     []string
	}{
		{`{"a":1,"b":2}`, `{"a":1,"c":3}`, []string{"remove b", "add c"}},
		{`{"a":1}`, `{"a":1}`, []string{}},
		{`{"a":1}`, `{"a":1.0}`, []string{}},
		{`{"a":"1"}`, `{"a":1}`, []string{"replace a"}},
		{`{"o":{"x":1,"y":2}}`, `{"o":{"x":1,"y":3,"z":4}}`, []string{"replace o.y", "add o.z"}},
		{`{"o":{"x":1}}`, `{"o":"flat"}`, []string{"replace o"}},
		{`{"r":["a","b"]}`, `{"r":["a","c"]}`, []string{"replace r"}},
		{`{"x":1,"y":2,"z":3}`, `{"z":3,"w":0,"x":5}`, []string{"replace x", "remove y", "add w"}},
	}
	for _, tc := range tests {
		d := Diff(obj(t, tc.from), obj(t, tc.to))
		if diff := cmp.Diff(tc.want, summary(d)); diff != "" {
			t.Errorf("%s -> %s (-want +got):\n%s", tc.from, tc.to, diff)
		}
	}
}

func TestDiffStats(t *testing.T) {
	a := obj(t, `{"a":1,"b":2,"o":{"p":1,"q":2}}`)
	b := obj(t, `{"a":2,"c":3,"o":{"q":2,"r":1},"d":{}}`)
	ab := Diff(a, b).Stats()
	ba := GetStats(Diff(b, a))
	want := Stats{Total: 6, Added: 3, Removed: 2, Modified: 1}
	if ab != want {
		t.Errorf("got %+v want %+v", ab, want)
	}
	if ab.Added != ba.Removed || ab.Removed != ba.Added || ab.Modified != ba.Modified {
		t.Errorf("asymmetric stats %+v %+v", ab, ba)
	}
}

func TestDiffValues(t *testing.T) {
	a := obj(t, `{"o":{"x":"1"}}`)
	b := obj(t, `{"o":{"x":"2"}}`)
	d := Diff(a, b)
	if len(d.Changes) != 1 {
		t.Fatalf("got %v", summary(d))
	}
	e := d.Changes[0]
	if e.OldValue != kv.String("1") || e.NewValue != kv.String("2") {
		t.Errorf("got %+v", e)
	}
}

func TestReverse(t *testing.T) {
	a := obj(t, `{"a":1,"b":2}`)
	b := obj(t, `{"a":3,"c":{"d":"e"}}`)
	r := Reverse(Diff(a, b))
	want := Diff(b, a)
	if diff := cmp.Diff([]string{"remove c", "add b", "replace a"}, summary(r)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if r.Stats() != want.Stats() {
		t.Errorf("got %+v want %+v", r.Stats(), want.Stats())
	}
	if r.Changes[2].NewValue != kv.Number("1") {
		t.Errorf("got %+v", r.Changes[2])
	}
}

func TestFormatText(t *testing.T) {
	d := Diff(obj(t, `{"a":1,"b":"x","c":{"d":2}}`), obj(t, `{"a":2,"c":{"d":2},"e":["p","q"]}`))
	got := FormatText(d, false)
	want := strings.Join([]string{
		`~ a: 1 -> 2`,
		`- b: "x"`,
		`+ e: ["p","q"]`,
		``,
	}, "\n")
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestFormatTextColored(t *testing.T) {
	d := &DocumentDiff{Changes: []Entry{MakeRemove("b", kv.String("x"))}}
	got := FormatText(d, true)
	want := "\x1b[31m- b: \"x\"\x1b[0m\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got := TextDiff("a\n", "b\n", true); !strings.Contains(got, "\x1b[32m+b\x1b[0m\n") {
		t.Errorf("got %q", got)
	}
}

func TestFormatUnified(t *testing.T) {
	d := &DocumentDiff{Changes: []Entry{
		MakeReplace("o.k", kv.String("old"), kv.Number("2")),
		MakeAdd("n", kv.NewObject().With("x", kv.String("y"))),
	}}
	got := FormatUnified(d, false)
	want := strings.Join([]string{
		`@@ o.k @@`,
		`-"k"	"old"`,
		`+"k"	2`,
		`@@ n @@`,
		`+"n"`,
		`+{`,
		`+	"x"	"y"`,
		`+}`,
		``,
	}, "\n")
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestTextDiff(t *testing.T) {
	if got := TextDiff("a\nb\n", "a\nb\n", false); got != "" {
		t.Errorf("got %q", got)
	}
	got := TextDiff("a\nb\nc\n", "a\nB\nc\n", false)
	want := " a\n-b\n+B\n c\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
