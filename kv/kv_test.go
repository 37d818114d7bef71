package kv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppendFolds(t *testing.T) {
	o := NewObject()
	o.Append("a", String("1"))
	o.Append("b", String("x"))
	o.Append("a", String("2"))
	o.Append("a", Number("3"))

	got, ok := o.Get("a")
	if !ok {
		t.Fatal("missing a")
	}
	want := Array{String("1"), String("2"), Number("3")}
	if !Equal(got, want) {
		t.Errorf("got %#v want %#v", got, want)
	}
	if diff := cmp.Diff([]string{"a", "b"}, o.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestSetDelete(t *testing.T) {
	o := NewObject().With("a", String("1")).With("b", String("2")).With("c", String("3"))
	o.Set("a", String("x"))
	if diff := cmp.Diff([]string{"a", "b", "c"}, o.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if !o.Delete("b") {
		t.Error("delete b reported absent")
	}
	if o.Delete("b") {
		t.Error("second delete b reported present")
	}
	if diff := cmp.Diff([]string{"a", "c"}, o.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestEqual(t *testing.T) {
	a := NewObject().With("x", Number("1")).With("y", NewObject().With("z", String("q")))
	b := NewObject().With("y", NewObject().With("z", String("q"))).With("x", Number("1.0"))
	if !Equal(a, b) {
		t.Error("expected objects to be equal regardless of key order")
	}
	b.Set("x", String("1"))
	if Equal(a, b) {
		t.Error("string and number compared equal")
	}
	if Equal(Array{String("a"), String("b")}, Array{String("b"), String("a")}) {
		t.Error("array order ignored")
	}
}

func TestClone(t *testing.T) {
	a := NewObject().With("y", NewObject().With("z", String("q")))
	b := a.Clone()
	inner, _ := b.Get("y")
	inner.(*Object).Set("z", String("changed"))
	v, _ := a.GetPath("y.z")
	if v != String("q") {
		t.Errorf("clone shares state: got %v", v)
	}
}

func TestGetPath(t *testing.T) {
	o := NewObject().With("a", NewObject().With("b", NewObject().With("c", Number("7")))).
		With("s", String("leaf"))
	tests := []struct {
		path string
		want Value
		ok   bool
	}{
		{"a.b.c", Number("7"), true},
		{"s", String("leaf"), true},
		{"s.x", nil, false},
		{"a.missing", nil, false},
	}
	for _, tc := range tests {
		got, ok := o.GetPath(tc.path)
		if ok != tc.ok {
			t.Errorf("%s: got ok %v want %v", tc.path, ok, tc.ok)
			continue
		}
		if ok && !Equal(got, tc.want) {
			t.Errorf("%s: got %v want %v", tc.path, got, tc.want)
		}
	}
	if _, ok := o.GetPath(""); ok {
		t.Error("empty path found without an empty key")
	}
	o.Set("", NewObject().With("", String("e")))
	if v, ok := o.GetPath("."); !ok || v != String("e") {
		t.Errorf("got %v %v", v, ok)
	}
}

func TestNumber(t *testing.T) {
	if _, ok := ParseNumber("01"); ok {
		t.Error("01 parsed as number")
	}
	n, ok := ParseNumber("-2.5e3")
	if !ok || !n.IsFloat() || n.Float64() != -2500 {
		t.Errorf("got %v %v", n, ok)
	}
	if Int(42) != Number("42") {
		t.Errorf("got %q", Int(42))
	}
	if Float(0.5) != Number("0.5") {
		t.Errorf("got %q", Float(0.5))
	}
	if !Number("10").Equal(Number("1e1")) {
		t.Error("10 != 1e1")
	}
}
