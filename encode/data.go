package encode

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vdf-format/vdf/ast"
	"github.com/vdf-format/vdf/kv"
	"github.com/vdf-format/vdf/token"
)

// EncodeData writes obj in Valve layout: quoted keys and strings, bare
// numbers, objects opened and closed on their own lines, and array
// elements written as repeated keys. Reading the output back yields obj,
// except that an array of fewer than two elements reads back as its
// element, or not at all.
func EncodeData(obj *kv.Object, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	bw := bufio.NewWriter(w)
	if err := es.data(bw, obj, 0); err != nil {
		return err
	}
	return bw.Flush()
}

// DataString returns EncodeData output as a string.
func DataString(obj *kv.Object, opts ...EncodeOption) (string, error) {
	var b strings.Builder
	if err := EncodeData(obj, &b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (es *EncState) color(k ast.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func (es *EncState) data(w *bufio.Writer, obj *kv.Object, depth int) error {
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		if err := es.pair(w, k, v, depth); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) pair(w *bufio.Writer, k string, v kv.Value, depth int) error {
	ind := strings.Repeat(es.indent, depth)
	key := es.color(ast.StringKind, KeyColor, token.Quote(k))
	switch x := v.(type) {
	case kv.String:
		_, err := fmt.Fprintf(w, "%s%s%s%s\n", ind, key, es.sep, es.color(ast.StringKind, ValueColor, token.Quote(string(x))))
		return err
	case kv.Number:
		if _, ok := kv.ParseNumber(string(x)); !ok {
			return fmt.Errorf("key %q: %w %q", k, kv.ErrNumber, string(x))
		}
		_, err := fmt.Fprintf(w, "%s%s%s%s\n", ind, key, es.sep, es.color(ast.NumberKind, ValueColor, string(x)))
		return err
	case *kv.Object:
		open := es.color(ast.ObjectKind, SepColor, "{")
		closing := es.color(ast.ObjectKind, SepColor, "}")
		if _, err := fmt.Fprintf(w, "%s%s\n%s%s\n", ind, key, ind, open); err != nil {
			return err
		}
		if err := es.data(w, x, depth+1); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "%s%s\n", ind, closing)
		return err
	case kv.Array:
		for _, e := range x {
			if err := es.pair(w, k, e, depth); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("key %q: %w %T", k, kv.ErrUnsupported, v)
}
