package libdiff

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/vdf-format/vdf/kv"
)

type patchOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// JSONPointer converts a dot joined key path to an RFC 6901 pointer.
func JSONPointer(path string) string {
	var sb strings.Builder
	for _, k := range kv.SplitPath(path) {
		k = strings.ReplaceAll(k, "~", "~0")
		k = strings.ReplaceAll(k, "/", "~1")
		sb.WriteByte('/')
		sb.WriteString(k)
	}
	return sb.String()
}

// JSONPatch exports d as an RFC 6902 patch document.
func (d *DocumentDiff) JSONPatch() ([]byte, error) {
	ops := make([]patchOp, 0, len(d.Changes))
	for i := range d.Changes {
		e := &d.Changes[i]
		op := patchOp{Op: string(e.Op), Path: JSONPointer(e.Path)}
		switch e.Op {
		case OpAdd, OpReplace:
			if e.NewValue == nil {
				return nil, fmt.Errorf("%s %s: missing new value", e.Op, e.Path)
			}
			v, err := kv.MarshalValue(e.NewValue)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", e.Op, e.Path, err)
			}
			op.Value = v
		case OpRemove:
		default:
			return nil, fmt.Errorf("unknown diff op %q at %s", e.Op, e.Path)
		}
		ops = append(ops, op)
	}
	return json.Marshal(ops)
}

// ApplyJSONPatch applies an RFC 6902 patch to obj through its JSON form.
// Key order of the result follows the JSON encoder, not obj.
func ApplyJSONPatch(obj *kv.Object, patch []byte) (*kv.Object, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	doc, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, err
	}
	res := kv.NewObject()
	if err := json.Unmarshal(out, res); err != nil {
		return nil, err
	}
	return res, nil
}
