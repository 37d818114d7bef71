package gomap

import (
	"bytes"
	"encoding/json"

	"github.com/vdf-format/vdf/encode"
	"github.com/vdf-format/vdf/kv"
)

// FromGo converts v to a data object. v must marshal to a JSON object
// without booleans or nulls.
func FromGo(v any) (*kv.Object, error) {
	if o, ok := v.(*kv.Object); ok {
		return o.Clone(), nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	o := kv.NewObject()
	if err := json.Unmarshal(d, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Marshal returns v as KeyValues text.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	o, err := FromGo(v)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeData(o, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
