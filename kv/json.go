package kv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

func (o *Object) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kd, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		vd, err := MarshalValue(o.vals[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Object) UnmarshalJSON(d []byte) error {
	v, err := UnmarshalValue(d)
	if err != nil {
		return err
	}
	obj, ok := v.(*Object)
	if !ok {
		return fmt.Errorf("%w: got %s", ErrNotObject, TypeOf(v))
	}
	*o = *obj
	return nil
}

// MarshalValue encodes v as JSON. Numbers are written as their literal.
func MarshalValue(v Value) ([]byte, error) {
	switch x := v.(type) {
	case String:
		return json.Marshal(string(x))
	case Number:
		if _, ok := ParseNumber(string(x)); !ok {
			return nil, fmt.Errorf("%w %q", ErrNumber, string(x))
		}
		return []byte(x), nil
	case *Object:
		return x.MarshalJSON()
	case Array:
		buf := &bytes.Buffer{}
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := MarshalValue(e)
			if err != nil {
				return nil, err
			}
			buf.Write(d)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w %T", ErrUnsupported, v)
}

// UnmarshalValue decodes a single JSON value. Booleans and null have no
// KeyValues counterpart and are rejected.
func UnmarshalValue(d []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after json value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case string:
		return String(t), nil
	case json.Number:
		n, ok := ParseNumber(t.String())
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrNumber, t.String())
		}
		return n, nil
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				ktok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				k, _ := ktok.(string)
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(k, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := Array{}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
	}
	return nil, fmt.Errorf("%w: json %v", ErrUnsupported, tok)
}
