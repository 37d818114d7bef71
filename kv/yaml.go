package kv

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"
)

// MarshalYAML renders o as an ordered mapping.
func (o *Object) MarshalYAML() (any, error) {
	return YAMLValue(o)
}

// YAMLValue converts v to a form goccy/go-yaml marshals in order.
func YAMLValue(v Value) (any, error) {
	switch x := v.(type) {
	case String:
		return string(x), nil
	case Number:
		if i, ok := x.Int64(); ok {
			return i, nil
		}
		if _, ok := ParseNumber(string(x)); !ok {
			return nil, fmt.Errorf("%w %q", ErrNumber, string(x))
		}
		return x.Float64(), nil
	case Array:
		res := make([]any, len(x))
		for i, e := range x {
			y, err := YAMLValue(e)
			if err != nil {
				return nil, err
			}
			res[i] = y
		}
		return res, nil
	case *Object:
		res := make(yaml.MapSlice, 0, x.Len())
		for _, k := range x.keys {
			y, err := YAMLValue(x.vals[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			res = append(res, yaml.MapItem{Key: k, Value: y})
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w %T", ErrUnsupported, v)
}

// ToYAML encodes o as a YAML document.
func ToYAML(o *Object) ([]byte, error) {
	y, err := YAMLValue(o)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(y)
}

// FromYAML decodes a YAML mapping, keeping key order.
func FromYAML(d []byte) (*Object, error) {
	var ms yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(d, &ms, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromMapSlice(ms)
}

func fromMapSlice(ms yaml.MapSlice) (*Object, error) {
	obj := NewObject()
	for _, item := range ms {
		k := fmt.Sprint(item.Key)
		v, err := FromYAMLValue(item.Value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		obj.Set(k, v)
	}
	return obj, nil
}

// FromYAMLValue converts a value decoded with yaml.UseOrderedMap.
func FromYAMLValue(y any) (Value, error) {
	switch x := y.(type) {
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint64:
		return Number(strconv.FormatUint(x, 10)), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w %v", ErrNumber, x)
		}
		return Float(x), nil
	case yaml.MapSlice:
		return fromMapSlice(x)
	case []any:
		arr := make(Array, len(x))
		for i, e := range x {
			v, err := FromYAMLValue(e)
			if err != nil {
				return nil, err
			}
			arr[i] = v
		}
		return arr, nil
	}
	return nil, fmt.Errorf("%w: yaml %T", ErrUnsupported, y)
}
