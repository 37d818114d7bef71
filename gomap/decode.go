// Package gomap binds KeyValues documents to Go values.
//
// Values pass through the JSON form of the data model, so encoding/json
// struct tags apply. KeyValues files usually quote numbers; fields that
// should read them need the ",string" tag option.
package gomap

import (
	"bytes"
	"encoding/json"

	"github.com/vdf-format/vdf/kv"
	"github.com/vdf-format/vdf/parse"
)

type loadOpts struct {
	parseOpts []parse.ParseOption
	strict    bool
}

type LoadOption func(*loadOpts)

func LoadParseOptions(opts ...parse.ParseOption) LoadOption {
	return func(o *loadOpts) { o.parseOpts = append(o.parseOpts, opts...) }
}

// LoadStrict rejects keys with no matching field.
func LoadStrict(v bool) LoadOption {
	return func(o *loadOpts) { o.strict = v }
}

// DataLoader is implemented by types that decode the data object
// themselves.
type DataLoader interface {
	LoadData(*kv.Object) error
}

// Load parses KeyValues text d and stores the result in p.
func Load(d []byte, p any, opts ...LoadOption) error {
	lo := &loadOpts{}
	for _, f := range opts {
		f(lo)
	}
	res, err := parse.Parse(d, lo.parseOpts...)
	if err != nil {
		return err
	}
	if x, ok := p.(DataLoader); ok {
		return x.LoadData(res.Data)
	}
	return loadData(res.Data, p, lo)
}

// LoadData stores o in p.
func LoadData(o *kv.Object, p any, opts ...LoadOption) error {
	lo := &loadOpts{}
	for _, f := range opts {
		f(lo)
	}
	if x, ok := p.(DataLoader); ok {
		return x.LoadData(o)
	}
	return loadData(o, p, lo)
}

func loadData(o *kv.Object, p any, lo *loadOpts) error {
	d, err := json.Marshal(o)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	if lo.strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(p)
}
