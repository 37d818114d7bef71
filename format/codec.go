package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vdf-format/vdf/encode"
	"github.com/vdf-format/vdf/kv"
	"github.com/vdf-format/vdf/parse"
)

// Load decodes a data object from d in format f.
func Load(d []byte, f Format, opts ...parse.ParseOption) (*kv.Object, error) {
	switch f {
	case VDFFormat:
		res, err := parse.Parse(d, opts...)
		if err != nil {
			return nil, err
		}
		return res.Data, nil
	case JSONFormat:
		o := kv.NewObject()
		if err := json.Unmarshal(d, o); err != nil {
			return nil, err
		}
		return o, nil
	case YAMLFormat:
		return kv.FromYAML(d)
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
}

// Write encodes o to w in format f. Encode options apply to KeyValues
// output only.
func Write(o *kv.Object, w io.Writer, f Format, opts ...encode.EncodeOption) error {
	switch f {
	case VDFFormat:
		return encode.EncodeData(o, w, opts...)
	case JSONFormat:
		d, err := json.MarshalIndent(o, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case YAMLFormat:
		d, err := kv.ToYAML(o)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	return fmt.Errorf("%w: %d", ErrBadFormat, f)
}
