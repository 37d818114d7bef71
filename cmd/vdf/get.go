package main

import (
	"fmt"
	"io"

	"github.com/vdf-format/vdf/format"
	"github.com/vdf-format/vdf/kv"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dot separated path", cli.ErrUsage)
	}
	path := args[0]
	return eachFile(args[1:], func(file string) error {
		o, err := getDataFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		return getPath(cc.Out, o, path, cfg.outFormat())
	})
}

// getPath writes the value at path: scalars as bare lines, array elements
// one after another and objects in format f.
func getPath(w io.Writer, o *kv.Object, path string, f format.Format) error {
	v, ok := o.GetPath(path)
	if !ok {
		return fmt.Errorf("path %q not found", path)
	}
	return writeValue(w, v, f)
}

func writeValue(w io.Writer, v kv.Value, f format.Format) error {
	switch x := v.(type) {
	case kv.String:
		_, err := fmt.Fprintln(w, string(x))
		return err
	case kv.Number:
		_, err := fmt.Fprintln(w, string(x))
		return err
	case kv.Array:
		for _, e := range x {
			if err := writeValue(w, e, f); err != nil {
				return err
			}
		}
		return nil
	case *kv.Object:
		return format.Write(x, w, f)
	}
	return fmt.Errorf("%w: %T", kv.ErrUnsupported, v)
}
