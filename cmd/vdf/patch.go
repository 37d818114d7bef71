package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vdf-format/vdf"
	"github.com/vdf-format/vdf/encode"
	"github.com/vdf-format/vdf/format"
	"github.com/vdf-format/vdf/libdiff"
	"github.com/vdf-format/vdf/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a diff file and a file to which to apply it", cli.ErrUsage)
	}
	d, err := getDiffFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding diff %s: %w", args[0], err)
	}
	if cfg.Reverse {
		d = libdiff.Reverse(d)
	}
	src, err := readFile(cc, args[1])
	if err != nil {
		return err
	}
	switch {
	case cfg.Validate:
		o, err := format.Load(src, cfg.inFormat(args[1]), cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[1], err)
		}
		if !writeValidation(cc.Out, vdf.ValidateDiff(o, d)) {
			return cli.ExitCodeErr(1)
		}
		return nil
	case cfg.Data:
		o, err := format.Load(src, cfg.inFormat(args[1]), cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[1], err)
		}
		res, err := vdf.ApplyToData(o, d)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", args[1], err)
		}
		return format.Write(res, cc.Out, cfg.outFormat(), cfg.encOpts(cc.Out)...)
	}
	out, err := patchText(src, d, cfg.parseOpts())
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if cfg.Show {
		out = libdiff.TextDiff(string(src), out, cfg.colored(cc.Out))
	}
	_, err = io.WriteString(cc.Out, out)
	return err
}

// patchText applies d to the KeyValues text src, keeping its layout.
func patchText(src []byte, d *libdiff.DocumentDiff, opts []parse.ParseOption) (string, error) {
	res, err := parse.Parse(src, opts...)
	if err != nil {
		return "", err
	}
	doc, err := vdf.ApplyToAST(res.AST, d)
	if err != nil {
		return "", err
	}
	return encode.String(doc)
}

func writeValidation(w io.Writer, v vdf.Validation) bool {
	if v.Valid {
		fmt.Fprintln(w, "valid")
		return true
	}
	for _, e := range v.Errors {
		fmt.Fprintln(w, e)
	}
	return false
}

// getDiffFile reads a stored diff, as YAML when the path says so and JSON
// otherwise.
func getDiffFile(cc *cli.Context, path string) (*libdiff.DocumentDiff, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return decodeDiff(d, format.FromPath(path))
}

func decodeDiff(d []byte, f format.Format) (*libdiff.DocumentDiff, error) {
	if f == format.YAMLFormat {
		return libdiff.FromYAML(d)
	}
	res := &libdiff.DocumentDiff{}
	if err := json.Unmarshal(d, res); err != nil {
		return nil, err
	}
	return res, nil
}
