package main

import (
	"io"

	"github.com/vdf-format/vdf/encode"
	"github.com/vdf-format/vdf/format"
	"github.com/vdf-format/vdf/libdiff"
	"github.com/vdf-format/vdf/parse"

	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachFile(args, func(file string) error {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		return fmtBytes(cc.Out, d, cfg.inFormat(file), cfg.parseOpts(), cfg.Diff, cfg.colored(cc.Out))
	})
}

// fmtBytes writes the canonical KeyValues form of d, or with showDiff a
// line diff from d to that form.
func fmtBytes(w io.Writer, d []byte, f format.Format, pOpts []parse.ParseOption, showDiff, colored bool) error {
	o, err := format.Load(d, f, pOpts...)
	if err != nil {
		return err
	}
	out, err := encode.DataString(o)
	if err != nil {
		return err
	}
	if showDiff {
		out = libdiff.TextDiff(string(d), out, colored)
	}
	_, err = io.WriteString(w, out)
	return err
}
