package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vdf-format/vdf"
	"github.com/vdf-format/vdf/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDataFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDataFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d := vdf.GenerateDataDiff(a, b)
	if cfg.Reverse {
		d = libdiff.Reverse(d)
	}
	if d.Empty() {
		return nil
	}
	if err := writeDiff(cc.Out, d, cfg.Format, cfg.colored(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeDiff(w io.Writer, d *libdiff.DocumentDiff, f string, colored bool) error {
	var (
		out []byte
		err error
	)
	switch f {
	case "", "text":
		out = []byte(libdiff.FormatText(d, colored))
	case "unified", "u":
		out = []byte(libdiff.FormatUnified(d, colored))
	case "json", "j":
		out, err = json.MarshalIndent(d, "", "  ")
		out = append(out, '\n')
	case "yaml", "y":
		out, err = libdiff.ToYAML(d)
	case "jsonpatch":
		out, err = d.JSONPatch()
		out = append(out, '\n')
	default:
		return fmt.Errorf("%w: unknown diff format %q", cli.ErrUsage, f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
