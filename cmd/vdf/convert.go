package main

import (
	"fmt"

	"github.com/vdf-format/vdf/format"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: convert takes at most one file", cli.ErrUsage)
	}
	return eachFile(args, func(file string) error {
		o, err := getDataFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		return format.Write(o, cc.Out, cfg.convertFormat(file), cfg.encOpts(cc.Out)...)
	})
}

// convertFormat picks the output format. Without -O, output is the other
// side of KeyValues: JSON for KeyValues input, KeyValues otherwise.
func (cfg *ConvertConfig) convertFormat(file string) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	in := cfg.inFormat(file)
	if in == format.VDFFormat {
		return format.JSONFormat
	}
	return format.VDFFormat
}
