package main

import (
	"fmt"
	"io"

	"github.com/vdf-format/vdf/encode"
	"github.com/vdf-format/vdf/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachFile(args, func(file string) error {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		return viewBytes(cc.Out, d, cfg.parseOpts(), cfg.encOpts(cc.Out))
	})
}

func viewBytes(w io.Writer, d []byte, pOpts []parse.ParseOption, eOpts []encode.EncodeOption) error {
	res, err := parse.Parse(d, pOpts...)
	if err != nil {
		return err
	}
	if err := encode.Encode(res.AST, w, eOpts...); err != nil {
		return fmt.Errorf("error encoding: %w", err)
	}
	return nil
}

// eachFile runs f on each file, or on stdin ("-") when files is empty.
func eachFile(files []string, f func(string) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := f(file); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
