package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/vdf-format/vdf/format"
	"github.com/vdf-format/vdf/kv"

	"github.com/scott-cotton/cli"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	d, err = decodeText(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	return d, nil
}

var (
	bomUTF16LE = []byte{0xff, 0xfe}
	bomUTF16BE = []byte{0xfe, 0xff}
)

// decodeText converts UTF-16 input with a byte order mark to UTF-8.
// Other input is returned as is, including any UTF-8 byte order mark,
// which the tokenizer keeps as leading whitespace.
func decodeText(d []byte) ([]byte, error) {
	if !bytes.HasPrefix(d, bomUTF16LE) && !bytes.HasPrefix(d, bomUTF16BE) {
		return d, nil
	}
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	res, _, err := transform.Bytes(dec, d)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func getDataFile(cfg *MainConfig, cc *cli.Context, path string) (*kv.Object, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return format.Load(d, cfg.inFormat(path), cfg.parseOpts()...)
}
