package main

import (
	"fmt"
	"io"
	"os"

	"github.com/vdf-format/vdf/encode"
	"github.com/vdf-format/vdf/format"
	"github.com/vdf-format/vdf/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	NoConditionals bool `cli:"name=nocond desc='read [$COND] as plain strings'"`
	NoIncludes     bool `cli:"name=noinc desc='read #base and #include as plain strings'"`
	NoEscapes      bool `cli:"name=noesc desc='do not interpret backslash escapes'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) shorthand() (format.Format, bool) {
	switch {
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	}
	return format.VDFFormat, false
}

// inFormat returns the input format for path, preferring -I, then -j/-y,
// then the file suffix.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.shorthand(); ok {
		return f
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	f, _ := cfg.shorthand()
	return f
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseConditionals(!cfg.NoConditionals),
		parse.ParseIncludes(!cfg.NoIncludes),
		parse.ParseEscapes(!cfg.NoEscapes),
	}
}

func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.colored(w) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	Strip bool `cli:"name=s desc='drop comments and layout'"`
	View  *cli.Command
}

func (cfg *ViewConfig) parseOpts() []parse.ParseOption {
	return append(cfg.MainConfig.parseOpts(),
		parse.ParseComments(!cfg.Strip),
		parse.ParseWhitespace(!cfg.Strip))
}

type FmtConfig struct {
	*MainConfig

	Diff bool `cli:"name=d desc='print a diff against the input instead of the result'"`
	Fmt  *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Trivia bool `cli:"name=t aliases=trivia desc='include whitespace and comments'"`
	Tokens *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool   `cli:"name=r desc='reverse the diff'"`
	Format  string `cli:"name=f desc='output: text, unified, json, yaml or jsonpatch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Reverse  bool `cli:"name=r desc='apply diff reversed'"`
	Data     bool `cli:"name=data desc='apply to data and print canonically'"`
	Validate bool `cli:"name=validate desc='validate the diff against the file and stop'"`
	Show     bool `cli:"name=show desc='print a diff of the text before and after'"`

	Patch *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}
