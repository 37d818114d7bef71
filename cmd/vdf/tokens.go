package main

import (
	"io"

	"github.com/vdf-format/vdf/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		cfg.Tokens.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachFile(args, func(file string) error {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		return printTokens(cc.Out, file, d, cfg.tokenOpts())
	})
}

func (cfg *TokensConfig) tokenOpts() []token.TokenOpt {
	return []token.TokenOpt{
		token.TokenComments(cfg.Trivia),
		token.TokenWhitespace(cfg.Trivia),
		token.TokenConditionals(!cfg.NoConditionals),
		token.TokenIncludes(!cfg.NoIncludes),
		token.TokenEscapes(!cfg.NoEscapes),
	}
}

func printTokens(w io.Writer, name string, d []byte, opts []token.TokenOpt) error {
	toks, err := token.Tokenize(nil, d, opts...)
	if err != nil {
		return err
	}
	token.PrintTokens(w, toks, name)
	return nil
}
