package parse

import (
	"errors"
	"fmt"

	"github.com/vdf-format/vdf/token"
)

var (
	ErrParse           = errors.New("parse error")
	ErrUnbalanced      = fmt.Errorf("%w: unbalanced braces", ErrParse)
	ErrUnexpectedEOF   = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrUnexpectedToken = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrDirectiveTarget = fmt.Errorf("%w: directive without target", ErrParse)
)

type ParseErr struct {
	Err error
	Pos token.Pos
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func NewParseErr(e error, p token.Pos) *ParseErr {
	return &ParseErr{Err: e, Pos: p}
}

func unexpected(t *token.Token, want string) error {
	return NewParseErr(fmt.Errorf("%w %s, expected %s", ErrUnexpectedToken, t.Type, want), t.Pos)
}
