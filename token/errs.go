package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedChar   = errors.New("unexpected character")
	ErrUnterminated     = errors.New("unterminated")
	ErrTooLong          = errors.New("token exceeds maximum length")
	ErrUnknownDirective = errors.New("unknown directive")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(r rune, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %q", ErrUnexpectedChar, r), p)
}

func UnterminatedErr(what string, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnterminated, what), p)
}

func TooLongErr(p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w (%d)", ErrTooLong, MaxTokenLength), p)
}
