package vdf

import (
	"errors"
	"fmt"

	"github.com/vdf-format/vdf/libdiff"
)

var (
	ErrApply        = errors.New("apply error")
	ErrKeyNotFound  = fmt.Errorf("%w: key not found", ErrApply)
	ErrNotObject    = fmt.Errorf("%w: cannot navigate path", ErrApply)
	ErrBadOp        = fmt.Errorf("%w: unknown op", ErrApply)
	ErrMissingValue = fmt.Errorf("%w: missing new value", ErrApply)
)

// ApplyErr reports the diff entry that could not be applied.
type ApplyErr struct {
	Op   libdiff.Op
	Path string
	Err  error
}

func (e *ApplyErr) Unwrap() error {
	return e.Err
}

func (e *ApplyErr) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Op, e.Path, e.Err.Error())
}

func applyErr(e *libdiff.Entry, err error) error {
	return &ApplyErr{Op: e.Op, Path: e.Path, Err: err}
}

func notObject(path string) error {
	return fmt.Errorf("%w: %s is not an object", ErrNotObject, path)
}
