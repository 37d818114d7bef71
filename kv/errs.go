package kv

import "errors"

var (
	ErrUnsupported = errors.New("unsupported value")
	ErrNotObject   = errors.New("not an object")
	ErrNumber      = errors.New("invalid number")
)
