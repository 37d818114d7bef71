package libdiff

import "fmt"

type Op string

const (
	OpAdd     Op = "add"
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
)

func (o Op) Valid() bool {
	switch o {
	case OpAdd, OpRemove, OpReplace:
		return true
	}
	return false
}

func (o *Op) UnmarshalText(d []byte) error {
	op := Op(d)
	if !op.Valid() {
		return fmt.Errorf("unknown diff op %q", d)
	}
	*o = op
	return nil
}

// line prefixes of FormatText
const (
	addPrefix     = "+"
	removePrefix  = "-"
	replacePrefix = "~"
)
