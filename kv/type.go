package kv

import "fmt"

type Type int

const (
	StringType Type = iota
	NumberType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		NumberType: "Number",
		ObjectType: "Object",
		ArrayType:  "Array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String": StringType,
		"Number": NumberType,
		"Object": ObjectType,
		"Array":  ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func (t Type) IsLeaf() bool {
	return t == StringType || t == NumberType
}

// TypeOf returns the type of v. It panics on nil.
func TypeOf(v Value) Type {
	switch v.(type) {
	case String:
		return StringType
	case Number:
		return NumberType
	case *Object:
		return ObjectType
	case Array:
		return ArrayType
	}
	panic(fmt.Sprintf("kv: no type for %T", v))
}
