package attr

import "fmt"

// Type is the declared scalar type of an attribute.
type Type int

const (
	TypeInvalid Type = iota
	TypeString
	TypeBool
	TypeInt32
	TypeInt64
	TypeUint32
	TypeUint64
	TypeFloat64
)

var typeNames = map[Type]string{
	TypeString:  "string",
	TypeBool:    "bool",
	TypeInt32:   "int32",
	TypeInt64:   "int64",
	TypeUint32:  "uint32",
	TypeUint64:  "uint64",
	TypeFloat64: "float64",
}

// ParseType maps a config type name to a Type.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return TypeInvalid, fmt.Errorf("unknown attribute type %q", name)
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "invalid"
}

// IsInteger reports whether the type is a fixed-width integer.
func (t Type) IsInteger() bool {
	switch t {
	case TypeInt32, TypeInt64, TypeUint32, TypeUint64:
		return true
	}
	return false
}

// Bits returns the width of integer types, 0 otherwise.
func (t Type) Bits() int {
	switch t {
	case TypeInt32, TypeUint32:
		return 32
	case TypeInt64, TypeUint64:
		return 64
	}
	return 0
}

// Signed reports whether an integer type is signed.
func (t Type) Signed() bool {
	return t == TypeInt32 || t == TypeInt64
}
