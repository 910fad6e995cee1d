package attr

import (
	"fmt"
	"math"
	"strconv"
)

// Value is a typed scalar box. The zero Value is invalid.
type Value struct {
	typ Type
	s   string
	i   int64
	u   uint64
	f   float64
	b   bool
}

// StringValue boxes a string.
func StringValue(s string) Value { return Value{typ: TypeString, s: s} }

// BoolValue boxes a bool.
func BoolValue(b bool) Value { return Value{typ: TypeBool, b: b} }

// IntValue boxes a signed integer under a signed integer type.
func IntValue(t Type, i int64) Value { return Value{typ: t, i: i} }

// UintValue boxes an unsigned integer under an unsigned integer type.
func UintValue(t Type, u uint64) Value { return Value{typ: t, u: u} }

// FloatValue boxes a float64.
func FloatValue(f float64) Value { return Value{typ: TypeFloat64, f: f} }

// Type returns the declared type of the boxed value.
func (v Value) Type() Type { return v.typ }

// Interface returns the boxed value as a plain Go value.
func (v Value) Interface() any {
	switch v.typ {
	case TypeString:
		return v.s
	case TypeBool:
		return v.b
	case TypeInt32, TypeInt64:
		return v.i
	case TypeUint32, TypeUint64:
		return v.u
	case TypeFloat64:
		return v.f
	}
	return nil
}

// String renders the value as text.
func (v Value) String() string {
	switch v.typ {
	case TypeString:
		return v.s
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeInt32, TypeInt64:
		return strconv.FormatInt(v.i, 10)
	case TypeUint32, TypeUint64:
		return strconv.FormatUint(v.u, 10)
	case TypeFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return ""
}

// ParseInto parses a decimal literal into a value of integer type t,
// rejecting out-of-range values.
func ParseInto(t Type, literal string) (Value, error) {
	if t.Signed() {
		i, err := strconv.ParseInt(literal, 10, t.Bits())
		if err != nil {
			return Value{}, fmt.Errorf("value %q does not fit %s: %w", literal, t, err)
		}
		return IntValue(t, i), nil
	}
	u, err := strconv.ParseUint(literal, 10, t.Bits())
	if err != nil {
		return Value{}, fmt.Errorf("value %q does not fit %s: %w", literal, t, err)
	}
	return UintValue(t, u), nil
}

// FromGo converts a plain Go value (as produced by a YAML or JSON
// decoder) into a Value of the declared type t.
func FromGo(t Type, v any) (Value, error) {
	switch t {
	case TypeString:
		if s, ok := v.(string); ok {
			return StringValue(s), nil
		}
		return StringValue(fmt.Sprintf("%v", v)), nil
	case TypeBool:
		if b, ok := v.(bool); ok {
			return BoolValue(b), nil
		}
	case TypeInt32, TypeInt64, TypeUint32, TypeUint64:
		switch n := v.(type) {
		case int:
			return ParseInto(t, strconv.Itoa(n))
		case int64:
			return ParseInto(t, strconv.FormatInt(n, 10))
		case uint64:
			return ParseInto(t, strconv.FormatUint(n, 10))
		case string:
			return ParseInto(t, n)
		case float64:
			if n != math.Trunc(n) {
				return Value{}, fmt.Errorf("value %v would truncate into %s", n, t)
			}
			return ParseInto(t, strconv.FormatFloat(n, 'f', -1, 64))
		}
	case TypeFloat64:
		switch n := v.(type) {
		case float64:
			return FloatValue(n), nil
		case int:
			return FloatValue(float64(n)), nil
		case int64:
			return FloatValue(float64(n)), nil
		}
	}
	return Value{}, fmt.Errorf("cannot use %T value as %s", v, t)
}
