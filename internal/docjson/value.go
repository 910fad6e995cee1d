package docjson

import (
	"fmt"
	"strconv"

	"github.com/flarebyte/seshat-papyrus/internal/attr"
)

// ToValue converts a matched leaf node into a typed attribute value.
// Container and null leaves never convert; integer targets reject
// string-encoded numbers unless lenient is set, and reject float
// literals outright rather than truncating.
func ToValue(n *Node, t attr.Type, lenient bool) (attr.Value, error) {
	if !n.IsScalar() {
		return attr.Value{}, fmt.Errorf("%s node cannot convert to %s", n.KindName(), t)
	}
	kind, literal := n.Scalar()
	if kind == ScalarNull {
		return attr.Value{}, fmt.Errorf("null node has no %s value", t)
	}

	switch t {
	case attr.TypeString:
		return attr.StringValue(literal), nil

	case attr.TypeBool:
		switch kind {
		case ScalarBool:
			b, err := strconv.ParseBool(literal)
			if err != nil {
				return attr.Value{}, fmt.Errorf("bad boolean literal %q", literal)
			}
			return attr.BoolValue(b), nil
		case ScalarString:
			if lenient {
				if b, err := strconv.ParseBool(literal); err == nil {
					return attr.BoolValue(b), nil
				}
			}
		}
		return attr.Value{}, fmt.Errorf("%s node cannot convert to bool", kind)

	case attr.TypeInt32, attr.TypeInt64, attr.TypeUint32, attr.TypeUint64:
		switch kind {
		case ScalarInt:
			return attr.ParseInto(t, literal)
		case ScalarFloat:
			return attr.Value{}, fmt.Errorf("float value %s would truncate into %s", literal, t)
		case ScalarString:
			if lenient {
				return attr.ParseInto(t, literal)
			}
			return attr.Value{}, fmt.Errorf("string-encoded number %q rejected for %s target", literal, t)
		}
		return attr.Value{}, fmt.Errorf("%s node cannot convert to %s", kind, t)

	case attr.TypeFloat64:
		switch kind {
		case ScalarInt, ScalarFloat:
			f, err := strconv.ParseFloat(literal, 64)
			if err != nil {
				return attr.Value{}, fmt.Errorf("bad number literal %q", literal)
			}
			return attr.FloatValue(f), nil
		case ScalarString:
			if lenient {
				if f, err := strconv.ParseFloat(literal, 64); err == nil {
					return attr.FloatValue(f), nil
				}
			}
		}
		return attr.Value{}, fmt.Errorf("%s node cannot convert to float64", kind)
	}

	return attr.Value{}, fmt.Errorf("unsupported target type %s", t)
}
