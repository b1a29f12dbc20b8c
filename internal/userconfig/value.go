package userconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

type Kind int

const (
	String Kind = iota + 1
	Bool
	Int
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Bool:
		return "bool"
	case Int:
		return "int"
	default:
		return "unknown kind"
	}
}

func (k Kind) HumanString() string {
	switch k {
	case String:
		return "a string"
	case Bool:
		return "a boolean (true/false)"
	case Int:
		return "an integer"
	default:
		return "an unknown kind"
	}
}

type Type struct {
	Kind    Kind
	Default *any  // nil means no default
	Oneof   []any // nil means no restrictions
}

type Value struct {
	Val  any
	Type Type
}

func (v Value) String() string {
	return RenderValue(v.Val)
}

// ParseAndValidate parses val as the kind of t and checks it against
// the allowed values.
func (t Type) ParseAndValidate(val string) (any, error) {
	parsed, err := t.Kind.parseValue(val)
	if err != nil {
		return nil, errors.Wrapf(err, "value %q is not %s", val, t.Kind.HumanString())
	} else if err := t.validate(parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

func (t Type) validate(val any) error {
	if val == nil {
		return errors.New("value cannot be nil")
	}
	if k, ok := kindOf(val); !ok || k != t.Kind {
		return errors.Errorf("value %v is not %s", val, t.Kind.HumanString())
	}
	if len(t.Oneof) == 0 {
		return nil
	}
	for _, v := range t.Oneof {
		if val == v {
			return nil
		}
	}
	return errors.Errorf("value %q is not one of: %s", RenderValue(val), RenderOneof(t.Oneof))
}

func RenderValue(v any) string {
	return fmt.Sprintf("%v", v)
}

// RenderOneof renders the values as "a, b, or c".
func RenderOneof(oneof []any) string {
	var s strings.Builder
	for i, v := range oneof {
		if i > 0 {
			switch {
			case len(oneof) == 2:
				s.WriteString(" or ")
			case i == len(oneof)-1:
				s.WriteString(", or ")
			default:
				s.WriteString(", ")
			}
		}
		s.WriteString(RenderValue(v))
	}
	return s.String()
}

func (k Kind) parseValue(value string) (any, error) {
	switch k {
	case String:
		return value, nil
	case Bool:
		return strconv.ParseBool(value)
	case Int:
		return strconv.Atoi(value)
	default:
		return nil, fmt.Errorf("unknown kind %v", k)
	}
}

func kindOf(val any) (k Kind, ok bool) {
	switch val.(type) {
	case string:
		return String, true
	case bool:
		return Bool, true
	case int:
		return Int, true
	default:
		return 0, false
	}
}
