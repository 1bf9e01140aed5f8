package coerce

import (
	"fmt"
	"strings"
)

// ============================================================================
// Kind
// ============================================================================

// Kind identifies one of the four scalar kinds a value can hold.
type Kind int

const (
	// String is arbitrary text.
	String Kind = iota
	// Int is a 64-bit signed integer.
	Int
	// Float is a 64-bit floating-point number.
	Float
	// Bool is a truth value.
	Bool
)

// Kinds returns all kinds in their canonical order.
func Kinds() []Kind {
	return []Kind{String, Int, Float, Bool}
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name to a Kind. Names are matched
// case-insensitively, and "str" is accepted as an alias for "string".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "str":
		return String, nil
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	case "bool":
		return Bool, nil
	default:
		return String, fmt.Errorf("unknown kind %q (valid kinds: string, int, float, bool)", s)
	}
}
