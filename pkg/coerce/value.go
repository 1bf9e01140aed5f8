package coerce

import "fmt"

// Value is an immutable scalar tagged with its kind. The zero value is the
// empty string.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

// StringValue returns a string-kinded value.
func StringValue(s string) Value {
	return Value{kind: String, s: s}
}

// IntValue returns an int-kinded value.
func IntValue(i int64) Value {
	return Value{kind: Int, i: i}
}

// FloatValue returns a float-kinded value.
func FloatValue(f float64) Value {
	return Value{kind: Float, f: f}
}

// BoolValue returns a bool-kinded value.
func BoolValue(b bool) Value {
	return Value{kind: Bool, b: b}
}

// Kind returns the kind tag.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload, or "" for other kinds.
func (v Value) Str() string { return v.s }

// Int returns the integer payload, or 0 for other kinds.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload, or 0 for other kinds.
func (v Value) Float() float64 { return v.f }

// Bool returns the bool payload, or false for other kinds.
func (v Value) Bool() bool { return v.b }

// Text renders the value as it appears in a conversion report.
func (v Value) Text() string {
	switch v.kind {
	case Int:
		return FormatInt(v.i)
	case Float:
		return FormatFloat(v.f)
	case Bool:
		return FormatBool(v.b)
	default:
		return v.s
	}
}

// To converts the value to the target kind. Identity conversions return
// the receiver unchanged. Only string to int, string to float, and float
// to int can fail.
func (v Value) To(target Kind) (Value, error) {
	if target == v.kind {
		return v, nil
	}

	switch v.kind {
	case String:
		switch target {
		case Int:
			i, err := ParseInt(v.s)
			if err != nil {
				return Value{}, err
			}
			return IntValue(i), nil
		case Float:
			f, err := ParseFloat(v.s)
			if err != nil {
				return Value{}, err
			}
			return FloatValue(f), nil
		case Bool:
			return BoolValue(StringTruth(v.s)), nil
		}

	case Int:
		switch target {
		case String:
			return StringValue(FormatInt(v.i)), nil
		case Float:
			return FloatValue(float64(v.i)), nil
		case Bool:
			return BoolValue(IntTruth(v.i)), nil
		}

	case Float:
		switch target {
		case String:
			return StringValue(FormatFloat(v.f)), nil
		case Int:
			i, err := Truncate(v.f)
			if err != nil {
				return Value{}, err
			}
			return IntValue(i), nil
		case Bool:
			return BoolValue(FloatTruth(v.f)), nil
		}

	case Bool:
		switch target {
		case String:
			return StringValue(FormatBool(v.b)), nil
		case Int:
			if v.b {
				return IntValue(1), nil
			}
			return IntValue(0), nil
		case Float:
			if v.b {
				return FloatValue(1), nil
			}
			return FloatValue(0), nil
		}
	}

	return Value{}, fmt.Errorf("cannot convert %s to %s", v.kind, target)
}
