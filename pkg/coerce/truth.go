package coerce

import "strings"

// StringTruth reports whether text spells the word "true", compared
// case-insensitively. Every other string is false, "false" and "" included.
func StringTruth(s string) bool {
	return strings.ToLower(s) == "true"
}

// IntTruth reports whether an integer is truthy: any nonzero value is true.
func IntTruth(i int64) bool {
	return i != 0
}

// FloatTruth reports whether a float is truthy: any nonzero value is true.
// NaN is truthy; negative zero is not.
func FloatTruth(f float64) bool {
	// NaN != 0 holds, and -0.0 == 0 holds, so a single comparison covers
	// both edge cases.
	return f != 0
}
