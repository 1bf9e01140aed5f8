package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatInt renders an integer in base 10.
func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// FormatBool renders a truth value as the lowercase word true or false.
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// FormatFloat renders a float with the shortest digit string that parses
// back to the same value. Whole numbers keep a trailing ".0", and the
// rendering switches to d[.ddd]e±dd exponent notation once the decimal
// point would sit past position 16 or before position -3.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	// Shortest round-trip digits in normalized d[.ddd]e±dd form.
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mant, expPart, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expPart)

	neg := strings.HasPrefix(mant, "-")
	digits := strings.Replace(strings.TrimPrefix(mant, "-"), ".", "", 1)

	// point is the decimal exponent: how many of the digits sit left of
	// the decimal point in fixed notation.
	point := exp + 1

	if point > 16 || point <= -4 {
		// The normalized form already has a signed two-digit exponent and
		// no trailing ".0" on a bare mantissa digit.
		return sci
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	switch {
	case point <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -point))
		b.WriteString(digits)
	case point >= len(digits):
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", point-len(digits)))
		b.WriteString(".0")
	default:
		b.WriteString(digits[:point])
		b.WriteByte('.')
		b.WriteString(digits[point:])
	}
	return b.String()
}

// Truncate drops the fractional part of a float, moving toward zero.
// NaN, infinities, and values whose integral part does not fit in an
// int64 are errors.
func Truncate(f float64) (int64, error) {
	if math.IsNaN(f) {
		return 0, fmt.Errorf("cannot convert nan to integer")
	}
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot convert infinity to integer")
	}

	t := math.Trunc(f)

	// 2^63 is exactly representable as a float64; int64 values stop one
	// short of it.
	const limit = float64(1 << 63)
	if t >= limit || t < -limit {
		return 0, fmt.Errorf("float %s overflows int64", FormatFloat(f))
	}
	return int64(t), nil
}
