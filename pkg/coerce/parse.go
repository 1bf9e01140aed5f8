package coerce

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInt parses text as a base-10 signed integer, ignoring surrounding
// whitespace.
func ParseInt(s string) (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer literal %q", s)
	}
	return i, nil
}

// ParseFloat parses text as a floating-point number, ignoring surrounding
// whitespace. The spellings inf, infinity, and nan are accepted in any
// case, with an optional sign.
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float literal %q", s)
	}
	return f, nil
}

// Detect classifies a literal the way the REPL and the one-shot commands
// read input: quoted text is a string with the quotes stripped, then
// integer and float parses are tried, then the exact words true and false,
// and anything left is plain text.
func Detect(text string) Value {
	t := strings.TrimSpace(text)

	if n := len(t); n >= 2 {
		if (t[0] == '\'' && t[n-1] == '\'') || (t[0] == '"' && t[n-1] == '"') {
			return StringValue(t[1 : n-1])
		}
	}

	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return FloatValue(f)
	}

	switch t {
	case "true", "false":
		return BoolValue(t == "true")
	}

	return StringValue(t)
}
