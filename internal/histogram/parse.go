package histogram

import (
	"strconv"
	"strings"
)

// ParseValue parses a base-10 non-negative integer. A single leading '+' is
// accepted; a sign of any other kind, surrounding whitespace, or an empty
// string is a syntax error.
func ParseValue(s string) (uint64, error) {
	digits := strings.TrimPrefix(s, "+")
	if digits == "" || digits[0] == '+' {
		return 0, &strconv.NumError{Func: "ParseValue", Num: s, Err: strconv.ErrSyntax}
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, &strconv.NumError{Func: "ParseValue", Num: s, Err: err.(*strconv.NumError).Err}
	}
	return v, nil
}
