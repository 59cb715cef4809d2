package format

import (
	"strconv"
	"strings"
)

// FormatNumberString inserts thousands separators into a decimal string,
// keeping a leading minus sign in place.
//
// Parameters:
//   - s: A string of decimal digits, optionally prefixed with '-'.
//
// Returns:
//   - string: The digits grouped by three with commas.
func FormatNumberString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.Grow(len(sign) + len(s) + len(s)/3)
	b.WriteString(sign)
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatCount formats an unsigned count with thousands separators.
func FormatCount(n uint64) string {
	return FormatNumberString(strconv.FormatUint(n, 10))
}
