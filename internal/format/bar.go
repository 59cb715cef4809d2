package format

import (
	"math"
	"strings"
)

// ProgressBar generates a string representing a textual bar.
//
// Parameters:
//   - progress: The normalized fill ratio (0.0 to 1.0); clamped.
//   - length: The total character width of the bar.
//
// Returns:
//   - string: A string of length runes, filled with '█' then '░'.
func ProgressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 || math.IsNaN(progress) {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
