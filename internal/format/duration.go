// Package format holds small presentation helpers shared by the CLI layer:
// durations, grouped counts and text bars.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for the run summary.
// It shows microseconds below a millisecond, milliseconds below a second,
// and the duration rounded to the millisecond otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}
