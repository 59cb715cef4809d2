package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for terminal output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Error indicates failures or critical issues.
	Error string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:  "dark",
		Error: "\033[38;5;196m", // Red
		Reset: "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color is provided.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ChartTheme defines lipgloss-compatible colors for the bar chart.
type ChartTheme struct {
	Label lipgloss.TerminalColor
	Bar   lipgloss.TerminalColor
	Count lipgloss.TerminalColor
}

var (
	// DarkChartTheme is the default chart palette.
	DarkChartTheme = ChartTheme{
		Label: lipgloss.Color("#E0E0E0"),
		Bar:   lipgloss.Color("#FF8C00"),
		Count: lipgloss.Color("#4488FF"),
	}

	// NoColorChartTheme renders the chart with the terminal's default colors.
	NoColorChartTheme = ChartTheme{
		Label: lipgloss.NoColor{},
		Bar:   lipgloss.NoColor{},
		Count: lipgloss.NoColor{},
	}
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// GetCurrentChartTheme returns the chart palette matching the active theme.
func GetCurrentChartTheme() ChartTheme {
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return NoColorChartTheme
	}
	return DarkChartTheme
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/).
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}

// ColorsEnabled reports whether the active theme emits escape codes.
func ColorsEnabled() bool {
	return GetCurrentTheme().Name != NoColorTheme.Name
}

// ColorRed returns the error color of the active theme.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorReset returns the reset escape of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }
