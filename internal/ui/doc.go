// Package ui provides theme and color support for binhist's stderr output.
// It defines color schemes and provides ANSI escape code functions for
// consistent styling of diagnostics and the bar chart.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between business logic and presentation.
package ui
