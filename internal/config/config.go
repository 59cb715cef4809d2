// Package config parses the binhist command line into an AppConfig.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	apperrors "github.com/agbru/binhist/internal/errors"
	"github.com/agbru/binhist/internal/histogram"
)

// Positional argument names, in the order they are expected.
const (
	ArgBins = "nbins"
	ArgMin  = "min"
	ArgMax  = "max"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Bins is the number of histogram bins.
	Bins int
	// Min and Max bound the binned value range.
	Min uint64
	Max uint64

	// Verbose enables debug-level diagnostics on stderr.
	Verbose bool
	// Progress shows a spinner with the running value count on stderr while
	// reading input, when stderr is a terminal.
	Progress bool
	// Chart renders a bar chart of the report on stderr.
	Chart bool
	// NoColor disables ANSI colors in diagnostics and the chart.
	NoColor bool
	// MetricsFile, when set, receives a Prometheus textfile export of the
	// histogram after the report is written.
	MetricsFile string
	// Trace writes an OpenTelemetry span per phase to stderr as JSON.
	Trace bool
	// Version requests the version banner instead of a run. The positional
	// arguments are not required when it is set.
	Version bool
}

// ParseConfig parses command-line flags and the three positional arguments.
// Flags must precede the positional arguments.
//
// Parameters:
//   - programName: The name of the program (used in usage output).
//   - args: The command-line arguments, without the program name.
//   - errWriter: The writer for usage and flag errors.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError for a
//     missing or extra argument or bad flag, a ValidationError for an
//     argument that is not an integer.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() { printUsage(fs, programName, errWriter) }

	var cfg AppConfig
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log debug diagnostics to stderr.")
	fs.BoolVar(&cfg.Progress, "progress", false, "Show a progress spinner on stderr while reading input.")
	fs.BoolVar(&cfg.Chart, "chart", false, "Render a bar chart of the report on stderr.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output (also honors NO_COLOR).")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write a Prometheus textfile export of the histogram to this path.")
	fs.BoolVar(&cfg.Trace, "trace", false, "Write OpenTelemetry spans for each phase to stderr as JSON.")
	fs.BoolVar(&cfg.Version, "version", false, "Print version information and exit.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if cfg.Version {
		return cfg, nil
	}

	if err := cfg.applyPositionals(fs.Args()); err != nil {
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return cfg, nil
}

// applyPositionals fills Bins, Min and Max from the positional arguments.
func (c *AppConfig) applyPositionals(pos []string) error {
	names := []string{ArgBins, ArgMin, ArgMax}
	if len(pos) < len(names) {
		return apperrors.NewConfigError("missing argument <%s>", names[len(pos)])
	}
	if len(pos) > len(names) {
		return apperrors.NewConfigError("unexpected argument %q (flags must precede <nbins> <min> <max>)", pos[len(names)])
	}

	values := make([]uint64, len(names))
	for i, name := range names {
		v, err := histogram.ParseValue(pos[i])
		if err != nil {
			return apperrors.ValidationError{Field: name, Message: fmt.Sprintf("unable to parse %q as integer", pos[i])}
		}
		values[i] = v
	}

	if values[0] > uint64(maxInt) {
		return apperrors.ValidationError{Field: ArgBins, Message: "too many bins"}
	}
	c.Bins = int(values[0])
	c.Min = values[1]
	c.Max = values[2]
	return nil
}

const maxInt = 1<<(strconv.IntSize-1) - 1

func printUsage(fs *flag.FlagSet, programName string, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [flags] <nbins> <min> <max>\n\n", programName)
	fmt.Fprintf(w, "Reads one non-negative integer per line from stdin and prints a\n")
	fmt.Fprintf(w, "cumulative-percentage histogram of <nbins> bins over [<min>, <max>).\n\n")
	fmt.Fprintf(w, "Flags:\n")
	fs.PrintDefaults()
}
