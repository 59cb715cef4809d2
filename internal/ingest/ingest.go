// Package ingest reads newline-delimited integers and feeds them into a
// histogram, one line at a time.
package ingest

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/binhist/internal/errors"
	"github.com/agbru/binhist/internal/histogram"
)

// Options tunes a Read call.
type Options struct {
	// OnValue, when set, is called after every accepted value with the
	// number of values accepted so far.
	OnValue func(accepted uint64)
}

// Stats summarizes a completed Read.
type Stats struct {
	// Lines is the number of lines read, including blank ones.
	Lines uint64
	// Values is the number of values added to the histogram.
	Values uint64
	// Blank is the number of whitespace-only lines skipped.
	Blank uint64
	// Elapsed is the wall time spent reading.
	Elapsed time.Duration
}

// Read consumes r line by line until EOF, adding each value to h. Every line
// is fully processed before the next one is read.
//
// A line that does not parse stops the read with an apperrors.InputError;
// a value the histogram cannot place stops it with an
// apperrors.PreconditionError. Values accepted before the failure stay in h,
// and the returned Stats describe the lines consumed so far.
//
// Parameters:
//   - ctx: Checked between lines and at EOF; cancellation stops the read.
//   - r: The input source.
//   - h: The histogram to fill.
//   - opts: Optional hooks.
//
// Returns:
//   - Stats: Counters for the lines read.
//   - error: nil on clean EOF.
func Read(ctx context.Context, r io.Reader, h *histogram.Histogram, opts Options) (Stats, error) {
	start := time.Now()
	var stats Stats
	br := bufio.NewReader(r)

	for {
		if err := ctx.Err(); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, apperrors.WrapError(err, "reading input")
		}

		line, readErr := br.ReadString('\n')
		if len(line) > 0 {
			stats.Lines++
			accepted, err := addLine(h, line, stats.Lines)
			if err != nil {
				stats.Elapsed = time.Since(start)
				return stats, err
			}
			if accepted {
				stats.Values++
				if opts.OnValue != nil {
					opts.OnValue(stats.Values)
				}
			} else {
				stats.Blank++
			}
		}

		if readErr != nil {
			stats.Elapsed = time.Since(start)
			if errors.Is(readErr, io.EOF) {
				if err := ctx.Err(); err != nil {
					return stats, apperrors.WrapError(err, "reading input")
				}
				return stats, nil
			}
			return stats, apperrors.WrapError(readErr, "reading input line %d", stats.Lines+1)
		}
	}
}

// addLine parses one raw line and adds it to h. It reports false for a
// whitespace-only line.
func addLine(h *histogram.Histogram, line string, lineNo uint64) (bool, error) {
	text := strings.TrimSpace(line)
	// Only non-empty lines carry values; blank lines are skipped, not rejected.
	if text == "" {
		return false, nil
	}

	value, err := histogram.ParseValue(text)
	if err != nil {
		return false, apperrors.InputError{Line: lineNo, Raw: line, Cause: err}
	}
	if err := h.Add(value); err != nil {
		return false, apperrors.PreconditionError{Cause: err}
	}
	return true, nil
}
