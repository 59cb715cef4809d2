// Package report turns histogram counts into cumulative-percentage rows and
// renders them in the tab-separated text format printed by binhist.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/agbru/binhist/internal/histogram"
)

// Row is one line of the histogram report.
type Row struct {
	// Index is the bin index.
	Index int
	// CumLow and CumHigh bound the cumulative percentage band covered by the
	// bins up to and including this one.
	CumLow  float64
	CumHigh float64
	// Lo and Hi are the displayed value bounds. The first bin always shows
	// Lo = 0 and the last bin always shows Hi = +Inf.
	Lo float64
	Hi float64
	// Count is the raw number of values in the bin.
	Count uint64
	// Percent is the bin's share of the total count. It is NaN when the
	// total is zero.
	Percent float64
}

// Build computes one Row per bin in index order.
//
// Parameters:
//   - counts: The per-bin counters, len(counts) == layout.Bins.
//   - layout: The layout used to fill the counters.
//
// Returns:
//   - []Row: The report rows.
func Build(counts []uint64, layout histogram.Layout) []Row {
	var total uint64
	for _, c := range counts {
		total += c
	}

	rows := make([]Row, len(counts))
	soFar := 0.0
	last := len(counts) - 1
	for i, c := range counts {
		lo := float64(layout.Lower(i))
		hi := float64(layout.Upper(i))
		if i == 0 {
			lo = 0
		}
		if i == last {
			hi = math.Inf(1)
		}

		pct := float64(c) / float64(total) * 100
		next := soFar + pct

		rows[i] = Row{
			Index:   i,
			CumLow:  soFar,
			CumHigh: next,
			Lo:      lo,
			Hi:      hi,
			Count:   c,
			Percent: pct,
		}
		soFar = next
	}
	return rows
}

// FormatRow renders a row as
//
//	[ cum_low%,  cum_high%)\t[        lo,         hi)\tcount\t(pct%)
//
// with the cumulative percentages right-aligned to width 5 and the bounds
// right-aligned to width 10.
func FormatRow(r Row) string {
	return fmt.Sprintf("[%5.1f%%, %5.1f%%)\t[%10s, %10s)\t%d\t(%.1f%%)",
		r.CumLow, r.CumHigh, FormatBound(r.Lo), FormatBound(r.Hi), r.Count, r.Percent)
}

// Write writes every row followed by a newline.
func Write(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, FormatRow(r)); err != nil {
			return err
		}
	}
	return nil
}

// FormatBound renders a displayed bin bound: integral values without a
// fractional part, non-finite values as inf, -inf and NaN.
func FormatBound(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
