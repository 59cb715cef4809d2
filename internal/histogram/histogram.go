package histogram

import "fmt"

// MaxBins is the largest bin count a Layout accepts. It bounds the counter
// array to 128 MiB.
const MaxBins = 1 << 24

// Layout describes how a value range is divided into bins. It is immutable
// once created through NewLayout.
type Layout struct {
	// Bins is the number of bins, always positive.
	Bins int
	// Min is the lower bound of the binned range.
	Min uint64
	// Max is the upper bound of the binned range.
	Max uint64
}

// NewLayout validates and returns a Layout.
//
// A layout whose bin width is zero is accepted: values that clamp into the
// first or last bin still classify, and the first in-range value fails with
// ErrZeroWidth.
func NewLayout(bins int, lo, hi uint64) (Layout, error) {
	if bins <= 0 {
		return Layout{}, ErrNoBins
	}
	if bins > MaxBins {
		return Layout{}, fmt.Errorf("%w: %d bins, at most %d", ErrTooManyBins, bins, MaxBins)
	}
	if lo > hi {
		return Layout{}, fmt.Errorf("%w: min %d, max %d", ErrInvertedRange, lo, hi)
	}
	return Layout{Bins: bins, Min: lo, Max: hi}, nil
}

// Width returns the integer bin width. It is recomputed on every call.
func (l Layout) Width() uint64 {
	return BinWidth(l.Bins, l.Min, l.Max)
}

// Index returns the bin index of value within the layout.
func (l Layout) Index(value uint64) (int, error) {
	return BinIndex(l.Bins, l.Min, l.Max, value)
}

// Lower returns the arithmetic lower bound of bin i, Min + Width*i.
func (l Layout) Lower(i int) uint64 {
	return l.Min + l.Width()*uint64(i)
}

// Upper returns the arithmetic upper bound of bin i, Min + Width*(i+1).
func (l Layout) Upper(i int) uint64 {
	return l.Min + l.Width()*uint64(i+1)
}

// Histogram is a fixed-size array of bin counters. It is not safe for
// concurrent use; a single reader owns it for the length of a run.
type Histogram struct {
	layout Layout
	counts []uint64
	total  uint64
	sum    float64
}

// New creates an empty histogram for the given layout.
func New(layout Layout) *Histogram {
	return &Histogram{
		layout: layout,
		counts: make([]uint64, layout.Bins),
	}
}

// Add classifies value and increments exactly one counter. On error the
// histogram is left unchanged.
func (h *Histogram) Add(value uint64) error {
	idx, err := h.layout.Index(value)
	if err != nil {
		return err
	}
	h.counts[idx]++
	h.total++
	h.sum += float64(value)
	return nil
}

// Layout returns the layout the histogram was created with.
func (h *Histogram) Layout() Layout { return h.layout }

// Counts returns a copy of the per-bin counters in index order.
func (h *Histogram) Counts() []uint64 {
	out := make([]uint64, len(h.counts))
	copy(out, h.counts)
	return out
}

// Total returns the number of values added.
func (h *Histogram) Total() uint64 { return h.total }

// Sum returns the sum of all values added.
func (h *Histogram) Sum() float64 { return h.sum }
