package histogram

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBins is returned when a layout or bin computation is asked for zero bins.
	ErrNoBins = errors.New("number of bins must be positive")
	// ErrTooManyBins is returned when a layout is asked for more than MaxBins bins.
	ErrTooManyBins = errors.New("too many bins")
	// ErrInvertedRange is returned when the range minimum exceeds its maximum.
	ErrInvertedRange = errors.New("range minimum exceeds maximum")
	// ErrZeroWidth is returned when an in-range value meets a layout whose
	// integer bin width is zero, i.e. (max - min) < nbins.
	ErrZeroWidth = errors.New("bin width is zero")
)

// BinWidth returns the integer width of each bin, (hi - lo) / nbins, using
// floor division. The caller guarantees nbins > 0 and lo <= hi.
func BinWidth(nbins int, lo, hi uint64) uint64 {
	return (hi - lo) / uint64(nbins)
}

// BinIndex returns the bin that value falls into for a histogram of nbins
// bins spanning [lo, hi).
//
// Values below lo land in bin 0 and values at or above hi land in bin
// nbins-1. When nbins does not divide hi-lo, the leftover values just below
// hi are absorbed by the last bin as well.
//
// Parameters:
//   - nbins: The number of bins; must be positive.
//   - lo: The lower bound of the range (min).
//   - hi: The upper bound of the range (max).
//   - value: The value to classify.
//
// Returns:
//   - int: The bin index in [0, nbins-1].
//   - error: ErrNoBins if nbins <= 0, ErrZeroWidth if value is in range and
//     the bin width is zero.
func BinIndex(nbins int, lo, hi, value uint64) (int, error) {
	if nbins <= 0 {
		return 0, ErrNoBins
	}
	if value < lo {
		return 0, nil
	}
	if value >= hi {
		return nbins - 1, nil
	}

	width := BinWidth(nbins, lo, hi)
	if width == 0 {
		return 0, fmt.Errorf("%w: value %d in [%d, %d) with %d bins", ErrZeroWidth, value, lo, hi, nbins)
	}

	idx := (value - lo) / width
	if idx >= uint64(nbins) {
		return nbins - 1, nil
	}
	return int(idx), nil
}
