// Package histogram maps integer values onto a fixed number of contiguous bins
// and accumulates per-bin counts.
//
// Values below the configured minimum are clamped into the first bin and
// values at or above the maximum are clamped into the last bin, so every
// accepted value contributes to exactly one counter.
package histogram
