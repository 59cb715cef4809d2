package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/agbru/binhist/internal/errors"
	"github.com/agbru/binhist/internal/histogram"
	"github.com/agbru/binhist/internal/ingest"
)

// WriteTextfile writes the histogram and ingest counters to path in the
// Prometheus text format. The file is written to a temporary name and
// renamed into place.
//
// Parameters:
//   - path: The destination file.
//   - h: The filled histogram.
//   - stats: The counters of the read that filled h.
//
// Returns:
//   - error: A wrapped registration or write error.
func WriteTextfile(path string, h *histogram.Histogram, stats ingest.Stats) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(NewHistogramCollector(h, stats)); err != nil {
		return apperrors.WrapError(err, "registering histogram collector")
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return apperrors.WrapError(err, "writing metrics file %s", path)
	}
	return nil
}
