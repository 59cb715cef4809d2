package app

import (
	"bufio"
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/binhist/internal/cli"
	apperrors "github.com/agbru/binhist/internal/errors"
	"github.com/agbru/binhist/internal/format"
	"github.com/agbru/binhist/internal/histogram"
	"github.com/agbru/binhist/internal/ingest"
	"github.com/agbru/binhist/internal/logging"
	"github.com/agbru/binhist/internal/metrics"
	"github.com/agbru/binhist/internal/report"
)

// runHistogram executes the ingest, report and export phases in order. No
// output reaches out unless the whole input was accepted.
func (a *Application) runHistogram(ctx context.Context, in io.Reader, out io.Writer) error {
	layout, err := histogram.NewLayout(a.Config.Bins, a.Config.Min, a.Config.Max)
	if err != nil {
		return apperrors.PreconditionError{Cause: err}
	}
	if layout.Width() == 0 {
		a.Logger.Warn("bin width is zero; any value inside [min, max) will be rejected",
			logging.Int("bins", layout.Bins),
			logging.Uint64("min", layout.Min),
			logging.Uint64("max", layout.Max))
	}
	h := histogram.New(layout)

	stats, err := a.ingest(ctx, in, h)
	if err != nil {
		return err
	}

	rows, err := a.report(ctx, out, h)
	if err != nil {
		return err
	}

	if err := a.export(ctx, h, stats, rows); err != nil {
		return err
	}

	a.Logger.Debug("histogram complete",
		logging.Int("bins", layout.Bins),
		logging.Uint64("width", layout.Width()),
		logging.Uint64("lines", stats.Lines),
		logging.Uint64("values", stats.Values),
		logging.Uint64("blank_lines", stats.Blank),
		logging.String("elapsed", format.FormatExecutionDuration(stats.Elapsed)))
	return nil
}

// ingest fills h from in, showing a spinner on a terminal when requested.
func (a *Application) ingest(ctx context.Context, in io.Reader, h *histogram.Histogram) (ingest.Stats, error) {
	ctx, span := a.Tracer.Start(ctx, "ingest")
	defer span.End()

	var opts ingest.Options
	if a.Config.Progress && cli.IsTerminal(a.ErrWriter) {
		p := cli.NewIngestProgress(a.ErrWriter)
		p.Start()
		defer p.Stop()
		opts.OnValue = p.OnValue
	}

	stats, err := ingest.Read(ctx, in, h, opts)
	span.SetAttributes(
		attribute.Int64("binhist.lines", int64(stats.Lines)),
		attribute.Int64("binhist.values", int64(stats.Values)),
		attribute.Int64("binhist.blank_lines", int64(stats.Blank)),
	)
	if err != nil {
		recordError(span, err)
		return stats, err
	}
	return stats, nil
}

// report writes the report rows for h to out.
func (a *Application) report(ctx context.Context, out io.Writer, h *histogram.Histogram) ([]report.Row, error) {
	_, span := a.Tracer.Start(ctx, "report")
	defer span.End()

	rows := report.Build(h.Counts(), h.Layout())
	span.SetAttributes(attribute.Int("binhist.rows", len(rows)))

	bw := bufio.NewWriter(out)
	if err := report.Write(bw, rows); err != nil {
		err = apperrors.WrapError(err, "writing report")
		recordError(span, err)
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		err = apperrors.WrapError(err, "writing report")
		recordError(span, err)
		return nil, err
	}
	return rows, nil
}

// export renders the optional chart and metrics file.
func (a *Application) export(ctx context.Context, h *histogram.Histogram, stats ingest.Stats, rows []report.Row) error {
	if !a.Config.Chart && a.Config.MetricsFile == "" {
		return nil
	}
	_, span := a.Tracer.Start(ctx, "export")
	defer span.End()

	if a.Config.Chart {
		cli.DisplayChart(a.ErrWriter, rows)
	}
	if a.Config.MetricsFile != "" {
		span.SetAttributes(attribute.String("binhist.metrics_file", a.Config.MetricsFile))
		if err := metrics.WriteTextfile(a.Config.MetricsFile, h, stats); err != nil {
			recordError(span, err)
			return err
		}
		a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
