// Package app wires configuration, ingest, reporting and export into the
// binhist command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/binhist/internal/cli"
	"github.com/agbru/binhist/internal/config"
	apperrors "github.com/agbru/binhist/internal/errors"
	"github.com/agbru/binhist/internal/logging"
	"github.com/agbru/binhist/internal/ui"
)

const tracerName = "github.com/agbru/binhist/internal/app"

// Application represents the binhist application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Tracer    trace.Tracer

	// shutdownTracing flushes the provider installed by --trace.
	shutdownTracing func(context.Context) error
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets the logger used for diagnostics. By default a zerolog
// console logger on the error writer is used.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithTracer sets the tracer used for phase spans. By default the tracer of
// the global OpenTelemetry provider is used, or a stderr exporter when
// --trace is given.
func WithTracer(t trace.Tracer) AppOption {
	return func(a *Application) { a.Tracer = t }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument vector, program name first.
//   - errWriter: The writer for usage, diagnostics and logs.
//   - opts: Optional overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp when help was requested, or a configuration error.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "binhist"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	ui.InitTheme(cfg.NoColor)

	if app.Logger == nil {
		level := zerolog.WarnLevel
		if cfg.Verbose {
			level = zerolog.DebugLevel
		}
		app.Logger = logging.NewConsoleLogger(errWriter, level, !ui.ColorsEnabled())
	}
	if app.Tracer == nil {
		if cfg.Trace {
			tp, err := newTracerProvider(errWriter)
			if err != nil {
				return nil, apperrors.WrapError(err, "starting trace exporter")
			}
			app.Tracer = tp.Tracer(tracerName)
			app.shutdownTracing = tp.Shutdown
		} else {
			app.Tracer = otel.Tracer(tracerName)
		}
	}
	return app, nil
}

// Run reads values from in, writes the report to out and performs the
// optional chart and metrics exports. Diagnostics go to the error writer.
// With --version it only prints the version banner to out.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, in io.Reader, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	if a.shutdownTracing != nil {
		defer func() {
			if err := a.shutdownTracing(context.WithoutCancel(ctx)); err != nil {
				a.Logger.Warn("flushing traces failed", logging.Err(err))
			}
		}()
	}

	ctx, span := a.Tracer.Start(ctx, "run")
	defer span.End()

	if err := a.runHistogram(ctx, in, out); err != nil {
		recordError(span, err)
		cli.DisplayError(a.ErrWriter, err)
		a.Logger.Debug("run failed", logging.Err(err))
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
