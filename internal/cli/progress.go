//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"

	"github.com/agbru/binhist/internal/format"
)

const (
	// ProgressRefreshRate defines the animation frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressUpdateEvery is the number of accepted values between two
	// suffix refreshes.
	ProgressUpdateEvery = 4096
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of IngestProgress from a specific spinner
// implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text displayed after the spinner. The spinner
// goroutine reads the suffix under the same lock.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate,
		spinner.WithWriter(out),
		spinner.WithHiddenCursor(true),
	)
	return &realSpinner{s}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IngestProgress displays the running number of accepted values while the
// input is being read.
type IngestProgress struct {
	spinner Spinner
	every   uint64
}

// NewIngestProgress creates a progress display writing to out.
func NewIngestProgress(out io.Writer) *IngestProgress {
	return newIngestProgress(newSpinner(out), ProgressUpdateEvery)
}

func newIngestProgress(s Spinner, every uint64) *IngestProgress {
	if every == 0 {
		every = 1
	}
	return &IngestProgress{spinner: s, every: every}
}

// Start shows the spinner.
func (p *IngestProgress) Start() {
	p.spinner.UpdateSuffix(" reading values...")
	p.spinner.Start()
}

// OnValue refreshes the displayed count every p.every values. Its signature
// matches ingest.Options.OnValue.
func (p *IngestProgress) OnValue(accepted uint64) {
	if accepted%p.every != 0 {
		return
	}
	p.spinner.UpdateSuffix(fmt.Sprintf(" %s values read", format.FormatCount(accepted)))
}

// Stop halts and clears the spinner.
func (p *IngestProgress) Stop() {
	p.spinner.Stop()
}
