// Package progress provides terminal progress indicators.
package progress

import (
	"os"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"github.com/tjflores/guaha/internal/termcolor"
)

// Spinner displays an animated braille spinner on stderr while a long-running
// operation is in progress. It is only displayed when stderr is a TTY;
// in non-interactive environments (piped output, CI, E2E tests) it is silent.
type Spinner struct {
	msg     string
	mu      sync.Mutex
	printer *pterm.SpinnerPrinter
}

// New creates a Spinner that will display msg alongside the animation.
func New(msg string) *Spinner {
	return &Spinner{msg: msg}
}

// Start begins the spinner animation.
// It writes to stderr so it never pollutes stdout.
func (s *Spinner) Start() {
	if !termcolor.IsTerminal(os.Stderr.Fd()) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.printer != nil {
		return
	}
	printer, err := pterm.DefaultSpinner.
		WithWriter(os.Stderr).
		WithRemoveWhenDone(true).
		WithShowTimer(false).
		WithDelay(80 * time.Millisecond).
		WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").
		Start(s.msg)
	if err != nil {
		return
	}
	s.printer = printer
}

// UpdateText replaces the message shown next to the animation. It may be
// called whether or not the spinner is running.
func (s *Spinner) UpdateText(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msg = msg
	if s.printer != nil {
		s.printer.UpdateText(msg)
	}
}

// Stop halts the spinner animation and clears the line. It is safe to call
// before Start and safe to call more than once.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.printer == nil {
		return
	}
	s.printer.Stop() //nolint:errcheck // best-effort terminal cleanup
	s.printer = nil
}
