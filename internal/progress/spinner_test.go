package progress

import "testing"

// Test runners do not attach a TTY to stderr, so these exercise the silent
// path: every method must be a safe no-op.

func TestSpinner_NonTTYIsSilent(t *testing.T) {
	s := New("loading")
	s.Start()
	if s.printer != nil {
		t.Error("Start() created a printer without a TTY on stderr")
	}
	s.UpdateText("still loading")
	s.Stop()
}

func TestSpinner_StopBeforeStart(t *testing.T) {
	s := New("loading")
	s.Stop()
	s.Stop()
}

func TestSpinner_StartIdempotent(t *testing.T) {
	s := New("loading")
	s.Start()
	s.Start()
	s.Stop()
}
