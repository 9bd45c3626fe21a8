package terminal

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	return NewSession(screen)
}

func TestSessionCloseIdempotent(t *testing.T) {
	s := newTestSession(t)
	if s.Screen() == nil {
		t.Fatal("nil screen")
	}

	s.Close()
	s.Close()

	select {
	case <-s.stopCh:
	default:
		t.Error("stop channel not closed")
	}
}

func TestCloseActive(t *testing.T) {
	s := newTestSession(t)

	if !closeActive() {
		t.Fatal("expected an active session")
	}
	if closeActive() {
		t.Error("session still registered after close")
	}

	// Closing again after the crash path must not panic
	s.Close()
}

func TestEmergencyResetSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.Bytes()
	for _, want := range [][]byte{csiCursorShow, csiAltScreenExit, csiSGR0, csiMouseSGROff, csiRIS} {
		if !bytes.Contains(out, want) {
			t.Errorf("missing sequence %q", want)
		}
	}
	if !bytes.HasSuffix(out, csiRIS) {
		t.Error("full reset should be written last")
	}
}

func TestGoRunsFunction(t *testing.T) {
	done := make(chan int, 1)
	Go(func() { done <- 42 })
	if got := <-done; got != 42 {
		t.Errorf("got %d", got)
	}
}
