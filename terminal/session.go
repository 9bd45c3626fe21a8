package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin is not an interactive terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// activeSession is torn down by HandleCrash
var (
	activeMu      sync.Mutex
	activeSession *Session
)

// Session owns the raw-mode screen from Open until Close
type Session struct {
	screen tcell.Screen

	closeOnce sync.Once
	stopCh    chan struct{}
}

// Open verifies stdin is a terminal and initializes a tcell screen on it
func Open() (*Session, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	s := NewSession(screen)
	s.watchSignals()
	return s, nil
}

// NewSession wraps an already initialized screen
func NewSession(screen tcell.Screen) *Session {
	screen.HideCursor()

	s := &Session{
		screen: screen,
		stopCh: make(chan struct{}),
	}

	activeMu.Lock()
	activeSession = s
	activeMu.Unlock()
	return s
}

// Screen returns the underlying screen
func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Close restores the terminal, safe to call more than once
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.stopCh)
		s.screen.Fini()

		activeMu.Lock()
		if activeSession == s {
			activeSession = nil
		}
		activeMu.Unlock()
	})
}

// closeActive closes the registered session, reports whether one existed
func closeActive() bool {
	activeMu.Lock()
	s := activeSession
	activeMu.Unlock()

	if s == nil {
		return false
	}
	s.Close()
	return true
}
