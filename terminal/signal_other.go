//go:build !unix

package terminal

import (
	"os"
	"os/signal"
)

func (s *Session) watchSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	Go(func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			s.Close()
			os.Exit(1)
		case <-s.stopCh:
		}
	})
}
