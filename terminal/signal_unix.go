//go:build unix

package terminal

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// watchSignals closes the session and exits on forced termination
func (s *Session) watchSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGTERM, unix.SIGHUP, unix.SIGINT)

	Go(func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			s.Close()
			os.Exit(128 + int(sig.(unix.Signal)))
		case <-s.stopCh:
		}
	})
}
