package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// withInterrupt returns a context cancelled on the first SIGINT or SIGTERM.
// msg is written to w when that happens. The returned stop function releases
// the signal handler.
func withInterrupt(parent context.Context, w io.Writer, msg string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	// Handle interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(w, "\n[INTERRUPT] "+msg)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
