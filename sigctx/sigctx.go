// Package sigctx provides a context that ends on interrupt or termination
// signals.
package sigctx

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// New returns a context canceled by SIGINT or SIGTERM. A second signal kills
// the process the usual way, since the signal handler is removed once the
// context ends.
func New() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}
