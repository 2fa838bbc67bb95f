package server

import (
	"context"
	"os/signal"
	"syscall"
)

// WithSignal derives a context that is canceled when the process receives
// SIGINT or SIGTERM. The returned stop function releases the signal handler.
func WithSignal(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}
