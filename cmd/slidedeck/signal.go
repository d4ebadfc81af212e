package main

import (
	"context"
	"os/signal"
)

// notifyContext returns a context canceled on the first shutdown signal.
// A build in flight sees the cancellation and leaves the destination
// untouched; watch mode returns cleanly. Call stop() to release resources.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
