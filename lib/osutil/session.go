package osutil

import (
	"context"
	"os/signal"
	"syscall"
)

// SignalContext returns a context that lives until the process receives
// SIGINT or SIGTERM.
func SignalContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return ctx
}
