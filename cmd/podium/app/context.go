package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/agentstation/podium/pkg/logging"
)

// ContextWithSignals creates a context that is cancelled when the application
// receives an interrupt or termination signal.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// withLogger attaches the app logger so pipeline stages log through it.
func (a *App) withLogger(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, a.logger)
}
