package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/jobboard/internal/database"
)

// stopper is satisfied by *server.Server
type stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server stopper
	DBPool database.Pool
}

// GracefulShutdown stops the HTTP server, letting in-flight requests finish,
// then closes the database pool. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
