package internal

import (
	"log/slog"

	"github.com/TecharoHQ/requestsink/lib/config"
	"github.com/TecharoHQ/requestsink/lib/logging"
)

// InitSlog builds the process logger from lc, installs it as the slog default
// for libraries that log on their own, and returns it. The sink stays open
// until the process exits.
func InitSlog(level string, lc *config.Logging) *slog.Logger {
	lg := slog.New(logging.Init(level, lc, logging.Sink(lc)))
	slog.SetDefault(lg)
	return lg
}
