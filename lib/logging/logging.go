package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/TecharoHQ/requestsink/lib/config"
)

// Init builds the root slog handler writing to w in the format lc asks for.
// An invalid level is reported on stderr and replaced with INFO.
func Init(level string, lc *config.Logging, w io.Writer) slog.Handler {
	var programLevel slog.Level
	if err := (&programLevel).UnmarshalText([]byte(level)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %s: %v, using info\n", level, err)
		programLevel = slog.LevelInfo
	}

	leveler := &slog.LevelVar{}
	leveler.Set(programLevel)

	if lc.Format == config.LogFormatJSON {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     leveler,
		})
	}

	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: leveler,
	})
}
