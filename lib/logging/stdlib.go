package logging

import (
	"bytes"
	"context"
	"log"
	"log/slog"
	"runtime"
	"time"
)

// handlerWriter turns every Write into one slog record at a fixed level.
// net/http only knows how to report through a *log.Logger, so this is the
// bridge that lands those messages next to everything else.
type handlerWriter struct {
	h     slog.Handler
	level slog.Leveler
}

func (w *handlerWriter) Write(buf []byte) (int, error) {
	level := w.level.Level()
	if !w.h.Enabled(context.Background(), level) {
		return 0, nil
	}

	// Skip Write, log.(*Logger).output and log.(*Logger).Printf.
	var pcs [1]uintptr
	runtime.Callers(4, pcs[:])

	origLen := len(buf)
	buf = bytes.TrimSuffix(buf, []byte{'\n'})
	r := slog.NewRecord(time.Now(), level, string(buf), pcs[0])
	return origLen, w.h.Handle(context.Background(), r)
}

// StdlibLogger returns a *log.Logger that emits through lg at level. The
// slog handler stamps the time itself, so the stdlib logger carries no flags.
func StdlibLogger(lg *slog.Logger, level slog.Level) *log.Logger {
	return log.New(&handlerWriter{h: lg.Handler(), level: level}, "", 0)
}
