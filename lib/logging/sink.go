package logging

import (
	"io"
	"os"

	"github.com/TecharoHQ/requestsink/lib/config"
	"github.com/fahedouch/go-logrotate"
)

// Sink opens the destination described by lc. The stdio sink is the process'
// standard error stream and closing it is a no-op.
func Sink(lc *config.Logging) io.WriteCloser {
	switch lc.Sink {
	case config.LogSinkFile:
		return &logrotate.Logger{
			Filename:   lc.Parameters.Filename,
			MaxBytes:   lc.Parameters.MaxBytes,
			MaxAge:     lc.Parameters.MaxAge,
			MaxBackups: lc.Parameters.MaxBackups,
			LocalTime:  lc.Parameters.UseLocalTime,
			Compress:   lc.Parameters.Compress,
		}
	default:
		return nopCloser{os.Stderr}
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
