package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/TecharoHQ/requestsink"
	bindconfig "github.com/TecharoHQ/requestsink/cmd/requestsink/internal/config"
	"github.com/TecharoHQ/requestsink/cmd/requestsink/internal/entrypoint"
	"github.com/TecharoHQ/requestsink/internal"
	"github.com/TecharoHQ/requestsink/lib/config"
	"github.com/facebookgo/flagenv"
	"github.com/joho/godotenv"
)

var (
	port          = bindconfig.PortFlag(flag.CommandLine)
	metricsBind   = flag.String("metrics-bind", "", "host:port to serve /metrics and /healthz on, empty to disable")
	h2cFlag       = flag.Bool("h2c", true, "if true, also accept HTTP/2 over cleartext")
	slogLevel     = flag.String("slog-level", "INFO", "logging level (see https://pkg.go.dev/log/slog#hdr-Levels)")
	logFormat     = flag.String("log-format", config.LogFormatText, "log line format, text or json")
	logSink       = flag.String("log-sink", config.LogSinkStdio, "where logs go, stdio or file")
	logFile       = flag.String("log-file", (config.LoggingFileConfig{}).Default().Filename, "log file for the file sink")
	logMaxBytes   = flag.Int64("log-max-bytes", (config.LoggingFileConfig{}).Default().MaxBytes, "size in bytes at which the log file is rotated")
	logMaxBackups = flag.Int("log-max-backups", (config.LoggingFileConfig{}).Default().MaxBackups, "number of rotated log files to keep")
	logMaxAge     = flag.Int("log-max-age", (config.LoggingFileConfig{}).Default().MaxAge, "days to keep rotated log files")
	logCompress   = flag.Bool("log-compress", (config.LoggingFileConfig{}).Default().Compress, "if true, gzip rotated log files")
	versionFlag   = flag.Bool("version", false, "if true, show version information then quit")
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "can't load .env: %v\n", err)
		os.Exit(1)
	}

	flagenv.Parse()
	flag.Parse()

	if *versionFlag {
		fmt.Println("requestsink", requestsink.Version)
		return
	}

	lc := &config.Logging{
		Sink:   *logSink,
		Format: *logFormat,
	}
	if lc.Sink == config.LogSinkFile {
		lc.Parameters = &config.LoggingFileConfig{
			Filename:   *logFile,
			MaxBytes:   *logMaxBytes,
			MaxBackups: *logMaxBackups,
			MaxAge:     *logMaxAge,
			Compress:   *logCompress,
		}
	}

	if err := lc.Valid(); err != nil {
		fmt.Fprintf(os.Stderr, "logging configuration is invalid:\n\n%v\n", err)
		os.Exit(1)
	}

	lg := internal.InitSlog(*slogLevel, lc)

	if err := entrypoint.Main(entrypoint.Options{
		Port:        *port,
		MetricsBind: *metricsBind,
		H2C:         *h2cFlag,
		Logger:      lg,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
