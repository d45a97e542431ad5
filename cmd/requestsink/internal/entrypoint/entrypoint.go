package entrypoint

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/TecharoHQ/requestsink/cmd/requestsink/internal/config"
	"github.com/TecharoHQ/requestsink/internal"
	"github.com/TecharoHQ/requestsink/lib/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	healthv1 "google.golang.org/grpc/health/grpc_health_v1"
)

const serviceName = "requestsink"

type Options struct {
	Port        string
	MetricsBind string
	H2C         bool
	Logger      *slog.Logger
}

// Main binds every listener and serves requests until the process is killed.
// It only returns on startup failures or when the accept loop dies.
func Main(opts Options) error {
	internal.SetHealth(serviceName, healthv1.HealthCheckResponse_NOT_SERVING)

	addr, err := config.ParsePort(opts.Port)
	if err != nil {
		return err
	}

	bind := config.Bind{
		HTTP:    addr,
		Metrics: opts.MetricsBind,
	}

	lns, err := bind.Listen()
	if err != nil {
		return err
	}

	if lns.Metrics != nil {
		go serveMetrics(opts.Logger, lns.Metrics)
	}

	srv := NewServer(opts)

	internal.SetHealth(serviceName, healthv1.HealthCheckResponse_SERVING)
	opts.Logger.Info("listening", "addr", lns.HTTP.Addr().String(), "h2c", opts.H2C)

	if err := srv.Serve(lns.HTTP); err != nil {
		internal.SetHealth(serviceName, healthv1.HealthCheckResponse_NOT_SERVING)
		return fmt.Errorf("can't serve on %s: %w", lns.HTTP.Addr(), err)
	}

	return nil
}

// NewServer builds the HTTP server for the request sink. With H2C set it also
// speaks HTTP/2 over cleartext, both with prior knowledge and via Upgrade.
func NewServer(opts Options) *http.Server {
	var h http.Handler = NewRouter(opts.Logger)

	if opts.H2C {
		h = h2c.NewHandler(h, &http2.Server{})
	}

	return &http.Server{
		Handler:                      h,
		ErrorLog:                     logging.StdlibLogger(opts.Logger, slog.LevelWarn),
		DisableGeneralOptionsHandler: true, // "OPTIONS *" is routed and logged like anything else
	}
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", internal.HealthzHandler(serviceName))
	return mux
}

func serveMetrics(lg *slog.Logger, ln net.Listener) {
	lg = lg.With("server", "metrics")

	srv := &http.Server{
		Handler:  metricsMux(),
		ErrorLog: logging.StdlibLogger(lg, slog.LevelWarn),
	}

	lg.Info("listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil {
		lg.Error("metrics server stopped", "err", err)
	}
}
