package entrypoint

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/TecharoHQ/requestsink"
	"github.com/TecharoHQ/requestsink/internal"
	"github.com/TecharoHQ/requestsink/lib/reqlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsPerRoute = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "techaro",
		Subsystem: "requestsink",
		Name:      "requests_total",
		Help:      "Requests served, by the route they resolved to",
	}, []string{"route"})

	bodySize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "techaro",
		Subsystem: "requestsink",
		Name:      "request_body_bytes",
		Help:      "Size of request bodies as read off the wire",
		Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
	})
)

// Route is where a request ends up.
type Route int

const (
	RouteRoot Route = iota
	RouteFallback
)

func (r Route) String() string {
	switch r {
	case RouteRoot:
		return "root"
	default:
		return "fallback"
	}
}

// Resolve maps an escaped request path to its route. Only "/" itself is the
// root; every other path, including "//" and "/index.html", falls back.
func Resolve(path string) Route {
	if path == "/" {
		return RouteRoot
	}

	return RouteFallback
}

type notFound struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

// Router logs every request and answers it according to its Route. It is
// used as the server handler directly so paths reach it uncleaned.
type Router struct {
	log *slog.Logger
}

func NewRouter(lg *slog.Logger) *Router {
	return &Router{log: lg}
}

func (rtr *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := reqlog.Path(r)
	route := Resolve(path)
	requestsPerRoute.WithLabelValues(route.String()).Inc()

	lg := internal.GetRequestLogger(rtr.log, r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		lg.Warn("can't read whole request body", "err", err, "read", len(body))
	}
	bodySize.Observe(float64(len(body)))

	reqlog.Log(r.Context(), lg, reqlog.FromRequest(r, body))

	switch route {
	case RouteRoot:
		rtr.serveRoot(w)
	default:
		rtr.serveFallback(w, lg, path)
	}
}

func (rtr *Router) serveRoot(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(requestsink.Greeting))
}

func (rtr *Router) serveFallback(w http.ResponseWriter, lg *slog.Logger, path string) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(notFound{Error: requestsink.RouteNotFound, Path: path}); err != nil {
		lg.Error("can't encode not found response", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}))
}
