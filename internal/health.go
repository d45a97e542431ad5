package internal

import (
	"net/http"

	"google.golang.org/grpc/health"
	healthv1 "google.golang.org/grpc/health/grpc_health_v1"
)

var healthSrv = health.NewServer()

// SetHealth records the serving status of a named service.
func SetHealth(name string, status healthv1.HealthCheckResponse_ServingStatus) {
	healthSrv.SetServingStatus(name, status)
}

// HealthzHandler answers 200 while the named service is SERVING and 503
// otherwise, including when nothing was ever recorded for it.
func HealthzHandler(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := healthSrv.Check(r.Context(), &healthv1.HealthCheckRequest{Service: name})
		if err != nil || resp.GetStatus() != healthv1.HealthCheckResponse_SERVING {
			http.Error(w, "NOT OK", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}
