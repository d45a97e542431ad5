package internal

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/lum8rjack/go-ja4h"
	"github.com/sebest/xff"
)

// GetRequestLogger derives a logger for a single request. Lines of concurrent
// requests interleave in the sink, so every one of them carries the request id.
func GetRequestLogger(base *slog.Logger, r *http.Request) *slog.Logger {
	return base.With(
		"request_id", uuid.NewString(),
		"remote_addr", xff.GetRemoteAddr(r),
		"ja4h", ja4h.JA4H(r),
	)
}
