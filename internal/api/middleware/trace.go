// Package middleware contains HTTP middleware shared by the API surfaces.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cmtrswtng/taskflow/internal/api/shared"
)

// Trace adds a trace ID to the request context. It should be applied
// early in the middleware chain so that all subsequent handlers have
// access to the trace ID.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.With(slog.String("trace_id", shared.GetTraceID(ctx))).Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
