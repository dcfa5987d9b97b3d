// Package middleware provides HTTP middleware applied ahead of the API
// handlers.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/guvenchemy/MerkutY-BTK/internal/api/shared"
)

// TraceMiddleware stamps every request context with a trace ID so log lines
// and error responses for the same request can be correlated. Apply it early
// in the chain.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		slog.With(slog.String("trace_id", traceID)).Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
