package middleware

import (
	"net/http"

	"leadrouter/internal/platform/logger"
	pnet "leadrouter/internal/platform/net"
)

// LogContext copies the request id into the logger context so logger.C picks it up
func LogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
