// Package middleware holds adapters and in-house middlewares
package middleware

import (
	"net/http"
	"time"

	"leadrouter/internal/platform/logger"
)

// AccessLogOptions tunes the request log middleware
type AccessLogOptions struct {
	// Slow promotes requests taking >= Slow to warn level; 0 disables it
	Slow time.Duration
}

// statusWriter records what the handler wrote without altering it
type statusWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	n, err := sw.ResponseWriter.Write(b)
	sw.written += n
	return n, err
}

// AccessLogZerolog logs one line per request: method, path, status,
// elapsed, and bytes
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			elapsed := time.Since(start)
			log := logger.C(r.Context())
			evt := log.Info()
			if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn()
			}
			evt.Int("status", sw.status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("bytes", sw.written).
				Msg("request done")
		})
	}
}
