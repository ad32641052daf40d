package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"leadrouter/internal/platform/net/middleware"
)

// CommonStack is the middleware slice every API module mounts with;
// main appends anything service-specific on top
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// correlation first so everything downstream logs a request id
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.LogContext,

		// panics become JSON 500s instead of dropped connections
		middleware.RecoverJSON,

		middleware.NoCache(),

		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),

		// permissive CORS defaults, main overrides for locked-down deploys
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
