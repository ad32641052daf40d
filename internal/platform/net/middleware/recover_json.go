package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	perr "leadrouter/internal/platform/errors"
	"leadrouter/internal/platform/logger"
	pnet "leadrouter/internal/platform/net"
)

type panicWire struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

// RecoverJSON converts panics into a JSON 500 and logs the stack with the
// request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			if v := recover(); v != nil {
				handlePanic(w, r, v)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func handlePanic(w stdhttp.ResponseWriter, r *stdhttp.Request, v any) {
	reqID := pnet.RequestID(r.Context())

	// indent continuation lines so the stack reads as one log entry
	stack := strings.Join(strings.Split(string(debug.Stack()), "\n"), "\n\t")

	logger.C(r.Context()).Error().
		Str("request_id", reqID).
		Interface("panic", v).
		Msgf("panic recovered\n%s", stack)

	if reqID != "" {
		w.Header().Set("X-Request-ID", reqID)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(stdhttp.StatusInternalServerError)
	_ = stdjson.NewEncoder(w).Encode(panicWire{
		StatusCode: stdhttp.StatusInternalServerError,
		Status:     stdhttp.StatusText(stdhttp.StatusInternalServerError),
		Error:      perr.Root(perr.PanicErrf("panic recovered")).Error(),
		RequestID:  reqID,
	})
}
