package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leadrouter/internal/platform/net/middleware"
)

func serveLogged(opt middleware.AccessLogOptions, next http.HandlerFunc, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mw := middleware.AccessLogZerolog(opt)
	mw(next).ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func TestAccessLogZerolog_TransparentToResponses(t *testing.T) {
	rr := serveLogged(middleware.AccessLogOptions{}, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "assigned")
	}, http.MethodPost, "/distribution/distribute")

	if rr.Code != http.StatusCreated || rr.Body.String() != "assigned" {
		t.Fatalf("status=%d body=%q", rr.Code, rr.Body.String())
	}
}

func TestAccessLogZerolog_SlowThresholdLeavesResponseAlone(t *testing.T) {
	// a threshold every request exceeds, the slow path must only log
	rr := serveLogged(middleware.AccessLogOptions{Slow: time.Nanosecond}, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(50 * time.Microsecond)
		_, _ = io.WriteString(w, "done")
	}, http.MethodGet, "/stats/source")

	if rr.Code != http.StatusOK || rr.Body.String() != "done" {
		t.Fatalf("status=%d body=%q", rr.Code, rr.Body.String())
	}
}

func TestAccessLogZerolog_MultipleWrites(t *testing.T) {
	// the byte counter wraps Write, both chunks must still reach the client
	rr := serveLogged(middleware.AccessLogOptions{}, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("lead:"))
		_, _ = w.Write([]byte("42"))
	}, http.MethodGet, "/leads/42")

	if rr.Body.String() != "lead:42" {
		t.Fatalf("body: %q", rr.Body.String())
	}
}
