package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// wrap applies the stack the way Build does, outermost entry first.
func wrap(h http.Handler, stack []func(http.Handler) http.Handler) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}

func TestCommonStack_WrapsWithoutSwallowing(t *testing.T) {
	stack := CommonStack()
	if len(stack) == 0 {
		t.Fatal("CommonStack returned no middleware")
	}

	calls := 0
	root := wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("X-Inner", "reached")
		w.WriteHeader(http.StatusTeapot)
	}), stack)

	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/operators/list", nil))

	if calls != 1 {
		t.Fatalf("inner handler ran %d times", calls)
	}
	if rr.Header().Get("X-Inner") != "reached" || rr.Code != http.StatusTeapot {
		t.Fatalf("inner response mangled: code=%d headers=%v", rr.Code, rr.Header())
	}
}

func TestCommonStack_HeartbeatShortCircuits(t *testing.T) {
	// /health is answered by the heartbeat middleware before routing
	root := wrap(http.NotFoundHandler(), CommonStack())

	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("GET /health: code=%d body=%s", rr.Code, rr.Body.String())
	}
}
