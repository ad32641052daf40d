package middleware_test

import (
	"compress/flate"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leadrouter/internal/platform/net/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// chainHandler wraps h so the first element of chain runs outermost.
func chainHandler(chain []func(http.Handler) http.Handler, h http.Handler) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}

func TestWrappers_ProduceMiddleware(t *testing.T) {
	wrappers := map[string]func(http.Handler) http.Handler{
		"RequestID":        middleware.RequestID(),
		"RealIP":           middleware.RealIP(),
		"Recover":          middleware.Recover(),
		"Timeout":          middleware.Timeout(time.Second),
		"NoCache":          middleware.NoCache(),
		"StripSlashes":     middleware.StripSlashes(),
		"AllowContentType": middleware.AllowContentType("application/json"),
		"Heartbeat":        middleware.Heartbeat("/healthz"),
	}
	for name, mw := range wrappers {
		if mw == nil {
			t.Fatalf("%s returned nil", name)
		}
	}
}

func TestCompress_EncodesWhenAccepted(t *testing.T) {
	body := strings.Repeat("lead ", 1<<10) // enough bytes for the compressor to bother
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, body)
	})

	req := httptest.NewRequest(http.MethodGet, "/leads/list", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	middleware.Compress(flate.DefaultCompression)(h).ServeHTTP(rr, req)

	if rr.Result().Header.Get("Content-Encoding") == "" {
		t.Fatal("response left unencoded despite Accept-Encoding")
	}
}

func TestCORS_FillsDefaultsForPreflight(t *testing.T) {
	// only origins given; methods and headers fall back to the defaults
	cors := middleware.CORS(middleware.CORSOptions{
		AllowedOrigins: []string{"https://crm.example.com"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	for k, v := range map[string]string{
		"Origin":                         "https://crm.example.com",
		"Access-Control-Request-Method":  "POST",
		"Access-Control-Request-Headers": "Authorization",
	} {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	cors(ok).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK && rr.Code != http.StatusNoContent {
		t.Fatalf("preflight status: %d", rr.Code)
	}
	for _, hdr := range []string{"Access-Control-Allow-Methods", "Access-Control-Allow-Headers"} {
		if rr.Header().Get(hdr) == "" {
			t.Fatalf("%s missing", hdr)
		}
	}
}

func TestDefaults_Bundle(t *testing.T) {
	chain := middleware.Defaults()
	if len(chain) == 0 {
		t.Fatal("Defaults returned an empty chain")
	}

	wrapped := chainHandler(chain, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rid := chimw.GetReqID(r.Context()); rid == "" {
			t.Fatal("request id missing from context")
		}

		// RealIP may rewrite RemoteAddr to a bare IP
		switch host, _, err := net.SplitHostPort(r.RemoteAddr); {
		case r.RemoteAddr == "":
			t.Fatal("RemoteAddr wiped")
		case err == nil && host != "":
		case net.ParseIP(r.RemoteAddr) == nil:
			t.Fatalf("RemoteAddr: %q", r.RemoteAddr)
		}

		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:40122"
	req.Header.Set("X-Forwarded-For", "203.0.113.50")

	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatal("NoCache left Cache-Control unset")
	}
}
