package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func markerMiddleware(header string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set(header, "1")
			next.ServeHTTP(w, req)
		})
	}
}

func textHandler(status int, body string) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestAdaptChi_RootGroupRouteAndMux(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())

	r.Use(markerMiddleware("X-Root"))
	r.Get("/health", textHandler(200, "up"))

	r.Group(func(gr Router) {
		gr.Use(markerMiddleware("X-Group"))
		if gr.Mux() == nil {
			t.Fatal("group Mux() is nil")
		}
		gr.Get("/leads/list", textHandler(200, "leads"))
	})

	r.Route("/distribution", func(sr Router) {
		sr.Use(markerMiddleware("X-Route"))
		if sr.Mux() == nil {
			t.Fatal("route Mux() is nil")
		}
		sr.Get("/status", textHandler(200, "idle"))
	})

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(stdhttp.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, req)
		return rr
	}

	rr := get("/health")
	if rr.Code != 200 || rr.Body.String() != "up" {
		t.Fatalf("GET /health: code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Root") != "1" {
		t.Fatal("root middleware skipped on root route")
	}

	rr = get("/leads/list")
	if rr.Code != 200 || rr.Body.String() != "leads" {
		t.Fatalf("GET /leads/list: code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Root") != "1" || rr.Header().Get("X-Group") != "1" {
		t.Fatalf("group route middleware: X-Root=%q X-Group=%q",
			rr.Header().Get("X-Root"), rr.Header().Get("X-Group"))
	}

	rr = get("/distribution/status")
	if rr.Code != 200 || rr.Body.String() != "idle" {
		t.Fatalf("GET /distribution/status: code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Root") != "1" || rr.Header().Get("X-Route") != "1" {
		t.Fatalf("subrouter middleware: X-Root=%q X-Route=%q",
			rr.Header().Get("X-Root"), rr.Header().Get("X-Route"))
	}
}

func TestAdaptChi_VerbsHandleAndNesting(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())

	r.Head("/operators", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.Header().Set("X-Head", "1")
	})
	r.Options("/operators", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.WriteHeader(204)
	})
	r.Handle("/raw", textHandler(200, "raw"))

	r.Group(func(gr Router) {
		gr.Post("/sources", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(201) })
		gr.Put("/sources/1", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(200) })
		gr.Patch("/sources/1", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(200) })
		gr.Delete("/sources/1", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(204) })
		gr.Head("/sources", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.Header().Set("X-G-Head", "1") })
		gr.Options("/sources", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(204) })
		gr.Handle("/sources/raw", textHandler(200, "graw"))

		gr.Group(func(ngr Router) {
			ngr.Get("/sources/nested", textHandler(200, "nested"))
		})
	})

	r.Route("/distribution", func(sr Router) {
		sr.Post("/distribute", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(201) })
		sr.Route("/v1", func(nr Router) {
			nr.Get("/ok", textHandler(200, "v1ok"))
		})
	})

	do := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, req)
		return rr
	}

	cases := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{stdhttp.MethodGet, "/raw", 200, "raw"},
		{stdhttp.MethodOptions, "/operators", 204, ""},
		{stdhttp.MethodPost, "/sources", 201, ""},
		{stdhttp.MethodPut, "/sources/1", 200, ""},
		{stdhttp.MethodPatch, "/sources/1", 200, ""},
		{stdhttp.MethodDelete, "/sources/1", 204, ""},
		{stdhttp.MethodOptions, "/sources", 204, ""},
		{stdhttp.MethodGet, "/sources/raw", 200, "graw"},
		{stdhttp.MethodGet, "/sources/nested", 200, "nested"},
		{stdhttp.MethodPost, "/distribution/distribute", 201, ""},
		{stdhttp.MethodGet, "/distribution/v1/ok", 200, "v1ok"},
	}
	for _, tc := range cases {
		rr := do(tc.method, tc.path)
		if rr.Code != tc.status {
			t.Fatalf("%s %s: code=%d want %d", tc.method, tc.path, rr.Code, tc.status)
		}
		if tc.body != "" && rr.Body.String() != tc.body {
			t.Fatalf("%s %s: body=%q want %q", tc.method, tc.path, rr.Body.String(), tc.body)
		}
	}

	// HEAD routes respond with the marker header and no body
	rr := do(stdhttp.MethodHead, "/operators")
	if rr.Code != 200 || rr.Body.Len() != 0 || rr.Header().Get("X-Head") != "1" {
		t.Fatalf("HEAD /operators: code=%d len=%d X-Head=%q", rr.Code, rr.Body.Len(), rr.Header().Get("X-Head"))
	}
	rr = do(stdhttp.MethodHead, "/sources")
	if rr.Code != 200 || rr.Body.Len() != 0 || rr.Header().Get("X-G-Head") != "1" {
		t.Fatalf("HEAD /sources: code=%d len=%d X-G-Head=%q", rr.Code, rr.Body.Len(), rr.Header().Get("X-G-Head"))
	}
}
