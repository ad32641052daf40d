package httpkit

import (
	"net/http"
	"testing"
)

func singleRoute(t *testing.T, r *spyRouter) routeRec {
	t.Helper()
	if len(r.routes) != 1 {
		t.Fatalf("registrations: %d", len(r.routes))
	}
	return r.routes[0]
}

func TestJSONSugar_MountsByVerb(t *testing.T) {
	type body struct{ Phone string }
	okFn := func(_ *http.Request, _ body) (any, error) { return "ok", nil }

	cases := []struct {
		verb  string
		path  string
		mount func(Router)
	}{
		{"GET", "/leads/search", func(r Router) { GetJSON[body](r, "/leads/search", okFn) }},
		{"POST", "/distribution/distribute", func(r Router) { PostJSON[body](r, "/distribution/distribute", okFn) }},
		{"PUT", "/operators/3", func(r Router) { PutJSON[body](r, "/operators/3", okFn) }},
		{"PATCH", "/sources/2", func(r Router) { PatchJSON[body](r, "/sources/2", okFn) }},
		{"DELETE", "/sources/2", func(r Router) { DeleteJSON[body](r, "/sources/2", okFn) }},
	}
	for _, tc := range cases {
		t.Run(tc.verb, func(t *testing.T) {
			r := &spyRouter{}
			tc.mount(r)

			got := singleRoute(t, r)
			if got.verb != tc.verb || got.path != tc.path {
				t.Fatalf("mounted %s %s, want %s %s", got.verb, got.path, tc.verb, tc.path)
			}
			if got.ph == nil {
				t.Fatal("handler is nil")
			}
		})
	}
}

func TestBodylessSugar_MountsByVerb(t *testing.T) {
	okFn := func(_ *http.Request) (any, error) { return "ok", nil }

	cases := []struct {
		verb  string
		path  string
		mount func(Router)
	}{
		{"GET", "/stats/operators-load", func(r Router) { Get(r, "/stats/operators-load", okFn) }},
		{"POST", "/distribution/redistribute", func(r Router) { Post(r, "/distribution/redistribute", okFn) }},
		{"PATCH", "/operators/3", func(r Router) { Patch(r, "/operators/3", okFn) }},
		{"DELETE", "/operators/3", func(r Router) { Delete(r, "/operators/3", okFn) }},
	}
	for _, tc := range cases {
		t.Run(tc.verb, func(t *testing.T) {
			r := &spyRouter{}
			tc.mount(r)

			got := singleRoute(t, r)
			if got.verb != tc.verb || got.path != tc.path {
				t.Fatalf("mounted %s %s, want %s %s", got.verb, got.path, tc.verb, tc.path)
			}
			if got.ph == nil {
				t.Fatal("handler is nil")
			}
		})
	}
}
