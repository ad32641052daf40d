package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler exposes the pprof mux under prefix, typically "/debug".
// A disabled mount registers nothing so the paths 404
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	// the profiler mux expects to live at its own root, so strip our prefix first
	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	serve := func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		h.ServeHTTP(w, req)
	}

	// register the bare prefix and everything below it
	r.Get(prefix, serve)
	r.Get(prefix+"/*", serve)
}
