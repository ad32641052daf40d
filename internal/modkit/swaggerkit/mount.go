// Package swaggerkit serves the Swagger UI and the generated OpenAPI document.
package swaggerkit

import (
	"net/http"

	phttp "leadrouter/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount hangs the UI and doc.json off /api/docs when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON())
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
