//go:build swag

package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"leadrouter/internal/platform/config"

	docs "leadrouter/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed swagger document before it is served
type SpecMutator func(map[string]any)

// mutators is the in-process registry of swagger mutators
var mutators []SpecMutator

// docReader is a seam so tests can inject broken JSON without patching swag
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a swagger mutator. Call from module init so it wires itself
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// child returns doc[key] as an object, creating it when absent
func child(doc map[string]any, key string) map[string]any {
	if m, ok := doc[key].(map[string]any); ok {
		return m
	}
	m := map[string]any{}
	doc[key] = m
	return m
}

// serveDocJSON serves the swagger document with module adjustments applied
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc map[string]any
		if err := json.Unmarshal([]byte(docReader()), &doc); err != nil {
			http.Error(w, "swagger doc parse error", http.StatusInternalServerError)
			return
		}

		// under OAS3 the base url is carried by servers, there is no BasePath
		ensureServers(doc, "/api/v1")

		cfg := config.New().Prefix("API_")
		if v := cfg.MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			info := child(doc, "info")
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + v
			}
		}

		ensureErrorResponseDefinition(doc)
		addDefaultError(doc)

		for _, m := range mutators {
			m(doc)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(doc)
	}
}

// ensureServers normalizes the document to OAS 3.0.3 with a servers
// array. 3.1 is downconverted because the bundled UI cannot render it,
// and swagger 2.0 documents are upgraded in place
func ensureServers(doc map[string]any, url string) {
	if _, hasSwagger := doc["swagger"]; hasSwagger {
		delete(doc, "swagger")
		doc["openapi"] = "3.0.3"
	}
	v, ok := doc["openapi"].(string)
	if !ok || strings.HasPrefix(v, "3.1") {
		doc["openapi"] = "3.0.3"
	}

	if _, ok := doc["servers"]; !ok {
		doc["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition adds the error envelope model if missing,
// deliberately sparse, the runtime envelope stays the source of truth
func ensureErrorResponseDefinition(doc map[string]any) {
	schemas := child(child(doc, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	intField := map[string]any{"type": "integer", "format": "int32"}
	strField := map[string]any{"type": "string"}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": intField,
			"status":      strField,
			"code":        intField,
			"error":       strField,
			"request_id":  strField,
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultError injects a 500 response into every operation lacking one
func addDefaultError(doc map[string]any) {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return
	}

	errResp := map[string]any{
		"description": "Internal Server Error",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": 500,
					"status":      "Internal Server Error",
					"code":        1,
					"error":       "panic recovered",
					"request_id":  "9f3a11c0d42e/abc-000001",
				},
			},
		},
	}

	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			if _, exists := responses["500"]; !exists {
				responses["500"] = errResp
			}
		}
	}
}
