// Package httpkit re-exports the platform http surface for module code, so
// feature packages wire routes without importing internal/platform/net/http.
package httpkit

import (
	"encoding/json"
	"net/http"

	phttp "leadrouter/internal/platform/net/http"
)

type (
	Envelope = phttp.Envelope
	Page     = phttp.Page
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

func OK(data any) Response      { return phttp.OK(data) }
func Created(data any) Response { return phttp.Created(data) }
func NoContent() Response       { return phttp.NoContent() }

// Error maps err to its HTTP status and wire envelope.
func Error(err error) Response { return phttp.Error(err) }

// List wraps items with pagination metadata in a 200 response.
func List(items any, total, page, size int) Response {
	return phttp.List(items, total, page, size)
}

// JSON decodes the request body into T and envelopes the handler's result.
// Unknown body fields are rejected. A Response return passes through as is.
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		var in T
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&in); err != nil {
			return phttp.Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}

// Call envelopes a handler that reads no body.
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}

// Handle adapts a Response-returning function directly.
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}
