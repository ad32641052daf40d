// Package http writes JSON responses in the shared envelope shape
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "leadrouter/internal/platform/errors"
	pnet "leadrouter/internal/platform/net"
)

// Envelope is the body every endpoint answers with
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
	Page       *Page          `json:"page,omitempty"`
}

// Page carries pagination for list responses
type Page struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// JSON encodes v with the given status and a JSON content type
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONStatus writes a bare status with an empty object body
func JSONStatus(w stdhttp.ResponseWriter, status int) { JSON(w, status, map[string]any{}) }

// writeData envelopes data and writes it with status
func writeData(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, data any) {
	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
		Data:       data,
	})
}

// writeErr maps err onto status + wire code and writes the envelope
func writeErr(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status := perr.HTTPStatus(err)
	wire := perr.WireFrom(err)
	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       wire.Code,
		Error:      wire.Message,
		RequestID:  pnet.RequestID(r.Context()),
	})
}

// Imperative helpers for handlers that write directly

// RespondOK writes a 200 envelope wrapping data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	writeData(w, r, stdhttp.StatusOK, data)
}

// RespondCreated writes a 201 envelope wrapping data
func RespondCreated(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	writeData(w, r, stdhttp.StatusCreated, data)
}

// RespondNoContent writes a bodyless 204
func RespondNoContent(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	w.WriteHeader(stdhttp.StatusNoContent)
}

// RespondError envelopes err and writes it with its mapped status
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) { writeErr(w, r, err) }

// Value-style helpers for handlers that return instead of write

// Response is the value a handler returns; Handle renders it
type Response struct {
	Status int
	Body   any
	// optional extra headers
	Header stdhttp.Header
}

// Handle turns a Response-returning function into a net/http handler
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).render(w, r)
	}
}

func (resp Response) render(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	// an error body overrides the declared status
	if err, ok := resp.Body.(error); ok && err != nil {
		writeErr(w, r, err)
		return
	}
	writeData(w, r, status, resp.Body)
}

// OK wraps data in a 200 Response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created wraps data in a 201 Response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent is a bodyless 204 Response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error defers status mapping to the error itself
func Error(err error) Response { return Response{Body: err} }

// List wraps items with pagination in a 200 Response
func List(items any, total, page, size int) Response {
	return OK(struct {
		Items any  `json:"items"`
		Page  Page `json:"page"`
	}{Items: items, Page: Page{Total: total, Page: page, PageSize: size}})
}
