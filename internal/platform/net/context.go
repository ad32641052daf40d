// Package net carries small request-scoped helpers shared by transports.
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores reqID under chi's key so chimw.GetReqID finds it later
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// RequestID reads the request id off ctx, empty when absent
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
