package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "leadrouter/internal/platform/errors"
	pnet "leadrouter/internal/platform/net"
)

func TestHTTPStatus_MappedCodes(t *testing.T) {
	if got := pnet.HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("nil error: want 200, got %d", got)
	}
	if got := pnet.HTTPStatus(perr.New(perr.ErrorCodeNotFound, "lead missing")); got != http.StatusNotFound {
		t.Fatalf("not found: want 404, got %d", got)
	}
	if got := pnet.HTTPStatus(perr.New(perr.ErrorCodeConflict, "slot already reserved")); got != http.StatusConflict {
		t.Fatalf("conflict: want 409, got %d", got)
	}
}

func TestHTTPStatus_ForeignErrorIsServerSide(t *testing.T) {
	got := pnet.HTTPStatus(errors.New("boom"))
	if got < 400 || got > 599 {
		t.Fatalf("foreign error should map to an error status, got %d", got)
	}
}
