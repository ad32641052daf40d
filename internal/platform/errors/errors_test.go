package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // unmapped codes collapse to 500
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestConstructorsAndRendering(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error renders %q", nilErr.Error())
	}

	e := New(ErrorCodeValidation, "phone required")
	if CodeOf(e) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New): %v", CodeOf(e))
	}

	ef := Newf(ErrorCodeJSON, "body exceeds %d bytes", 4096)
	if got := ef.Error(); got != "body exceeds 4096 bytes" {
		t.Fatalf("Newf rendered %q", got)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	src := stderrs.New("deadlock detected")

	e := Wrap(src, ErrorCodeDB, "reserve slot")
	if u := stderrs.Unwrap(e); u == nil || u.Error() != "deadlock detected" {
		t.Fatal("Wrap lost the original error")
	}
	if CodeOf(e) != ErrorCodeDB {
		t.Fatalf("CodeOf(Wrap): %v", CodeOf(e))
	}

	ef := Wrapf(src, ErrorCodeConflict, "operator %d full", 3)
	if want := "operator 3 full: deadlock detected"; ef.Error() != want {
		t.Fatalf("Wrapf rendered %q, want %q", ef.Error(), want)
	}

	if got, ok := As(ef); !ok || got.Code() != ErrorCodeConflict {
		t.Fatal("As missed our error type")
	}
	if _, ok := As(src); ok {
		t.Fatal("As matched a foreign error")
	}
}

func TestFieldAndOpCopyOnWrite(t *testing.T) {
	base := Wrap(stderrs.New("bad input"), ErrorCodeInvalidArgument, "create lead")

	withField := WithField(base, "email")
	withOp := WithOp(withField, "leads.create")

	if fe, ok := As(withField); !ok || fe.Field() != "email" {
		t.Fatal("WithField did not annotate")
	}
	if oe, ok := As(withOp); !ok || oe.Op() != "leads.create" {
		t.Fatal("WithOp did not annotate")
	}
	if orig, _ := As(base); orig.Field() != "" || orig.Op() != "" {
		t.Fatal("annotation mutated the original error")
	}
}

func TestWireConversion(t *testing.T) {
	w := (&Error{code: ErrorCodeValidation, msg: "phone malformed", field: "phone"}).ToWire()
	if w.Code != ErrorCodeValidation || w.Message != "phone malformed" || w.Field != "phone" {
		t.Fatalf("ToWire: %+v", w)
	}

	if wf := WireFrom(nil); wf != (Wire{}) {
		t.Fatalf("WireFrom(nil): %+v", wf)
	}

	// foreign errors cross the wire as unknown with their own message
	foreign := stderrs.New("io timeout")
	if wf := WireFrom(foreign); wf.Code != ErrorCodeUnknown || wf.Message != "io timeout" {
		t.Fatalf("WireFrom(foreign): %+v", wf)
	}

	// our errors expose only the annotation, not the chained cause
	ours := Wrapf(foreign, ErrorCodeConflict, "slot taken")
	if wf := WireFrom(ours); wf.Code != ErrorCodeConflict || wf.Message != "slot taken" {
		t.Fatalf("WireFrom(ours): %+v", wf)
	}
}

func TestHTTPHelpers(t *testing.T) {
	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil): %d", st)
	}
	dbErr := Wrap(stderrs.New("down"), ErrorCodeDB, "query")
	if st := HTTPStatus(dbErr); st != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus(db): %d", st)
	}
}

func TestSugarConstructors(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("lead %d", 1), ErrorCodeNotFound},
		{InvalidArgf("weight"), ErrorCodeInvalidArgument},
		{DuplicateKeyf("phone"), ErrorCodeDuplicateKey},
		{DBf("tx"), ErrorCodeDB},
		{JSONErrf("body"), ErrorCodeJSON},
		{PanicErrf("handler"), ErrorCodePanic},
		{Conflictf("slot"), ErrorCodeConflict},
		{Unavailablef("pg"), ErrorCodeUnavailable},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.code) {
			t.Fatalf("IsCode(%v, %v) = false", c.err, c.code)
		}
	}
}

func TestRootAndSentinel(t *testing.T) {
	src := stderrs.New("origin")
	deep := fmt.Errorf("sweep: %w", fmt.Errorf("promote: %w", src))
	if got := Root(deep); got == nil || got.Error() != "origin" {
		t.Fatalf("Root: %v", got)
	}

	if !IsCode(ErrNotFound, ErrorCodeNotFound) {
		t.Fatal("ErrNotFound carries the wrong code")
	}
}
