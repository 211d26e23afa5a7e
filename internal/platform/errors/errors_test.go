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
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnauthenticated, http.StatusUnauthorized},
		{ErrorCodeProvider, http.StatusBadGateway},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeNotImplemented, http.StatusNotImplemented},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrorCodeUnknown:         "unknown",
		ErrorCodePanic:           "panic",
		ErrorCodeUnavailable:     "unavailable",
		ErrorCodeUnauthenticated: "unauthenticated",
		ErrorCodeInvalidArgument: "invalid_argument",
		ErrorCodeJSON:            "json",
		ErrorCodeProvider:        "provider",
		ErrorCodeNotImplemented:  "not_implemented",
		ErrorCode(777):           "unknown",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("ErrorCode(%d).String() = %q, want %q", code, got, want)
		}
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeInvalidArgument, "bad stuff")
	if CodeOf(e1) != ErrorCodeInvalidArgument {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeProvider, "provider failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	e4 := Wrapf(src, ErrorCodeUnauthenticated, "nope %s", "here")
	if want := "nope here: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}
	if got, ok := As(e4); !ok || got.Code() != ErrorCodeUnauthenticated || got.Message() != "nope here" {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// copy-on-write mutators
	e5 := Wrap(src, ErrorCodeInvalidArgument, "oops")
	e6 := WithField(e5, "phoneNumber")
	e7 := WithOp(e6, "decode")
	e8 := WithReason(e7, "VerifyNumberError")
	e9 := WithDetails(e8, "phoneNumber")
	if FieldOf(e6) != "phoneNumber" {
		t.Fatalf("WithField failed")
	}
	if oe, _ := As(e7); oe.Op() != "decode" {
		t.Fatalf("WithOp failed")
	}
	if ReasonOf(e8) != "VerifyNumberError" {
		t.Fatalf("WithReason failed")
	}
	if de, _ := As(e9); de.Details() != "phoneNumber" {
		t.Fatalf("WithDetails failed")
	}
	if fe0, _ := As(e5); fe0.Field() != "" || fe0.Op() != "" || fe0.Reason() != "" || fe0.Details() != nil {
		t.Fatalf("copy-on-write mutated original")
	}

	// foreign errors
	if WithField(src, "x") != src || WithOp(src, "x") != src || WithDetails(src, 1) != src {
		t.Fatalf("mutators should pass foreign errors through")
	}
	wr := WithReason(src, "LoginError")
	if we, ok := As(wr); !ok || we.Code() != ErrorCodeUnknown || we.Reason() != "LoginError" {
		t.Fatalf("WithReason should wrap foreign errors: %+v", we)
	}
	if WithReason(nil, "x") != nil {
		t.Fatalf("WithReason(nil) should be nil")
	}
	if ReasonOf(src) != "" || FieldOf(src) != "" {
		t.Fatalf("foreign errors carry no reason or field")
	}

	// Wire
	w := (&Error{code: ErrorCodeProvider, msg: "nope", reason: "SendMediaSendError", details: "d"}).ToWire()
	if w.Code != ErrorCodeProvider || w.Message != "nope" || w.Reason != "SendMediaSendError" || w.Details != "d" {
		t.Fatalf("ToWire mismatch: %+v", w)
	}
	if wf := WireFrom(nil); wf != (Wire{}) {
		t.Fatalf("WireFrom(nil) expected zero, got %+v", wf)
	}
	if wf := WireFrom(src); wf.Code != ErrorCodeUnknown || wf.Message != "root" {
		t.Fatalf("WireFrom(foreign) mismatch: %+v", wf)
	}
	if wf := WireFrom(e4); wf.Message != "nope here" {
		t.Fatalf("WireFrom(ours) mismatch: %+v", wf)
	}

	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil) status = %d", st)
	}
	if st, wire := HTTP(e3); st != http.StatusBadGateway || wire.Code != ErrorCodeProvider {
		t.Fatalf("HTTP(e3) = %d %+v", st, wire)
	}

	if !IsCode(InvalidArgf("x"), ErrorCodeInvalidArgument) ||
		!IsCode(JSONErrf("x"), ErrorCodeJSON) ||
		!IsCode(PanicErrf("x"), ErrorCodePanic) ||
		!IsCode(Unauthenticatedf("x"), ErrorCodeUnauthenticated) ||
		!IsCode(Unavailablef("x"), ErrorCodeUnavailable) ||
		!IsCode(Providerf("x"), ErrorCodeProvider) ||
		!IsCode(Internalf("x"), ErrorCodeUnknown) {
		t.Fatalf("sugar helpers code mismatch")
	}

	deep := fmt.Errorf("level2: %w", fmt.Errorf("level1: %w", src))
	if got := Root(deep); got == nil || got.Error() != "root" {
		t.Fatalf("Root() failed, got %v", got)
	}
}
