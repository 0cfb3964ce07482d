package logger

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic and must be usable
	l.Info().Msg("discarded")
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	if child == nil {
		t.Fatal("expected non-nil child logger")
	}
	if child == parent {
		t.Fatal("expected child logger to be a distinct instance")
	}
}

func TestFromContext_NeverNil(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected non-nil logger from empty context")
	}
}

func TestFromRequest_RoundTrip(t *testing.T) {
	l := Nop()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	if FromRequest(r) == nil {
		t.Fatal("expected non-nil logger from request")
	}
}
