package nautobot

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAuthErrorMessage(t *testing.T) {
	err := &AuthError{StatusCode: 401, Message: "invalid token"}
	want := "authentication failed (401): invalid token"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := &AuthError{StatusCode: 403}
	if bare.Error() != "authentication failed (403)" {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestConnectionErrorUnwrap(t *testing.T) {
	inner := errors.New("dial tcp: connection refused")
	err := &ConnectionError{Message: "request failed", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("ConnectionError should unwrap to the transport error")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 500, Body: "internal server error"}
	want := "API error 500: internal server error"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorKindPredicates(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantAuth bool
		wantConn bool
		wantAPI  bool
	}{
		{
			name:     "auth error",
			err:      &AuthError{StatusCode: 401},
			wantAuth: true,
		},
		{
			name:     "connection error",
			err:      &ConnectionError{Message: "refused"},
			wantConn: true,
		},
		{
			name:    "API error",
			err:     &APIError{StatusCode: 500},
			wantAPI: true,
		},
		{
			name:     "wrapped auth error",
			err:      fmt.Errorf("tool failed: %w", &AuthError{StatusCode: 403}),
			wantAuth: true,
		},
		{
			name: "plain error",
			err:  errors.New("something else"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuth(tt.err); got != tt.wantAuth {
				t.Errorf("IsAuth = %v, want %v", got, tt.wantAuth)
			}
			if got := IsConnection(tt.err); got != tt.wantConn {
				t.Errorf("IsConnection = %v, want %v", got, tt.wantConn)
			}
			if got := IsAPI(tt.err); got != tt.wantAPI {
				t.Errorf("IsAPI = %v, want %v", got, tt.wantAPI)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&APIError{StatusCode: http.StatusNotFound}) {
		t.Error("404 APIError should be not-found")
	}
	if IsNotFound(&APIError{StatusCode: http.StatusInternalServerError}) {
		t.Error("500 APIError should not be not-found")
	}
	if IsNotFound(&ConnectionError{Message: "refused"}) {
		t.Error("ConnectionError should not be not-found")
	}
	if !IsNotFound(fmt.Errorf("lookup: %w", &APIError{StatusCode: 404})) {
		t.Error("wrapped 404 should be not-found")
	}
}
