package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"clinicbook/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "Configuration", err: failure.Configuration("no settings"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("nope"), code: http.StatusUnauthorized},
		{name: "NotFound", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("slot taken"), code: http.StatusConflict},
		{name: "Forbidden", err: failure.Forbidden("no"), code: http.StatusForbidden},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("creating booking: %w", failure.Conflict("slot taken"))
	if got := failure.GetCode(wrapped); got != http.StatusConflict {
		t.Errorf("expected wrapped failure to keep code %d, got %d", http.StatusConflict, got)
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("disk on fire")); got != http.StatusInternalServerError {
		t.Errorf("expected plain error to map to 500, got %d", got)
	}
}

func TestNilErrors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("BadRequest(nil) should be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("InternalError(nil) should be nil")
	}
}
