package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindDuplicate, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.Name(), func(t *testing.T) {
			if got := tt.kind.Status(); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestKindName(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindValidation, "ValidationError"},
		{KindUnauthorized, "Unauthorized"},
		{KindForbidden, "Forbidden"},
		{KindNotFound, "ResourceNotFoundError"},
		{KindDuplicate, "DuplicateKeyError"},
		{KindInternal, "InternalServerError"},
	}

	for _, tt := range tests {
		if got := tt.kind.Name(); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestFromExtractsWrappedError(t *testing.T) {
	appErr := NotFound("Personal voice not found")
	wrapped := fmt.Errorf("handler: %w", appErr)

	got := From(wrapped)
	if got == nil {
		t.Fatal("expected to extract the app error")
	}
	if got.Kind != KindNotFound {
		t.Fatalf("expected not found kind, got %v", got.Kind)
	}
}

func TestFromPlainError(t *testing.T) {
	if got := From(errors.New("boom")); got != nil {
		t.Fatalf("expected nil for a plain error, got %v", got)
	}
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to query", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected the cause to be reachable via errors.Is")
	}
	if err.Error() != "failed to query: connection refused" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestValidationCarriesDetails(t *testing.T) {
	err := Validation("Validation failed", "email is required", "password is required")
	if len(err.Details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(err.Details))
	}
}
