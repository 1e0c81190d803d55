package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("weight", "must be a number greater than 0")

	if got := err.Error(); got != "validation: weight — must be a number greater than 0" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "weight", Message: "must be greater than 0"},
		{Field: "city", Message: "required"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewValidationError("age", "must be a whole number greater than 0")
	if !errors.Is(err, ErrValidation) {
		t.Fatal("Unwrap should return ErrValidation")
	}
}

func TestValidationError_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	// Services wrap with operation context; the field detail must stay
	// reachable for transports.
	wrapped := fmt.Errorf("submit setup value: %w", NewValidationError("city", "must not be empty"))

	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through the wrap")
	}
	if ve.Errors[0].Field != "city" {
		t.Errorf("field = %q, want city", ve.Errors[0].Field)
	}
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("errors.Is(wrapped, ErrValidation) = false")
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrValidation, ErrNoProfile,
		ErrNoActiveSession, ErrLookupUnavailable, ErrInvalidAmount,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
