package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Entity: "class",
		Fields: map[string]string{
			"name": "name is a required field",
			"end":  "end must be after start",
		},
	}

	expected := "invalid class: end must be after start; name is a required field"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %q, want %q", err.Error(), expected)
	}

	if got := err.Field("color"); got != "" {
		t.Errorf("Field(color) = %q, want empty", got)
	}

	wrapped := fmt.Errorf("saving: %w", err)
	if !IsValidation(wrapped) {
		t.Error("IsValidation should see through wrapping")
	}

	if IsValidation(errors.New("plain")) {
		t.Error("IsValidation(plain error) = true, want false")
	}
}

func TestAmbiguousIDError(t *testing.T) {
	err := &AmbiguousIDError{Prefix: "ab", Matches: 3}

	expected := `id prefix "ab" matches 3 items`
	if err.Error() != expected {
		t.Errorf("AmbiguousIDError.Error() = %q, want %q", err.Error(), expected)
	}
}

func TestErrNotFound_Wrapped(t *testing.T) {
	err := fmt.Errorf("class 123: %w", ErrNotFound)

	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(wrapped, ErrNotFound) = false, want true")
	}
}
