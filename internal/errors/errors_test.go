package errors

import (
	"fmt"
	"testing"
)

func TestUserError(t *testing.T) {
	err := NewUserError("bad input", "try again")
	if err.Error() != "bad input" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad input")
	}
	if !IsUserError(err) {
		t.Error("IsUserError() = false, want true")
	}
	if got := UserSuggestion(err); got != "try again" {
		t.Errorf("UserSuggestion() = %q, want %q", got, "try again")
	}
}

func TestWrapUserError(t *testing.T) {
	inner := fmt.Errorf("disk full")
	err := WrapUserError(inner, "failed to write CSV file", "free some space")
	if got, want := err.Error(), "failed to write CSV file: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.Unwrap() != inner {
		t.Error("Unwrap() did not return wrapped error")
	}
}

func TestNotFoundError(t *testing.T) {
	err := FileNotFoundError("data.csv")
	if got, want := err.Error(), `file not found "data.csv"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !IsNotFoundError(err) {
		t.Error("IsNotFoundError() = false, want true")
	}
	if IsUserError(err) {
		t.Error("IsUserError() = true for NotFoundError, want false")
	}
}

func TestConverterErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "empty source", err: EmptySourceError(), want: "CSV file is empty"},
		{name: "no table data", err: NoTableDataError(), want: "No valid table data found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
			}
			if !IsUserError(tt.err) {
				t.Error("IsUserError() = false, want true")
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "from", Message: "must be csv or markdown"}
	if got, want := err.Error(), "validation error for from: must be csv or markdown"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !IsValidationError(err) {
		t.Error("IsValidationError() = false, want true")
	}
}

func TestUserSuggestionNone(t *testing.T) {
	if got := UserSuggestion(fmt.Errorf("plain")); got != "" {
		t.Errorf("UserSuggestion() = %q, want empty", got)
	}
}
