package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrap(t *testing.T) {
	originalErr := errors.New("connection refused")
	wrapped := Wrap(originalErr, CodeStoreWrite, "Error creando nuevo hotel")

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if wrapped.Code != CodeStoreWrite {
		t.Errorf("expected code %s, got %s", CodeStoreWrite, wrapped.Code)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			appErr:   New(CodeNotFound, "Hotel no encontrado"),
			expected: "NOT_FOUND: Hotel no encontrado",
		},
		{
			name:     "with underlying error",
			appErr:   StoreRead("Error retrieving hotels", errors.New("server selection timeout")),
			expected: "STORE_READ_FAILED: Error retrieving hotels (caused by: server selection timeout)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := StoreWrite("wrapped", originalErr)

	if !errors.Is(appErr, originalErr) {
		t.Errorf("errors.Is should reach the original error")
	}
}

func TestNotFoundWithID(t *testing.T) {
	err := NotFoundWithID("Hotel", "65a1f0c2e4b0a1b2c3d4e5f6")

	if err.Code != CodeNotFound {
		t.Errorf("expected code %s, got %s", CodeNotFound, err.Code)
	}
	if err.Details["id"] != "65a1f0c2e4b0a1b2c3d4e5f6" {
		t.Errorf("expected id in details, got %v", err.Details["id"])
	}
	if err.Message != "Hotel no encontrado" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound() should be true")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := InvalidInput("bad id")
	wrappedAppErr := fmt.Errorf("context: %w", appErr)
	regularErr := errors.New("regular error")

	if AsAppError(appErr) != appErr {
		t.Errorf("AsAppError() should return same AppError")
	}
	if AsAppError(wrappedAppErr) != appErr {
		t.Errorf("AsAppError() should find an AppError through wrapping")
	}

	result := AsAppError(regularErr)
	if result.Code != CodeInternal {
		t.Errorf("AsAppError() should wrap regular error as internal error")
	}
	if result.Err != regularErr {
		t.Errorf("AsAppError() should wrap the original error")
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(Validation("invalid", nil)) {
		t.Errorf("IsAppError() should return true for AppError")
	}
	if IsAppError(errors.New("regular error")) {
		t.Errorf("IsAppError() should return false for regular error")
	}
}
