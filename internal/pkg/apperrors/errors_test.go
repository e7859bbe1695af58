package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCustomErrorUnwrapsToSentinel(t *testing.T) {
	err := NewForbiddenError("Access denied. Admin only.")

	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected forbidden error to match ErrPermissionDenied")
	}
	if err.Error() != "Access denied. Admin only." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestIsMatchesAnyOfList(t *testing.T) {
	wrapped := fmt.Errorf("lookup failed: %w", ErrPlacementNotFound)

	if !Is(wrapped, ErrUserNotFound, ErrCompanyVisitNotFound, ErrPlacementNotFound) {
		t.Fatalf("expected wrapped error to match one of the list")
	}
	if Is(wrapped, ErrUserNotFound) {
		t.Fatalf("did not expect match against ErrUserNotFound")
	}
}

func TestCustomErrorFallsBackToWrappedMessage(t *testing.T) {
	err := &CustomError{Err: ErrBadRequest}
	if err.Error() != ErrBadRequest.Error() {
		t.Fatalf("expected wrapped message, got %q", err.Error())
	}

	if (&CustomError{}).Error() != "unknown error" {
		t.Fatalf("expected unknown error for empty CustomError")
	}
}
