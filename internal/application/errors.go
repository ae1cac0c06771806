package application

import (
	"errors"

	"github.com/okiprasetya/user-management-api/internal/domain/entity"
	"github.com/okiprasetya/user-management-api/internal/domain/repository"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

// ConflictError reports a duplicate-identity conflict. Field is the
// attribute already in use; when both email and username collide, email
// wins the tie-break.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Details returns the field-level errors object for the envelope.
func (e *ConflictError) Details() map[string]string {
	return map[string]string{e.Field: "already in use"}
}

func newConflict(field string) *ConflictError {
	msg := "Email already registered"
	if field == "username" {
		msg = "Username already taken"
	}
	return &ConflictError{Field: field, Message: msg}
}

// conflictFrom picks the reported conflict field from an existing record.
// Email is checked first; when neither value matches (both collide on
// different records, or the match is stale) email is still reported.
func conflictFrom(existing *entity.User, email, username string) *ConflictError {
	switch {
	case email != "" && existing.Email == email:
		return newConflict("email")
	case username != "" && existing.Username == username:
		return newConflict("username")
	default:
		return newConflict("email")
	}
}

// mapStoreErr converts repository errors shared across flows: a unique
// violation that slipped past the pre-check becomes the same conflict
// outcome the pre-check would have produced.
func mapStoreErr(err error) error {
	var dup *repository.ErrDuplicate
	if errors.As(err, &dup) {
		return newConflict(dup.Field)
	}
	return err
}
