package repository

import (
	"context"
	"errors"

	"github.com/okiprasetya/user-management-api/internal/domain/entity"
)

// ErrNotFound is returned when no record matches the given identifier.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update trips a store-level
// unique constraint. Field names the offending column (email or username).
type ErrDuplicate struct {
	Field string
}

func (e *ErrDuplicate) Error() string { return "duplicate " + e.Field }

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// FindConflict looks up any record whose email or username matches the
	// given values, skipping empty values and the excluded id (0 = none).
	FindConflict(ctx context.Context, email, username string, excludeID int64) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) error
}
