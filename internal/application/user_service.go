package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/okiprasetya/user-management-api/internal/domain/entity"
	"github.com/okiprasetya/user-management-api/internal/domain/repository"
	"github.com/okiprasetya/user-management-api/pkg/helpers"
)

// UserService implements the token-gated CRUD flows. Every returned user
// passes through entity.User.Public, so the password hash never leaves
// this layer.
type UserService struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

// UpdateInput carries the optional fields of a partial update; nil means
// the stored value is retained.
type UpdateInput struct {
	Name     *string
	Username *string
	Email    *string
	Password *string
}

// List returns all users, newest first.
func (s *UserService) List(ctx context.Context) ([]entity.PublicUser, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (entity.PublicUser, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.PublicUser{}, ErrUserNotFound
		}
		return entity.PublicUser{}, err
	}
	return u.Public(), nil
}

// Create mirrors registration behind authentication, including the
// duplicate check and its tie-break.
func (s *UserService) Create(ctx context.Context, in RegisterInput) (entity.PublicUser, error) {
	return createUser(ctx, s.Repo, in)
}

// Update applies only the provided fields. The duplicate check covers the
// provided email/username and excludes the target's own record; a provided
// password is re-hashed, an absent one keeps the stored hash.
func (s *UserService) Update(ctx context.Context, id int64, in UpdateInput) (entity.PublicUser, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.PublicUser{}, ErrUserNotFound
		}
		return entity.PublicUser{}, err
	}

	email, username := "", ""
	if in.Email != nil {
		email = *in.Email
	}
	if in.Username != nil {
		username = *in.Username
	}
	if email != "" || username != "" {
		existing, err := s.Repo.FindConflict(ctx, email, username, id)
		if err == nil {
			return entity.PublicUser{}, conflictFrom(existing, email, username)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return entity.PublicUser{}, err
		}
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := helpers.HashPassword(*in.Password)
		if err != nil {
			return entity.PublicUser{}, err
		}
		u.PasswordHash = hash
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.PublicUser{}, ErrUserNotFound
		}
		return entity.PublicUser{}, mapStoreErr(err)
	}
	return u.Public(), nil
}

// Delete removes the record physically; there is no soft delete.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
