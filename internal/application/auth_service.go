package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/okiprasetya/user-management-api/internal/domain/entity"
	"github.com/okiprasetya/user-management-api/internal/domain/repository"
	"github.com/okiprasetya/user-management-api/pkg/helpers"
)

// AuthService implements the registration and login flows. Both are
// stateless; every call is independent.
type AuthService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

type LoginResult struct {
	User  entity.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// createUser is the duplicate-checked insert shared by Register and the
// authenticated create-user flow: pre-check on email OR username, bcrypt
// hash, insert. The check and the insert are not one transaction; the
// store's unique constraints backstop the race (see mapStoreErr).
func createUser(ctx context.Context, repo repository.UserRepository, in RegisterInput) (entity.PublicUser, error) {
	existing, err := repo.FindConflict(ctx, in.Email, in.Username, 0)
	if err == nil {
		return entity.PublicUser{}, conflictFrom(existing, in.Email, in.Username)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return entity.PublicUser{}, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return entity.PublicUser{}, err
	}
	u := &entity.User{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := repo.Create(ctx, u); err != nil {
		return entity.PublicUser{}, mapStoreErr(err)
	}
	return u.Public(), nil
}

// Register creates an account when neither email nor username is taken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (entity.PublicUser, error) {
	return createUser(ctx, s.Repo, in)
}

// Login verifies credentials against the stored hash and mints a token.
// An unknown username and a wrong password fail with distinct errors.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrWrongPassword
	}

	token, _, err := s.JWT.GenerateToken(u.ID, u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token signing failed")
		}
		return nil, err
	}
	return &LoginResult{User: u.Public(), Token: token}, nil
}
