package application_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/okiprasetya/user-management-api/internal/domain/entity"
	"github.com/okiprasetya/user-management-api/internal/domain/repository"
)

type mockRepo struct {
	mock.Mock
}

var _ repository.UserRepository = (*mockRepo)(nil)

func (m *mockRepo) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) FindConflict(ctx context.Context, email, username string, excludeID int64) (*entity.User, error) {
	args := m.Called(ctx, email, username, excludeID)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if us, ok := args.Get(0).([]entity.User); ok {
		return us, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
