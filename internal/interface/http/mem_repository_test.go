package handlers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/okiprasetya/user-management-api/internal/domain/entity"
	"github.com/okiprasetya/user-management-api/internal/domain/repository"
)

// memRepo is an in-memory stand-in for the Postgres repository, enforcing
// the same uniqueness rules, ordering, and email-first conflict lookup.
type memRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]*entity.User
}

var _ repository.UserRepository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{users: map[int64]*entity.User{}}
}

func clone(u *entity.User) *entity.User {
	cp := *u
	return &cp
}

func (m *memRepo) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.Email == u.Email {
			return &repository.ErrDuplicate{Field: "email"}
		}
		if e.Username == u.Username {
			return &repository.ErrDuplicate{Field: "username"}
		}
	}
	m.seq++
	u.ID = m.seq
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	m.users[u.ID] = clone(u)
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return clone(u), nil
	}
	return nil, repository.ErrNotFound
}

func (m *memRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return clone(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memRepo) FindConflict(_ context.Context, email, username string, excludeID int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// email matches take precedence, as in the SQL ordering
	if email != "" {
		for _, u := range m.users {
			if u.ID != excludeID && u.Email == email {
				return clone(u), nil
			}
		}
	}
	if username != "" {
		for _, u := range m.users {
			if u.ID != excludeID && u.Username == username {
				return clone(u), nil
			}
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memRepo) List(_ context.Context) ([]entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memRepo) Update(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, e := range m.users {
		if e.ID == u.ID {
			continue
		}
		if e.Email == u.Email {
			return &repository.ErrDuplicate{Field: "email"}
		}
		if e.Username == u.Username {
			return &repository.ErrDuplicate{Field: "username"}
		}
	}
	u.UpdatedAt = time.Now()
	m.users[u.ID] = clone(u)
	return nil
}

func (m *memRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, id)
	return nil
}
