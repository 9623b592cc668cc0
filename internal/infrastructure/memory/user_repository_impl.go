package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/chrsc3/BlogListBack/internal/domain/entity"
	"github.com/chrsc3/BlogListBack/internal/domain/repository"
)

type UserRepository struct {
	mu         sync.RWMutex
	users      []entity.User
	byUsername map[string]struct{}
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byUsername: map[string]struct{}{}}
}

// Create checks and inserts under one lock, so concurrent registrations of
// the same username cannot both succeed.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byUsername[u.Username]; taken {
		return repository.ErrDuplicateUsername
	}
	u.ID = uuid.NewString()
	r.users = append(r.users, *u)
	r.byUsername[u.Username] = struct{}{}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
