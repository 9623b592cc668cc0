package repository

import (
	"context"

	"github.com/chrsc3/BlogListBack/internal/domain/entity"
)

// UserRepository defines the persistence operations on user accounts.
type UserRepository interface {
	// Create inserts u and sets u.ID. The uniqueness of Username must be
	// enforced by the store in the same operation; a conflict yields
	// ErrDuplicateUsername.
	Create(ctx context.Context, u *entity.User) error
	List(ctx context.Context) ([]entity.User, error)
}
