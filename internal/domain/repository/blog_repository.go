package repository

import (
	"context"

	"github.com/chrsc3/BlogListBack/internal/domain/entity"
)

// BlogRepository defines the persistence operations on blog entries.
type BlogRepository interface {
	// List returns every blog in insertion order.
	List(ctx context.Context) ([]entity.Blog, error)
	// Create stores b and sets b.ID.
	Create(ctx context.Context, b *entity.Blog) error
	GetByID(ctx context.Context, id string) (*entity.Blog, error)
	// Update applies patch and returns the stored record after the change.
	Update(ctx context.Context, id string, patch entity.BlogPatch) (*entity.Blog, error)
	// Delete removes the blog if present. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}
