// Package memory keeps blogs and users in process memory. It backs
// DB_DRIVER=memory and the HTTP tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/chrsc3/BlogListBack/internal/domain/entity"
	"github.com/chrsc3/BlogListBack/internal/domain/repository"
)

type BlogRepository struct {
	mu    sync.RWMutex
	order []string
	blogs map[string]entity.Blog
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{blogs: map[string]entity.Blog{}}
}

func (r *BlogRepository) List(ctx context.Context) ([]entity.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Blog, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.blogs[id])
	}
	return out, nil
}

func (r *BlogRepository) Create(ctx context.Context, b *entity.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = uuid.NewString()
	r.blogs[b.ID] = *b
	r.order = append(r.order, b.ID)
	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.blogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (r *BlogRepository) Update(ctx context.Context, id string, patch entity.BlogPatch) (*entity.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(&b)
	r.blogs[id] = b
	return &b, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blogs[id]; !ok {
		return nil
	}
	delete(r.blogs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

var _ repository.BlogRepository = (*BlogRepository)(nil)
