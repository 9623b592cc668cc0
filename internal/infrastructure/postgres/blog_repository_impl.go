package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/chrsc3/BlogListBack/internal/domain/entity"
	"github.com/chrsc3/BlogListBack/internal/domain/repository"
)

type BlogRepository struct {
	db DBTX
}

func NewBlogRepository(db DBTX) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) List(ctx context.Context) ([]entity.Blog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id::text, title, author, url, likes
		FROM blogs
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]entity.Blog, 0)
	for rows.Next() {
		var b entity.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes); err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return blogs, nil
}

func (r *BlogRepository) Create(ctx context.Context, b *entity.Blog) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO blogs (title, author, url, likes)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text
	`, b.Title, b.Author, b.URL, b.Likes)

	if err := row.Scan(&b.ID); err != nil {
		if isRangeError(err) {
			return repository.ErrOutOfRange
		}
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	b := &entity.Blog{}
	row := r.db.QueryRow(ctx, `
		SELECT id::text, title, author, url, likes
		FROM blogs
		WHERE id = $1
	`, id)

	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return b, nil
}

// Update is a single statement; NULL parameters keep the current column value.
func (r *BlogRepository) Update(ctx context.Context, id string, patch entity.BlogPatch) (*entity.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	b := &entity.Blog{}
	row := r.db.QueryRow(ctx, `
		UPDATE blogs
		SET title = COALESCE($2, title),
		    author = COALESCE($3, author),
		    url = COALESCE($4, url),
		    likes = COALESCE($5, likes)
		WHERE id = $1
		RETURNING id::text, title, author, url, likes
	`, id, patch.Title, patch.Author, patch.URL, patch.Likes)

	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		if isRangeError(err) {
			return nil, repository.ErrOutOfRange
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return b, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	return nil
}

var _ repository.BlogRepository = (*BlogRepository)(nil)
