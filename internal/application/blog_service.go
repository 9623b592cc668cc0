package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/chrsc3/BlogListBack/internal/domain/entity"
	repo "github.com/chrsc3/BlogListBack/internal/domain/repository"
)

const BlogValidationMessage = "Blog validation failed"

// BlogIndex is the secondary search index kept in sync with the blog store.
type BlogIndex interface {
	Index(ctx context.Context, b *entity.Blog) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q string, size int) ([]entity.Blog, error)
}

type BlogService struct {
	Repo   repo.BlogRepository
	Index  BlogIndex
	Events EventPublisher
	Logger *logrus.Logger
}

func NewBlogService(repo repo.BlogRepository, index BlogIndex, events EventPublisher, logger *logrus.Logger) *BlogService {
	return &BlogService{Repo: repo, Index: index, Events: events, Logger: logger}
}

// blogEvent is the data of blog.created and blog.updated events.
type blogEvent struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

func newBlogEvent(b *entity.Blog) blogEvent {
	return blogEvent{ID: b.ID, Title: b.Title, Author: b.Author, URL: b.URL, Likes: b.Likes}
}

// outOfRange turns a store range rejection into a client error.
func outOfRange(err error) error {
	if errors.Is(err, repo.ErrOutOfRange) {
		return NewValidationError(BlogValidationMessage, map[string]string{"likes": "is out of range"})
	}
	return err
}

type CreateBlogInput struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

func (s *BlogService) List(ctx context.Context) ([]entity.Blog, error) {
	blogs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if blogs == nil {
		blogs = []entity.Blog{}
	}
	return blogs, nil
}

// Create validates in, defaults likes to 0 and stores the blog.
func (s *BlogService) Create(ctx context.Context, in CreateBlogInput) (*entity.Blog, error) {
	details := map[string]string{}
	if in.Title == "" {
		details["title"] = "is required"
	}
	if in.URL == "" {
		details["url"] = "is required"
	}
	if in.Likes != nil && *in.Likes < 0 {
		details["likes"] = "must be 0 or greater"
	}
	if len(details) > 0 {
		return nil, NewValidationError(BlogValidationMessage, details)
	}

	b := &entity.Blog{Title: in.Title, Author: in.Author, URL: in.URL}
	if in.Likes != nil {
		b.Likes = *in.Likes
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, outOfRange(err)
	}

	s.index(ctx, b)
	publish(ctx, s.Events, s.Logger, EventBlogCreated, b.ID, newBlogEvent(b))
	return b, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (*entity.Blog, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update applies a full or partial replacement. Fields left out of the patch
// keep their stored value; fields that are present must still be valid.
func (s *BlogService) Update(ctx context.Context, id string, patch entity.BlogPatch) (*entity.Blog, error) {
	details := map[string]string{}
	if patch.Title != nil && *patch.Title == "" {
		details["title"] = "must not be empty"
	}
	if patch.URL != nil && *patch.URL == "" {
		details["url"] = "must not be empty"
	}
	if patch.Likes != nil && *patch.Likes < 0 {
		details["likes"] = "must be 0 or greater"
	}
	if len(details) > 0 {
		return nil, NewValidationError(BlogValidationMessage, details)
	}

	b, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		return nil, outOfRange(err)
	}

	s.index(ctx, b)
	publish(ctx, s.Events, s.Logger, EventBlogUpdated, b.ID, newBlogEvent(b))
	return b, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.Index != nil {
		if err := s.Index.Delete(ctx, id); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("blog_id", id).Warn("search index delete failed")
		}
	}
	publish(ctx, s.Events, s.Logger, EventBlogDeleted, id, nil)
	return nil
}

// Search queries the search index. Without an index it returns an empty list.
func (s *BlogService) Search(ctx context.Context, q string, size int) ([]entity.Blog, error) {
	if s.Index == nil || q == "" {
		return []entity.Blog{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	return s.Index.Search(ctx, q, size)
}

func (s *BlogService) index(ctx context.Context, b *entity.Blog) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, b); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("blog_id", b.ID).Warn("search index failed")
	}
}
