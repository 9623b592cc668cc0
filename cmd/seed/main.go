package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/chrsc3/BlogListBack/config"
	"github.com/chrsc3/BlogListBack/internal/application"
	"github.com/chrsc3/BlogListBack/internal/container"
	"github.com/chrsc3/BlogListBack/internal/infrastructure/store"
	"github.com/chrsc3/BlogListBack/pkg/helpers"
)

var seedBlogs = []application.CreateBlogInput{
	{Title: "Blog 1", Author: "Juan", URL: "sinUrl", Likes: intPtr(10)},
	{Title: "Blog 2", Author: "Carlos", URL: "sinUrl", Likes: intPtr(100)},
}

func intPtr(i int) *int { return &i }

// seed inserts the reference blogs and the root account. Running it twice
// changes nothing: blogs are matched by title, the user by username.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	ctx := context.Background()

	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.DBDriver, err)
	}
	c := container.New(cfg, logger, st, nil, nil, nil)
	defer c.Close(ctx)

	existing, err := c.Blogs.List(ctx)
	if err != nil {
		log.Fatalf("failed to list blogs: %v", err)
	}
	have := make(map[string]bool, len(existing))
	for _, b := range existing {
		have[b.Title] = true
	}
	for _, in := range seedBlogs {
		if have[in.Title] {
			helpers.LogInfo(logger, "blog exists", logrus.Fields{"title": in.Title})
			continue
		}
		b, err := c.Blogs.Create(ctx, in)
		if err != nil {
			log.Fatalf("failed to seed blog %q: %v", in.Title, err)
		}
		helpers.LogInfo(logger, "seeded blog", logrus.Fields{"id": b.ID, "title": b.Title})
	}

	u, err := c.Users.Register(ctx, application.RegisterInput{Username: "root", Password: "sekret"})
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.LogInfo(logger, "user exists", logrus.Fields{"username": "root"})
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	default:
		helpers.LogInfo(logger, "seeded user", logrus.Fields{"id": u.ID, "username": u.Username})
	}
}
