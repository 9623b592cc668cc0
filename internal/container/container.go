package container

import (
	"context"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/chrsc3/BlogListBack/config"
	"github.com/chrsc3/BlogListBack/internal/application"
	"github.com/chrsc3/BlogListBack/internal/infrastructure/events"
	"github.com/chrsc3/BlogListBack/internal/infrastructure/search"
	"github.com/chrsc3/BlogListBack/internal/infrastructure/store"
	"github.com/chrsc3/BlogListBack/pkg/helpers"
)

// Container holds the constructed components shared by the router modules.
// Optional backends (Redis, Elasticsearch, RabbitMQ) may be nil.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Store  *store.Store
	Redis  *redis.Client
	ES     *elasticsearch.Client
	Rabbit *events.Publisher
	Index  *search.BlogIndex

	Blogs *application.BlogService
	Users *application.UserService
}

// New builds the application services on top of the given infrastructure.
func New(cfg *config.Config, logger *logrus.Logger, st *store.Store, rdb *redis.Client, es *elasticsearch.Client, rabbit *events.Publisher) *Container {
	// keep nil pointers out of the interfaces so the services see a real nil
	var blogIndex *search.BlogIndex
	var index application.BlogIndex
	if es != nil {
		blogIndex = search.NewBlogIndex(es, cfg.ESBlogsIndex)
		index = blogIndex
	}
	var publisher application.EventPublisher
	if rabbit != nil {
		publisher = rabbit
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		Store:  st,
		Redis:  rdb,
		ES:     es,
		Rabbit: rabbit,
		Index:  blogIndex,
		Blogs:  application.NewBlogService(st.Blogs, index, publisher, logger),
		Users:  application.NewUserService(st.Users, publisher, logger, cfg.BcryptCost),
	}
}

// RateLimitClient returns the Redis client used by the limiters, or nil when
// rate limiting is switched off.
func (c *Container) RateLimitClient() *redis.Client {
	if !c.Config.RateLimitEnabled {
		return nil
	}
	return c.Redis
}

// Close releases every backend in reverse order of construction.
func (c *Container) Close(ctx context.Context) {
	c.Rabbit.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			helpers.LogError(c.Logger, "close redis", err, nil)
		}
	}
	if c.Store != nil && c.Store.Close != nil {
		if err := c.Store.Close(ctx); err != nil {
			helpers.LogError(c.Logger, "close store", err, logrus.Fields{"driver": c.Store.Driver})
		}
	}
}
