package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/chrsc3/BlogListBack/config"
	repo "github.com/chrsc3/BlogListBack/internal/domain/repository"
	"github.com/chrsc3/BlogListBack/internal/infrastructure/memory"
	"github.com/chrsc3/BlogListBack/internal/infrastructure/mongodb"
	"github.com/chrsc3/BlogListBack/internal/infrastructure/postgres"
)

// Store bundles the repositories of one backing database together with its
// health check and shutdown hook.
type Store struct {
	Driver string
	Blogs  repo.BlogRepository
	Users  repo.UserRepository
	Ping   func(ctx context.Context) error
	Close  func(ctx context.Context) error
}

// Open connects to the database selected by cfg.DBDriver and prepares it:
// the unique username index for MongoDB, migrations for Postgres.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Store, error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		return openMongo(ctx, cfg, logger)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	case config.DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

// NewMemory returns a process-local store. Data is lost on exit.
func NewMemory() *Store {
	return &Store{
		Driver: config.DriverMemory,
		Blogs:  memory.NewBlogRepository(),
		Users:  memory.NewUserRepository(),
		Ping:   func(context.Context) error { return nil },
		Close:  func(context.Context) error { return nil },
	}
}

func openMongo(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Store, error) {
	client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoTimeout)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	db := client.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ensure mongodb indexes: %w", err)
	}
	logger.WithField("database", cfg.MongoDatabase).Info("connected to MongoDB")
	return &Store{
		Driver: config.DriverMongo,
		Blogs:  mongodb.NewBlogRepository(db),
		Users:  mongodb.NewUserRepository(db),
		Ping:   func(ctx context.Context) error { return client.Ping(ctx, nil) },
		Close:  client.Disconnect,
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Store, error) {
	dsn := cfg.PostgresDSN()
	if err := postgres.RunMigrations(dsn, cfg.MigrationsDir, logger); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{
		MaxConns:    cfg.DBMaxConns,
		MinConns:    cfg.DBMinConns,
		MaxConnLife: cfg.DBMaxConnLife,
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	logger.WithField("database", cfg.DBName).Info("connected to Postgres")
	return &Store{
		Driver: config.DriverPostgres,
		Blogs:  postgres.NewBlogRepository(pool),
		Users:  postgres.NewUserRepository(pool),
		Ping:   pool.Ping,
		Close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}
