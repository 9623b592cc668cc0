package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/chrsc3/BlogListBack/config"
	"github.com/chrsc3/BlogListBack/internal/container"
	"github.com/chrsc3/BlogListBack/internal/infrastructure/events"
	"github.com/chrsc3/BlogListBack/internal/infrastructure/search"
	"github.com/chrsc3/BlogListBack/internal/infrastructure/store"
	"github.com/chrsc3/BlogListBack/internal/router"
	"github.com/chrsc3/BlogListBack/pkg/helpers"
	"github.com/chrsc3/BlogListBack/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Store (mongo, postgres or memory)
	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.DBDriver, err)
	}

	// Redis (rate limiting)
	rdb, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable, rate limiting disabled")
		rdb = nil
	}

	// Elasticsearch (blog search)
	es, err := search.NewClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		logger.WithError(err).Warn("elasticsearch client init failed, search disabled")
		es = nil
	}

	// RabbitMQ (domain events)
	rabbit, err := events.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange, cfg.RabbitMQEventsQueue)
	if err != nil {
		logger.WithError(err).Warn("rabbitmq unavailable, events disabled")
		rabbit = nil
	}

	c := container.New(cfg, logger, st, rdb, es, rabbit)
	if c.Index != nil {
		if err := c.Index.EnsureIndex(ctx); err != nil {
			logger.WithError(err).Warn("could not prepare blog search index")
		}
	}
	r := router.NewEngine(c)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.WithField("driver", st.Driver).Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}
	c.Close(ctxShutdown)
	logger.Info("server exited properly")
}
