package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/chrsc3/BlogListBack/internal/interface/http"
	"github.com/chrsc3/BlogListBack/internal/interface/middleware"
)

// BlogModule wires the blog CRUD and search handlers.
// Reads are open; writes share a per-IP limiter per route.
type BlogModule struct {
	Handler *handlers.BlogHandler
	Redis   *redis.Client
}

func NewBlogModule(h *handlers.BlogHandler, rdb *redis.Client) *BlogModule {
	return &BlogModule{Handler: h, Redis: rdb}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIPAndPath())   // 60 req/min per IP and route
	searchLimiter := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIPAndPath()) // ES backed

	blogs := rg.Group("/blogs")
	{
		blogs.GET("", m.Handler.List)
		blogs.GET("/search", searchLimiter, m.Handler.Search)
		blogs.GET("/:id", m.Handler.Get)
		blogs.POST("", writeLimiter, m.Handler.Create)
		blogs.PUT("/:id", writeLimiter, m.Handler.Update)
		blogs.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}
