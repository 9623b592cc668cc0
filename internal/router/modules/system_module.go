package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/chrsc3/BlogListBack/internal/interface/http"
	"github.com/chrsc3/BlogListBack/internal/interface/middleware"
)

// SystemModule exposes the health check and, when enabled, expvar metrics.
type SystemModule struct {
	Health       *handlers.HealthHandler
	Redis        *redis.Client
	DebugMetrics bool
}

func NewSystemModule(h *handlers.HealthHandler, rdb *redis.Client, debugMetrics bool) *SystemModule {
	return &SystemModule{Health: h, Redis: rdb, DebugMetrics: debugMetrics}
}

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.Health.Health)

	if m.DebugMetrics {
		rl := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIP())
		rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
	}
}
