package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/chrsc3/BlogListBack/pkg/helpers"
	"github.com/chrsc3/BlogListBack/pkg/response"
)

// PingFunc reports whether a backing service answers.
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	Driver string
	Ping   PingFunc
	Logger *logrus.Logger
}

func NewHealthHandler(driver string, ping PingFunc, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{Driver: driver, Ping: ping, Logger: logger}
}

func (h *HealthHandler) Health(c *gin.Context) {
	if h.Ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.Ping(ctx); err != nil {
			helpers.LogError(h.Logger, "health check failed", err, logrus.Fields{"driver": h.Driver})
			response.Error(c, http.StatusServiceUnavailable, "store unavailable", map[string]string{"store": h.Driver})
			return
		}
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "ok", "store": h.Driver})
}
