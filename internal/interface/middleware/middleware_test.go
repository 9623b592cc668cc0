package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrsc3/BlogListBack/internal/application"
	"github.com/chrsc3/BlogListBack/internal/domain/repository"
	"github.com/chrsc3/BlogListBack/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware(), ErrorHandler(helpers.NewNopLogger()))
	r.GET("/validation", func(c *gin.Context) {
		_ = c.Error(application.NewValidationError("Blog validation failed", map[string]string{"title": "is required"}))
	})
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(repository.ErrNotFound)
	})
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("pq: connection refused"))
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := serve(r, http.MethodGet, "/validation", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Blog validation failed: title: is required","details":{"title":"is required"},"request_id":"`+w.Header().Get(RequestIDHeader)+`"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())

	w = serve(r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused")

	w = serve(r, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	incoming := "0b6f3a0e-1c1d-4c55-8f3e-1e2d3c4b5a69"
	w := serve(r, http.MethodGet, "/", map[string]string{RequestIDHeader: incoming})
	assert.Equal(t, incoming, w.Body.String())
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	w = serve(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "not a uuid"})
	assert.NotEqual(t, "not a uuid", w.Body.String())
	assert.Len(t, w.Body.String(), 36)
}

func TestRealIP(t *testing.T) {
	for _, tc := range []struct {
		name       string
		trustProxy bool
		headers    map[string]string
		want       string
	}{
		{"cloudflare", true, map[string]string{"CF-Connecting-IP": "203.0.113.7"}, "203.0.113.7"},
		{"forwarded for", true, map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"}, "198.51.100.1"},
		{"headers ignored without trust", false, map[string]string{"CF-Connecting-IP": "203.0.113.7"}, "192.0.2.1"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RealIP(tc.trustProxy))
			r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("real_ip")) })

			w := serve(r, http.MethodGet, "/", tc.headers)
			assert.Equal(t, tc.want, w.Body.String())
		})
	}
}

func TestRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.POST("/api/users", RateLimit(rdb, 2, time.Minute, KeyByIPAndPath()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	for i := 0; i < 2; i++ {
		w := serve(r, http.MethodPost, "/api/users", nil)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := serve(r, http.MethodPost, "/api/users", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	mr.FastForward(time.Minute + time.Second)
	w = serve(r, http.MethodPost, "/api/users", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRateLimit_DisabledWithoutRedis(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(nil, 1, time.Minute, KeyByIP()), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	r := gin.New()
	r.GET("/", RateLimit(rdb, 1, time.Minute, KeyByIP()), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
}
