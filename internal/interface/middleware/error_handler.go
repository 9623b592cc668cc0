package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/chrsc3/BlogListBack/internal/application"
	"github.com/chrsc3/BlogListBack/internal/domain/repository"
	"github.com/chrsc3/BlogListBack/pkg/helpers"
	"github.com/chrsc3/BlogListBack/pkg/response"
)

// ErrorHandler is the single place where handler errors become HTTP responses.
// Handlers attach errors with c.Error and return without writing.
//
//   - *application.ValidationError -> 400 with field details
//   - repository.ErrNotFound       -> 404 with an empty body
//   - anything else                -> 500, logged, cause not exposed
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var verr *application.ValidationError
		switch {
		case errors.As(err, &verr):
			response.Error(c, http.StatusBadRequest, verr.Error(), verr.Details)
		case errors.Is(err, repository.ErrNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			helpers.LogError(logger, "request failed", err, logrus.Fields{
				"request_id": c.GetString("request_id"),
				"method":     c.Request.Method,
				"path":       c.FullPath(),
			})
			response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		}
	}
}
