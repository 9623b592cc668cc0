package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every client or server error.
type ErrorBody struct {
	Error     string            `json:"error"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// JSON writes data as the response body. Records are sent bare, without an envelope.
func JSON(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

// Error aborts the chain and writes an ErrorBody.
func Error(ctx *gin.Context, status int, message string, details map[string]string) {
	ctx.AbortWithStatusJSON(status, ErrorBody{
		Error:     message,
		Details:   details,
		RequestID: ctx.GetString("request_id"),
	})
}
