package middleware

import (
	"log/slog"
	"net/http"

	"meeting-room-approval/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the envelope recorded by httperr.AbortWithError when
// the handler itself wrote nothing.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// latest public error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.InternalResponse())
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				attrs := []any{"error", err, "method", c.Request.Method, "path", c.Request.URL.Path, "request_id", GetRequestID(c)}
				if userID, ok := GetUserID(c); ok {
					attrs = append(attrs, "user_id", userID)
				}
				slog.Error("recovered from panic", attrs...)

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.InternalResponse())
			}
		}()
		c.Next()
	}
}
