package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"upireceipts.in/app/internal/shared/apperr"
)

func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler turns errors collected on the context into a JSON response.
// Handlers that already wrote a body are left alone.
func ErrorHandler(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperr.HTTPStatus(err)
		rid := GetRequestID(c)

		l.LogAttrs(c.Request.Context(), slog.LevelError, "request_failed",
			slog.String("request_id", rid),
			slog.Int("status", status),
			slog.Any("err", err),
		)

		payload := gin.H{
			"success":    false,
			"error":      apperr.PublicMessage(err),
			"request_id": rid,
		}
		if ae, ok := apperr.As(err); ok && len(ae.Fields) > 0 {
			payload["fields"] = ae.Fields
		}
		c.AbortWithStatusJSON(status, payload)
	}
}
