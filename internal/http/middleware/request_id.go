package middleware

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxKeyRequestID = "request_id"
)

// RequestID tags every request with an id, honoring one supplied by the chat
// provider's callback so a webhook delivery can be correlated across retries.
// The id is echoed in the response header and picked up by the request logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = newRequestID()
		}

		c.Set(CtxKeyRequestID, rid)
		c.Writer.Header().Set(HeaderRequestID, rid)

		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	v, ok := c.Get(CtxKeyRequestID)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func newRequestID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "rid_fallback"
	}
	return hex.EncodeToString(b)
}
