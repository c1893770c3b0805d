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

// RequestID accepts an inbound X-Request-ID or mints one, and echoes it on
// the response so error payloads and access logs line up with the caller's.
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

// GetRequestID reads the id set by RequestID; empty when the middleware
// did not run.
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
		return "rid-unavailable"
	}
	return hex.EncodeToString(b)
}
