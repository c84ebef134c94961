package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"care-companion/pkg/response"
)

// HeaderAPIKey is the header carrying the service API key.
const HeaderAPIKey = "X-API-Key"

// Auth validates the service API key. When no key is configured the
// middleware is a no-op, which keeps local development friction-free.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		got := c.GetHeader(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.apiKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
