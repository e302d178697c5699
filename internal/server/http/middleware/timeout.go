package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// LookupTimeout bounds the time handlers may spend on store lookups.
func LookupTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
