package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/iscore/internal/pkg/auth"
	"github.com/polkiloo/iscore/internal/render"
	"github.com/polkiloo/iscore/internal/server/http/dto"
)

const apiKeyHeader = "X-API-Key"

// APIKeyRequired rejects requests without a valid X-API-Key when verification is enabled.
func APIKeyRequired(verifier pkgAuth.KeyVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !verifier.Enabled() {
			c.Next()
			return
		}
		if err := verifier.Verify(c.GetHeader(apiKeyHeader)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: render.Message(err)})
			return
		}
		c.Next()
	}
}
