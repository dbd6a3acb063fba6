package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

// MetricsAuth guards the prometheus endpoint with a static Bearer token.
// An empty token leaves the endpoint open, which is what local setups use.
func MetricsAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		got, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}
