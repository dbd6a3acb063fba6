package middleware

import (
	"context"
	"net/http"
	"strings"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/pkg"

	"github.com/gin-gonic/gin"
)

const (
	AccessCookieName  = "admin_access_token"
	RefreshCookieName = "admin_refresh_token"

	// ContextAdminKey holds the authenticated entities.Admin.
	ContextAdminKey = "admin"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

// Authenticator resolves an access token to an admin.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (entities.Admin, error)
}

// AdminAuth rejects requests without a valid admin access token, read from
// the admin_access_token cookie or an Authorization Bearer header.
func AdminAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := AccessToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		admin, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(ContextAdminKey, admin)
		c.Next()
	}
}

// OptionalAdmin sets the admin when a valid token is present and never aborts.
func OptionalAdmin(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := AccessToken(c); token != "" {
			if admin, err := auth.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(ContextAdminKey, admin)
			}
		}
		c.Next()
	}
}

// AdminFromContext returns the admin set by AdminAuth or OptionalAdmin.
func AdminFromContext(c *gin.Context) (entities.Admin, bool) {
	v, ok := c.Get(ContextAdminKey)
	if !ok {
		return entities.Admin{}, false
	}
	admin, ok := v.(entities.Admin)
	return admin, ok
}

// AccessToken prefers the Authorization header over the cookie.
func AccessToken(c *gin.Context) string {
	if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
		return token
	}
	if cookie, err := c.Cookie(AccessCookieName); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
