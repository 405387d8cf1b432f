// Package middleware holds the gin middleware shared by all routes.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orderdesk/orderdesk/internal/authz"
)

// CallerKey is the gin context key under which the resolved caller is
// stored for handlers.
const CallerKey = "caller"

// AuthCookieName is the cookie carrying the access token as a fallback
// to the Authorization header.
const AuthCookieName = "orderdesk_token"

// CallerResolver validates an access token into a caller identity.
type CallerResolver interface {
	ResolveCaller(ctx context.Context, accessToken string) (authz.Caller, error)
}

// AuthRequired rejects requests without a valid access token and stores
// the resolved caller in the request context.
func AuthRequired(resolver CallerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
			return
		}
		caller, err := resolver.ResolveCaller(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(CallerKey, caller)
		c.Next()
	}
}

// ExtractToken pulls the bearer token from the Authorization header,
// falling back to the auth cookie.
func ExtractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie stores the access token in the auth cookie.
func SetAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(AuthCookieName, token, maxAge, "/", "", false, true)
}
