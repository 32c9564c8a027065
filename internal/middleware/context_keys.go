package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/poultrymitra/mitra_backend/internal/core/domain"
)

// principalKey is the key used to store the authenticated caller in the request context.
const principalKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying the authenticated caller.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipalFromContext retrieves the authenticated caller from the Gin request context.
// It returns the principal and a boolean indicating if it was found.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	p, ok := c.Request.Context().Value(principalKey).(domain.Principal)
	if !ok || p.UserID == "" {
		return domain.Principal{}, false
	}
	return p, true
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	p, ok := GetPrincipalFromContext(c)
	return p.UserID, ok
}
