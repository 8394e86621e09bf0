package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MediBookLabs/clinic-scheduler/internal/auth"
	"github.com/MediBookLabs/clinic-scheduler/internal/config"
	"github.com/MediBookLabs/clinic-scheduler/internal/httperr"
	"github.com/MediBookLabs/clinic-scheduler/internal/models"
)

const ContextUserEmail = "userEmail"

// RoleLookup resolves the stored role for an email. An empty role with
// a nil error means the user exists but holds no elevated privileges.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// Authenticate is the bearer-token guard. No credential at all is 401;
// a credential that fails verification is 403. On failure the response
// is already written and ok is false.
func Authenticate(c *gin.Context, cfg *config.Config) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(401, httperr.HTTPError{Message: httperr.MsgUnauthorized})
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		c.AbortWithStatusJSON(403, httperr.HTTPError{Message: httperr.MsgForbidden})
		return "", false
	}

	claims, err := auth.ParseToken(parts[1], cfg.JWTSecret)
	if err != nil {
		c.AbortWithStatusJSON(403, httperr.HTTPError{Message: httperr.MsgForbidden})
		return "", false
	}

	c.Set(ContextUserEmail, claims.Email)
	return claims.Email, true
}

// AuthorizeAdmin is the admin guard, run after Authenticate. The
// caller's stored role has to be exactly "admin"; a missing user
// record also fails. Writes 403 and returns false on failure.
func AuthorizeAdmin(c *gin.Context, roles RoleLookup, email string) bool {
	role, err := roles.RoleByEmail(c.Request.Context(), email)
	if err != nil || role != models.RoleAdmin {
		c.AbortWithStatusJSON(403, httperr.HTTPError{Message: httperr.MsgForbidden})
		return false
	}
	return true
}

// RequireAuth adapts the Authenticate guard into route middleware.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Authenticate(c, cfg); !ok {
			return
		}
		c.Next()
	}
}

// RequireAdmin must be chained after RequireAuth.
func RequireAdmin(roles RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := c.Get(ContextUserEmail)
		if !ok {
			c.AbortWithStatusJSON(403, httperr.HTTPError{Message: httperr.MsgForbidden})
			return
		}

		if !AuthorizeAdmin(c, roles, email.(string)) {
			return
		}

		c.Next()
	}
}
