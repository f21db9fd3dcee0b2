package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tabletop-events-api/internal/auth"
	"tabletop-events-api/internal/response"
)

// SessionResolver turns a session token into the calling account
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*auth.Caller, *auth.SessionClaims, error)
}

var errBadHeader = errors.New("invalid authorization header format")

// extractToken reads the bearer token, falling back to the session cookie.
// It returns "" when the request carries neither.
func extractToken(c *gin.Context, cookieName string) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", errBadHeader
		}
		return strings.TrimSpace(parts[1]), nil
	}
	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
			return cookie, nil
		}
	}
	return "", nil
}

func resolve(c *gin.Context, resolver SessionResolver, token string) (*auth.Caller, *auth.SessionClaims, error) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	return resolver.Resolve(ctx, token)
}

func isCredentialError(err error) bool {
	return errors.Is(err, auth.ErrInvalidToken) ||
		errors.Is(err, auth.ErrRevokedToken) ||
		errors.Is(err, auth.ErrUnknownAccount)
}

// RequireAuth rejects requests without a valid session and stores the
// caller for downstream handlers.
func RequireAuth(resolver SessionResolver, cookieName string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c, cookieName)
		if err != nil {
			response.AbortWithError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid authorization header format")
			return
		}
		if token == "" {
			response.AbortWithError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
			return
		}

		caller, claims, err := resolve(c, resolver, token)
		if err != nil {
			if isCredentialError(err) {
				message := "Invalid or expired token"
				if errors.Is(err, auth.ErrRevokedToken) {
					message = "Session has been revoked"
				}
				response.AbortWithError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, message)
				return
			}
			logger.Error("Failed to resolve session", zap.Error(err), zap.String("path", c.Request.URL.Path))
			response.AbortWithError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
			return
		}

		auth.SetCaller(c, caller, claims)
		c.Next()
	}
}

// OptionalAuth stores the caller when a valid session is presented and
// otherwise lets the request through anonymously.
func OptionalAuth(resolver SessionResolver, cookieName string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c, cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		caller, claims, err := resolve(c, resolver, token)
		if err != nil {
			if !isCredentialError(err) {
				logger.Warn("Failed to resolve optional session", zap.Error(err))
			}
			c.Next()
			return
		}

		auth.SetCaller(c, caller, claims)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := auth.CallerFrom(c)
		if !ok {
			response.AbortWithError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
			return
		}
		if !caller.IsAdmin {
			response.AbortWithError(c, http.StatusForbidden, response.ErrCodeForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}
