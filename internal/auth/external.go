package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ExternalVerifier validates tokens minted by an external identity provider
type ExternalVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// providerClaims covers the common shapes of hosted identity providers
type providerClaims struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	AppMetadata struct {
		Roles []string `json:"roles,omitempty"`
	} `json:"app_metadata"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
	jwt.RegisteredClaims
}

func (c *providerClaims) identity() Identity {
	admin := strings.EqualFold(c.Role, "admin")
	for _, r := range c.AppMetadata.Roles {
		if strings.EqualFold(r, "admin") {
			admin = true
		}
	}
	name := c.Name
	if name == "" {
		name = c.UserMetadata.FullName
	}
	return Identity{Subject: c.Subject, Email: c.Email, Name: name, AdminFlag: admin}
}

// JWKSVerifier verifies provider tokens against a remote JWKS that is
// refreshed in the background.
type JWKSVerifier struct {
	jwks *keyfunc.JWKS
}

// NewJWKSVerifier downloads the key set at jwksURL
func NewJWKSVerifier(ctx context.Context, jwksURL string, onRefreshError func(error)) (*JWKSVerifier, error) {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx:                 ctx,
		RefreshInterval:     time.Hour,
		RefreshRateLimit:    5 * time.Minute,
		RefreshTimeout:      10 * time.Second,
		RefreshUnknownKID:   true,
		RefreshErrorHandler: onRefreshError,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load JWKS from %s: %w", jwksURL, err)
	}
	return &JWKSVerifier{jwks: jwks}, nil
}

// Verify checks the signature and expiry of token and extracts the identity
func (v *JWKSVerifier) Verify(_ context.Context, token string) (Identity, error) {
	claims := &providerClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, v.jwks.Keyfunc, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.Email == "" {
		return Identity{}, fmt.Errorf("%w: provider token carries no email", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return Identity{}, fmt.Errorf("%w: provider token carries no subject", ErrInvalidToken)
	}
	return claims.identity(), nil
}

// Close stops the background refresh
func (v *JWKSVerifier) Close() {
	v.jwks.EndBackground()
}
