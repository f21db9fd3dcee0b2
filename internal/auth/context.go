package auth

import "github.com/gin-gonic/gin"

const (
	callerKey = "caller"
	claimsKey = "session_claims"
)

// SetCaller stores the resolved caller and its session claims on the request
func SetCaller(c *gin.Context, caller *Caller, claims *SessionClaims) {
	c.Set(callerKey, caller)
	if claims != nil {
		c.Set(claimsKey, claims)
	}
}

// CallerFrom returns the caller stored by the auth middleware
func CallerFrom(c *gin.Context) (*Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return nil, false
	}
	caller, ok := v.(*Caller)
	return caller, ok && caller != nil
}

// ClaimsFrom returns the session claims stored by the auth middleware
func ClaimsFrom(c *gin.Context) (*SessionClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*SessionClaims)
	return claims, ok && claims != nil
}
