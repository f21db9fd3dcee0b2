package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tabletop-events-api/internal/auth"
	"tabletop-events-api/internal/dto"
	"tabletop-events-api/internal/response"
	"tabletop-events-api/internal/service"
)

type AuthHandler struct {
	authService  service.AuthService
	cookieName   string
	secureCookie bool
}

// NewAuthHandler creates an AuthHandler. Sessions are also set as an
// HttpOnly cookie named cookieName unless it is empty.
func NewAuthHandler(authService service.AuthService, cookieName string, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieName:   cookieName,
		secureCookie: secureCookie,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	h.setSessionCookie(c, session)
	response.SendSuccess(c, http.StatusCreated, session)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	h.setSessionCookie(c, session)
	response.SendSuccess(c, http.StatusOK, session)
}

// Exchange handles POST /auth/exchange
func (h *AuthHandler) Exchange(c *gin.Context) {
	var req dto.ExchangeRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.authService.Exchange(c.Request.Context(), req.Token)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	h.setSessionCookie(c, session)
	response.SendSuccess(c, http.StatusOK, session)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		sendUnauthorized(c)
		return
	}
	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		handleServiceError(c, err)
		return
	}
	h.clearSessionCookie(c)
	response.SendMessage(c, http.StatusOK, "Logged out successfully")
}

// Session handles GET /auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		sendUnauthorized(c)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.CallerResponse{
		AccountID: caller.AccountID,
		Email:     caller.Email,
		IsAdmin:   caller.IsAdmin,
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, session *dto.SessionResponse) {
	if h.cookieName == "" {
		return
	}
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, session.Token, maxAge, "/", "", h.secureCookie, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	if h.cookieName == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookie, true)
}
