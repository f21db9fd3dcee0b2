package dto

import (
	"time"

	"tabletop-events-api/internal/domain"
)

// CreateAccountRequest is the body of POST /accounts and POST /auth/signup.
// Username is the login name and is normally an email address.
type CreateAccountRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdateAccountRequest is the body of PUT /accounts/:id and /accounts/me.
// Nil fields are left unchanged.
type UpdateAccountRequest struct {
	Username  *string `json:"username" binding:"omitempty,min=1"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ExchangeRequest carries an external identity provider token
type ExchangeRequest struct {
	Token string `json:"token" binding:"required"`
}

// SetAdminRequest is the body of POST /admin/set-admin. IsAdmin defaults to true.
type SetAdminRequest struct {
	Email   string `json:"email" binding:"required"`
	IsAdmin *bool  `json:"isAdmin"`
}

// SessionResponse is returned by login, signup and exchange
type SessionResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Account   *domain.Account `json:"account"`
}

// CallerResponse describes the authenticated caller
type CallerResponse struct {
	AccountID int64  `json:"accountId"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}
