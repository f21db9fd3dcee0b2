package auth

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tabletop-events-api/internal/domain"
)

// Session resolution errors
var (
	ErrRevokedToken   = errors.New("session has been revoked")
	ErrUnknownAccount = errors.New("session account no longer exists")
)

// AccountLookup loads the account a session token points at
type AccountLookup interface {
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
}

// SessionResolver turns a bearer token into a Caller
type SessionResolver struct {
	tokens   *TokenManager
	revoked  RevocationStore
	accounts AccountLookup
	policy   AdminPolicy
}

// NewSessionResolver creates a SessionResolver
func NewSessionResolver(tokens *TokenManager, revoked RevocationStore, accounts AccountLookup, policy AdminPolicy) *SessionResolver {
	return &SessionResolver{
		tokens:   tokens,
		revoked:  revoked,
		accounts: accounts,
		policy:   policy,
	}
}

// Resolve verifies token, checks revocation and loads the caller's account
// so that admin status reflects the current row.
func (r *SessionResolver) Resolve(ctx context.Context, token string) (*Caller, *SessionClaims, error) {
	claims, err := r.tokens.Parse(token)
	if err != nil {
		return nil, nil, err
	}

	revoked, err := r.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check session revocation: %w", err)
	}
	if revoked {
		return nil, nil, ErrRevokedToken
	}

	accountID, err := claims.AccountID()
	if err != nil {
		return nil, nil, err
	}
	account, err := r.accounts.FindByID(ctx, accountID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && account == nil) {
		return nil, nil, ErrUnknownAccount
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session account: %w", err)
	}

	return CallerFor(account, r.policy, claims.ID), claims, nil
}

// CallerFor builds the Caller for account under policy
func CallerFor(account *domain.Account, policy AdminPolicy, sessionID string) *Caller {
	identity := IdentityFromAccount(account)
	return &Caller{
		AccountID: account.ID,
		Email:     identity.Email,
		IsAdmin:   policy.IsAdmin(identity),
		SessionID: sessionID,
	}
}
