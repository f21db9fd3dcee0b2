package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tabletop-events-api/internal/auth"
	"tabletop-events-api/internal/domain"
	"tabletop-events-api/internal/dto"
	"tabletop-events-api/internal/repository"
)

// Auth attempt labels
const (
	AuthMethodPassword = "password"
	AuthMethodSignup   = "signup"
	AuthMethodExchange = "exchange"

	AuthResultSuccess = "success"
	AuthResultFailure = "failure"
)

// AuthService defines the interface for session business logic
type AuthService interface {
	Signup(ctx context.Context, req *dto.CreateAccountRequest) (*dto.SessionResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, claims *auth.SessionClaims) error
	Exchange(ctx context.Context, token string) (*dto.SessionResponse, error)
}

// AuthServiceDeps groups the collaborators of AuthService. External is
// optional; without it Exchange is rejected.
type AuthServiceDeps struct {
	Accounts    AccountService
	AccountRepo repository.AccountRepository
	Tokens      *auth.TokenManager
	Revocations auth.RevocationStore
	External    auth.ExternalVerifier
	Recorder    BusinessRecorder
	Logger      *zap.Logger
}

type authServiceImpl struct {
	accounts    AccountService
	accountRepo repository.AccountRepository
	tokens      *auth.TokenManager
	revocations auth.RevocationStore
	external    auth.ExternalVerifier
	recorder    BusinessRecorder
	logger      *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(deps AuthServiceDeps) AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authServiceImpl{
		accounts:    deps.Accounts,
		accountRepo: deps.AccountRepo,
		tokens:      deps.Tokens,
		revocations: deps.Revocations,
		external:    deps.External,
		recorder:    recorderOrNoop(deps.Recorder),
		logger:      logger,
	}
}

// Signup creates an account and signs it in
func (s *authServiceImpl) Signup(ctx context.Context, req *dto.CreateAccountRequest) (*dto.SessionResponse, error) {
	account, err := s.accounts.CreateAccount(ctx, req)
	if err != nil {
		s.recorder.RecordAuthAttempt(AuthMethodSignup, AuthResultFailure)
		return nil, err
	}
	s.recorder.RecordAuthAttempt(AuthMethodSignup, AuthResultSuccess)
	return s.issue(account)
}

// Login checks username and password and issues a session token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	account, err := s.accountRepo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal(s.logger, "Failed to load account", err)
	}
	if err != nil || account == nil || !auth.CheckPassword(account.Password, req.Password) {
		s.recorder.RecordAuthAttempt(AuthMethodPassword, AuthResultFailure)
		return nil, unauthorized("Invalid username or password")
	}

	s.recorder.RecordAuthAttempt(AuthMethodPassword, AuthResultSuccess)
	return s.issue(account)
}

// Logout revokes the session until its token would expire
func (s *authServiceImpl) Logout(ctx context.Context, claims *auth.SessionClaims) error {
	if claims == nil {
		return unauthorized("Authentication required")
	}
	if claims.ExpiresAt == nil {
		return invalid("session has no expiry")
	}
	if err := s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return internal(s.logger, "Failed to revoke session", err)
	}
	s.logger.Info("Session revoked", zap.String("subject", claims.Subject))
	return nil
}

// Exchange trades an identity provider token for a local session,
// provisioning the account on first use.
func (s *authServiceImpl) Exchange(ctx context.Context, token string) (*dto.SessionResponse, error) {
	if s.external == nil {
		return nil, invalid("External sign-in is not configured")
	}
	identity, err := s.external.Verify(ctx, token)
	if err != nil {
		s.recorder.RecordAuthAttempt(AuthMethodExchange, AuthResultFailure)
		s.logger.Warn("External token rejected", zap.Error(err))
		return nil, unauthorized("Invalid identity token")
	}

	account, err := s.accounts.EnsureAccountForIdentity(ctx, identity)
	if err != nil {
		s.recorder.RecordAuthAttempt(AuthMethodExchange, AuthResultFailure)
		return nil, err
	}
	s.recorder.RecordAuthAttempt(AuthMethodExchange, AuthResultSuccess)
	return s.issue(account)
}

func (s *authServiceImpl) issue(account *domain.Account) (*dto.SessionResponse, error) {
	token, claims, err := s.tokens.Issue(account)
	if err != nil {
		return nil, internal(s.logger, "Failed to issue session token", err)
	}
	return &dto.SessionResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
		Account:   account,
	}, nil
}
