package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tabletop-events-api/internal/auth"
	"tabletop-events-api/internal/domain"
	"tabletop-events-api/internal/dto"
	"tabletop-events-api/internal/repository"
)

// AccountService defines the interface for account business logic
type AccountService interface {
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)
	GetAccounts(ctx context.Context) ([]*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateAccountRequest) (*domain.Account, error)
	UpdatePassword(ctx context.Context, caller *auth.Caller, id int64, password string) error
	DeleteAccount(ctx context.Context, caller *auth.Caller, id int64) (*domain.Account, error)
	SetAdmin(ctx context.Context, caller *auth.Caller, email string, isAdmin bool) (*domain.Account, error)
	EnsureAccountForIdentity(ctx context.Context, identity auth.Identity) (*domain.Account, error)
}

type accountServiceImpl struct {
	accountRepo repository.AccountRepository
	policy      auth.AdminPolicy
	logger      *zap.Logger
}

// NewAccountService creates a new instance of AccountService. Logins the
// policy reserves cannot be claimed by signup or profile edit; a nil policy
// reserves nothing.
func NewAccountService(accountRepo repository.AccountRepository, policy auth.AdminPolicy, logger *zap.Logger) AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if policy == nil {
		policy = auth.NewAdminPolicy(nil)
	}
	return &accountServiceImpl{accountRepo: accountRepo, policy: policy, logger: logger}
}

func (s *accountServiceImpl) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "Account", err)
	}
	return account, nil
}

func (s *accountServiceImpl) GetAccounts(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, internal(s.logger, "Failed to load accounts", err)
	}
	return accounts, nil
}

func (s *accountServiceImpl) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, lookupError(s.logger, "Account", err)
	}
	return account, nil
}

// CreateAccount registers a new account with a hashed password
func (s *accountServiceImpl) CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*domain.Account, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, invalid("username is required")
	}
	if s.policy.Reserves(username) {
		return nil, forbidden("This username is reserved")
	}
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrWeakPassword) {
			return nil, invalid(err.Error())
		}
		return nil, internal(s.logger, "Failed to hash password", err)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = username
	}
	account := &domain.Account{
		Username:  username,
		Email:     email,
		Password:  hashed,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, conflict("Username is already taken")
		}
		return nil, internal(s.logger, "Failed to create account", err)
	}

	s.logger.Info("Account created", zap.Int64("account_id", account.ID))
	return account, nil
}

// UpdateAccount applies the provided fields. Returns nil when the account
// does not exist.
func (s *accountServiceImpl) UpdateAccount(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateAccountRequest) (*domain.Account, error) {
	if caller == nil {
		return nil, unauthorized("Authentication required")
	}
	if !auth.CanManageAccount(caller, id) {
		return nil, forbidden("Not authorized to modify this account")
	}

	fields := make(map[string]interface{})
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, invalid("username must not be empty")
		}
		if s.policy.Reserves(username) && !caller.IsAdmin {
			return nil, forbidden("This username is reserved")
		}
		fields["username"] = username
	}
	if req.Email != nil {
		fields["email"] = strings.TrimSpace(*req.Email)
	}
	if req.FirstName != nil {
		fields["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		fields["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrWeakPassword) {
				return nil, invalid(err.Error())
			}
			return nil, internal(s.logger, "Failed to hash password", err)
		}
		fields["password"] = hashed
	}

	account, err := s.accountRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, conflict("Username is already taken")
		}
		return nil, internal(s.logger, "Failed to update account", err)
	}
	return account, nil
}

// UpdatePassword replaces the stored password hash
func (s *accountServiceImpl) UpdatePassword(ctx context.Context, caller *auth.Caller, id int64, password string) error {
	account, err := s.UpdateAccount(ctx, caller, id, &dto.UpdateAccountRequest{Password: &password})
	if err != nil {
		return err
	}
	if account == nil {
		return notFound("Account")
	}
	return nil
}

// DeleteAccount removes an account together with its hosted events,
// participations and favorites. Returns nil when the account does not exist.
func (s *accountServiceImpl) DeleteAccount(ctx context.Context, caller *auth.Caller, id int64) (*domain.Account, error) {
	if caller == nil {
		return nil, unauthorized("Authentication required")
	}
	if !auth.CanManageAccount(caller, id) {
		return nil, forbidden("Not authorized to delete this account")
	}

	account, err := s.accountRepo.Delete(ctx, id)
	if err != nil {
		return nil, internal(s.logger, "Failed to delete account", err)
	}
	if account != nil {
		s.logger.Info("Account deleted", zap.Int64("account_id", id), zap.Int64("caller_id", caller.AccountID))
	}
	return account, nil
}

// SetAdmin sets the admin flag of the account whose login is email
func (s *accountServiceImpl) SetAdmin(ctx context.Context, caller *auth.Caller, email string, isAdmin bool) (*domain.Account, error) {
	if err := requireAdmin(caller, "Only administrators can grant admin rights"); err != nil {
		return nil, err
	}
	target, err := s.accountRepo.FindByUsername(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, lookupError(s.logger, "Account", err)
	}

	account, err := s.accountRepo.Update(ctx, target.ID, map[string]interface{}{"is_admin": isAdmin})
	if err != nil {
		return nil, internal(s.logger, "Failed to update admin flag", err)
	}
	if account == nil {
		return nil, notFound("Account")
	}

	s.logger.Info("Admin flag changed",
		zap.Int64("account_id", account.ID),
		zap.Bool("is_admin", isAdmin),
		zap.Int64("caller_id", caller.AccountID),
	)
	return account, nil
}

// EnsureAccountForIdentity returns the account provisioned for the
// identity's provider subject, creating one when none exists. A password
// account already holding the email is never linked: the provider cannot
// prove that whoever registered it owns the address. Provisioned accounts get
// an unguessable password and a provider admin claim is persisted to the
// admin flag.
func (s *accountServiceImpl) EnsureAccountForIdentity(ctx context.Context, identity auth.Identity) (*domain.Account, error) {
	subject := strings.TrimSpace(identity.Subject)
	if subject == "" {
		return nil, invalid("identity has no subject")
	}
	email := strings.TrimSpace(identity.Email)
	if email == "" {
		return nil, invalid("identity has no email")
	}

	account, err := s.accountRepo.FindByExternalSubject(ctx, subject)
	if err == nil {
		return s.promote(ctx, account, identity)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal(s.logger, "Failed to load account", err)
	}

	if _, err := s.accountRepo.FindByUsername(ctx, email); err == nil {
		s.logger.Warn("Identity email already registered to a password account", zap.String("subject", subject))
		return nil, conflict("An account with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal(s.logger, "Failed to load account", err)
	}

	hashed, err := auth.HashPassword(uuid.NewString())
	if err != nil {
		return nil, internal(s.logger, "Failed to hash password", err)
	}
	first, last := splitName(identity.Name)
	account = &domain.Account{
		Username:        email,
		Email:           email,
		Password:        hashed,
		FirstName:       first,
		LastName:        last,
		IsAdmin:         identity.AdminFlag,
		ExternalSubject: &subject,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			// provisioned concurrently, or the email was registered meanwhile
			existing, findErr := s.accountRepo.FindByExternalSubject(ctx, subject)
			if findErr != nil {
				return nil, conflict("An account with this email already exists")
			}
			return s.promote(ctx, existing, identity)
		}
		return nil, internal(s.logger, "Failed to provision account", err)
	}

	s.logger.Info("Account provisioned from identity provider",
		zap.Int64("account_id", account.ID),
		zap.Bool("is_admin", account.IsAdmin),
	)
	return account, nil
}

// promote persists a provider admin claim. Admin rights granted locally are
// left alone when the claim is absent.
func (s *accountServiceImpl) promote(ctx context.Context, account *domain.Account, identity auth.Identity) (*domain.Account, error) {
	if !identity.AdminFlag || account.IsAdmin {
		return account, nil
	}
	updated, err := s.accountRepo.Update(ctx, account.ID, map[string]interface{}{"is_admin": true})
	if err != nil {
		return nil, internal(s.logger, "Failed to update admin flag", err)
	}
	if updated == nil {
		return nil, notFound("Account")
	}
	s.logger.Info("Admin flag set from identity provider", zap.Int64("account_id", updated.ID))
	return updated, nil
}

func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i], strings.TrimSpace(name[i+1:])
	}
	return name, ""
}
