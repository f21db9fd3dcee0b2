package repository

import (
	"context"

	"gorm.io/gorm"

	"tabletop-events-api/internal/domain"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	List(ctx context.Context) ([]*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByExternalSubject(ctx context.Context, subject string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Account, error)
	Delete(ctx context.Context, id int64) (*domain.Account, error)
}

// accountRepositoryImpl is the GORM implementation of AccountRepository
type accountRepositoryImpl struct {
	db *gorm.DB
}

// NewAccountRepository creates a new instance of AccountRepository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepositoryImpl{db: db}
}

func (r *accountRepositoryImpl) List(ctx context.Context) ([]*domain.Account, error) {
	return listAll[domain.Account](ctx, r.db)
}

func (r *accountRepositoryImpl) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	return findByID[domain.Account](ctx, r.db, id)
}

// FindByUsername returns gorm.ErrRecordNotFound when no account has the username
func (r *accountRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var account domain.Account
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByExternalSubject returns gorm.ErrRecordNotFound when no account was
// provisioned for the provider subject
func (r *accountRepositoryImpl) FindByExternalSubject(ctx context.Context, subject string) (*domain.Account, error) {
	var account domain.Account
	if err := r.db.WithContext(ctx).Where("external_subject = ?", subject).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	return createRow(ctx, r.db, account)
}

func (r *accountRepositoryImpl) Update(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Account, error) {
	return updateRow[domain.Account](ctx, r.db, id, fields)
}

func (r *accountRepositoryImpl) Delete(ctx context.Context, id int64) (*domain.Account, error) {
	return deleteRow[domain.Account](ctx, r.db, id)
}
