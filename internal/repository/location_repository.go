package repository

import (
	"context"

	"gorm.io/gorm"

	"tabletop-events-api/internal/domain"
)

// LocationRepository defines the interface for location data access
type LocationRepository interface {
	List(ctx context.Context) ([]*domain.Location, error)
	FindByID(ctx context.Context, id int64) (*domain.Location, error)
	FindByAddress(ctx context.Context, address string) (*domain.Location, error)
	Create(ctx context.Context, location *domain.Location) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Location, error)
	Delete(ctx context.Context, id int64) (*domain.Location, error)
}

type locationRepositoryImpl struct {
	db *gorm.DB
}

// NewLocationRepository creates a new instance of LocationRepository
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepositoryImpl{db: db}
}

func (r *locationRepositoryImpl) List(ctx context.Context) ([]*domain.Location, error) {
	return listAll[domain.Location](ctx, r.db)
}

func (r *locationRepositoryImpl) FindByID(ctx context.Context, id int64) (*domain.Location, error) {
	return findByID[domain.Location](ctx, r.db, id)
}

func (r *locationRepositoryImpl) FindByAddress(ctx context.Context, address string) (*domain.Location, error) {
	var location domain.Location
	if err := r.db.WithContext(ctx).Where("address = ?", address).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepositoryImpl) Create(ctx context.Context, location *domain.Location) error {
	return createRow(ctx, r.db, location)
}

func (r *locationRepositoryImpl) Update(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Location, error) {
	return updateRow[domain.Location](ctx, r.db, id, fields)
}

func (r *locationRepositoryImpl) Delete(ctx context.Context, id int64) (*domain.Location, error) {
	return deleteRow[domain.Location](ctx, r.db, id)
}
