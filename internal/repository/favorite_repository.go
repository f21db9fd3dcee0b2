package repository

import (
	"context"

	"gorm.io/gorm"

	"tabletop-events-api/internal/domain"
)

// FavoriteRepository defines the interface for favorite data access
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) error
	FindByEventAndUser(ctx context.Context, eventID, userID int64) (*domain.Favorite, error)
	// ListByEvent returns the event's favorites with Account preloaded
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Favorite, error)
	// ListByUser returns the account's favorites with Event, its Host and
	// its Location preloaded
	ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error)
	DeleteByEventAndUser(ctx context.Context, eventID, userID int64) (int64, error)
	CountByEvents(ctx context.Context, eventIDs []int64) (map[int64]int64, error)
}

type favoriteRepositoryImpl struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new instance of FavoriteRepository
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepositoryImpl{db: db}
}

func (r *favoriteRepositoryImpl) Create(ctx context.Context, favorite *domain.Favorite) error {
	return createRow(ctx, r.db, favorite)
}

func (r *favoriteRepositoryImpl) FindByEventAndUser(ctx context.Context, eventID, userID int64) (*domain.Favorite, error) {
	var favorite domain.Favorite
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepositoryImpl) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Favorite, error) {
	var favorites []*domain.Favorite
	err := r.db.WithContext(ctx).
		Preload("Account").
		Where("event_id = ?", eventID).
		Order("created_at DESC, id DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
	var favorites []*domain.Favorite
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Event.Host").
		Preload("Event.Location").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepositoryImpl) DeleteByEventAndUser(ctx context.Context, eventID, userID int64) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("event_id = ? AND user_id = ?", eventID, userID).Delete(&domain.Favorite{})
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

func (r *favoriteRepositoryImpl) CountByEvents(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	return countByEvents(ctx, r.db, &domain.Favorite{}, eventIDs)
}
