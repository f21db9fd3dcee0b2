package repository

import (
	"context"

	"gorm.io/gorm"

	"tabletop-events-api/internal/domain"
)

// GameRepository defines the interface for game data access
type GameRepository interface {
	List(ctx context.Context) ([]*domain.Game, error)
	FindByID(ctx context.Context, id int64) (*domain.Game, error)
	FindByTitle(ctx context.Context, title string) (*domain.Game, error)
	Create(ctx context.Context, game *domain.Game) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Game, error)
	Delete(ctx context.Context, id int64) (*domain.Game, error)
}

type gameRepositoryImpl struct {
	db *gorm.DB
}

// NewGameRepository creates a new instance of GameRepository
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepositoryImpl{db: db}
}

func (r *gameRepositoryImpl) List(ctx context.Context) ([]*domain.Game, error) {
	return listAll[domain.Game](ctx, r.db)
}

func (r *gameRepositoryImpl) FindByID(ctx context.Context, id int64) (*domain.Game, error) {
	return findByID[domain.Game](ctx, r.db, id)
}

func (r *gameRepositoryImpl) FindByTitle(ctx context.Context, title string) (*domain.Game, error) {
	var game domain.Game
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepositoryImpl) Create(ctx context.Context, game *domain.Game) error {
	return createRow(ctx, r.db, game)
}

func (r *gameRepositoryImpl) Update(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Game, error) {
	return updateRow[domain.Game](ctx, r.db, id, fields)
}

func (r *gameRepositoryImpl) Delete(ctx context.Context, id int64) (*domain.Game, error) {
	return deleteRow[domain.Game](ctx, r.db, id)
}
