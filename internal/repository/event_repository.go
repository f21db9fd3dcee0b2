package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tabletop-events-api/internal/domain"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	List(ctx context.Context) ([]*domain.Event, error)
	FindByID(ctx context.Context, id int64) (*domain.Event, error)
	// ListBetween returns events with from <= date < to, earliest first
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Event, error)
	// ListUpcoming returns events dated at or after from, earliest first
	ListUpcoming(ctx context.Context, from time.Time) ([]*domain.Event, error)
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Event, error)
	Delete(ctx context.Context, id int64) (*domain.Event, error)
}

type eventRepositoryImpl struct {
	db *gorm.DB
}

// NewEventRepository creates a new instance of EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepositoryImpl{db: db}
}

func (r *eventRepositoryImpl) List(ctx context.Context) ([]*domain.Event, error) {
	return listAll[domain.Event](ctx, r.db)
}

func (r *eventRepositoryImpl) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	return findByID[domain.Event](ctx, r.db, id)
}

func (r *eventRepositoryImpl) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	var events []*domain.Event
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from.UTC(), to.UTC()).
		Order("date ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepositoryImpl) ListUpcoming(ctx context.Context, from time.Time) ([]*domain.Event, error) {
	var events []*domain.Event
	err := r.db.WithContext(ctx).
		Where("date >= ?", from.UTC()).
		Order("date ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepositoryImpl) Create(ctx context.Context, event *domain.Event) error {
	return createRow(ctx, r.db, event)
}

func (r *eventRepositoryImpl) Update(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Event, error) {
	return updateRow[domain.Event](ctx, r.db, id, fields)
}

func (r *eventRepositoryImpl) Delete(ctx context.Context, id int64) (*domain.Event, error) {
	return deleteRow[domain.Event](ctx, r.db, id)
}
