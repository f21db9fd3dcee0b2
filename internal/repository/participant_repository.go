package repository

import (
	"context"

	"gorm.io/gorm"

	"tabletop-events-api/internal/domain"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	FindByEventAndUser(ctx context.Context, eventID, userID int64) (*domain.Participant, error)
	// ListByEvent returns the event's participants with Account preloaded
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Participant, error)
	// DeleteByEventAndUser returns the number of rows removed
	DeleteByEventAndUser(ctx context.Context, eventID, userID int64) (int64, error)
	CountByEvents(ctx context.Context, eventIDs []int64) (map[int64]int64, error)
}

type participantRepositoryImpl struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new instance of ParticipantRepository
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepositoryImpl{db: db}
}

func (r *participantRepositoryImpl) Create(ctx context.Context, participant *domain.Participant) error {
	return createRow(ctx, r.db, participant)
}

func (r *participantRepositoryImpl) FindByEventAndUser(ctx context.Context, eventID, userID int64) (*domain.Participant, error) {
	var participant domain.Participant
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepositoryImpl) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Participant, error) {
	var participants []*domain.Participant
	err := r.db.WithContext(ctx).
		Preload("Account").
		Where("event_id = ?", eventID).
		Order("joined_at ASC, id ASC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepositoryImpl) DeleteByEventAndUser(ctx context.Context, eventID, userID int64) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("event_id = ? AND user_id = ?", eventID, userID).Delete(&domain.Participant{})
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

func (r *participantRepositoryImpl) CountByEvents(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	return countByEvents(ctx, r.db, &domain.Participant{}, eventIDs)
}

type eventCount struct {
	EventID int64
	Total   int64
}

// countByEvents groups rows of model by event_id. Events without rows are
// absent from the map.
func countByEvents(ctx context.Context, db *gorm.DB, model interface{}, eventIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}

	var rows []eventCount
	err := db.WithContext(ctx).
		Model(model).
		Select("event_id, COUNT(*) AS total").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.EventID] = row.Total
	}
	return counts, nil
}
