package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tabletop-events-api/internal/domain"
	"tabletop-events-api/internal/dto"
	"tabletop-events-api/internal/repository"
)

// ParticipantService defines the interface for participant business logic
type ParticipantService interface {
	Join(ctx context.Context, eventID, userID int64) (*dto.ParticipantResponse, error)
	Leave(ctx context.Context, eventID, userID int64) error
	ListParticipants(ctx context.Context, eventID int64) ([]*dto.ParticipantResponse, error)
}

// participantServiceImpl is the implementation of ParticipantService
type participantServiceImpl struct {
	participantRepo repository.ParticipantRepository
	eventRepo       repository.EventRepository
	accountRepo     repository.AccountRepository
	recorder        BusinessRecorder
	logger          *zap.Logger
}

// NewParticipantService creates a new instance of ParticipantService
func NewParticipantService(
	participantRepo repository.ParticipantRepository,
	eventRepo repository.EventRepository,
	accountRepo repository.AccountRepository,
	recorder BusinessRecorder,
	logger *zap.Logger,
) ParticipantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &participantServiceImpl{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		accountRepo:     accountRepo,
		recorder:        recorderOrNoop(recorder),
		logger:          logger,
	}
}

// Join records userID as attending eventID. Joining twice is a conflict.
func (s *participantServiceImpl) Join(ctx context.Context, eventID, userID int64) (*dto.ParticipantResponse, error) {
	// Verify event exists
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, lookupError(s.logger, "Event", err)
	}

	// Check if participant already exists
	existing, err := s.participantRepo.FindByEventAndUser(ctx, eventID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal(s.logger, "Failed to check participation", err)
	}
	if err == nil && existing != nil {
		return nil, conflict("Already joined this event")
	}

	participant := &domain.Participant{EventID: eventID, UserID: userID}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEntry):
			// lost a race with a concurrent join
			return nil, conflict("Already joined this event")
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, notFound("Event")
		default:
			return nil, internal(s.logger, "Failed to join event", err)
		}
	}

	s.recorder.IncrementEventJoined()
	resp := toParticipantResponse(participant)
	if account, err := s.accountRepo.FindByID(ctx, userID); err == nil && account != nil {
		fillParticipantAccount(resp, account)
	}
	return resp, nil
}

// Leave removes userID from eventID. Leaving an event never joined succeeds.
func (s *participantServiceImpl) Leave(ctx context.Context, eventID, userID int64) error {
	removed, err := s.participantRepo.DeleteByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return internal(s.logger, "Failed to leave event", err)
	}
	s.logger.Debug("Participant removed",
		zap.Int64("event_id", eventID),
		zap.Int64("user_id", userID),
		zap.Int64("rows", removed),
	)
	return nil
}

// ListParticipants returns the event's participants with their names
func (s *participantServiceImpl) ListParticipants(ctx context.Context, eventID int64) ([]*dto.ParticipantResponse, error) {
	participants, err := s.participantRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, internal(s.logger, "Failed to load participants", err)
	}

	result := make([]*dto.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		resp := toParticipantResponse(p)
		if p.Account != nil {
			fillParticipantAccount(resp, p.Account)
		}
		result = append(result, resp)
	}
	return result, nil
}

func toParticipantResponse(p *domain.Participant) *dto.ParticipantResponse {
	return &dto.ParticipantResponse{
		ID:       p.ID,
		EventID:  p.EventID,
		UserID:   p.UserID,
		JoinedAt: p.JoinedAt.UTC(),
	}
}

func fillParticipantAccount(resp *dto.ParticipantResponse, a *domain.Account) {
	resp.Username = a.Username
	resp.FirstName = a.FirstName
	resp.LastName = a.LastName
}
