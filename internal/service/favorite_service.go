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

// FavoriteService defines the interface for favorite business logic
type FavoriteService interface {
	Add(ctx context.Context, eventID, userID int64) (*dto.FavoriteResponse, error)
	Remove(ctx context.Context, eventID, userID int64) error
	ListByEvent(ctx context.Context, eventID int64) ([]*dto.FavoriteResponse, error)
	ListByUser(ctx context.Context, userID int64) ([]*dto.FavoriteResponse, error)
}

type favoriteServiceImpl struct {
	favoriteRepo repository.FavoriteRepository
	eventRepo    repository.EventRepository
	recorder     BusinessRecorder
	logger       *zap.Logger
}

// NewFavoriteService creates a new instance of FavoriteService
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	eventRepo repository.EventRepository,
	recorder BusinessRecorder,
	logger *zap.Logger,
) FavoriteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &favoriteServiceImpl{
		favoriteRepo: favoriteRepo,
		eventRepo:    eventRepo,
		recorder:     recorderOrNoop(recorder),
		logger:       logger,
	}
}

// Add bookmarks eventID for userID
func (s *favoriteServiceImpl) Add(ctx context.Context, eventID, userID int64) (*dto.FavoriteResponse, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, lookupError(s.logger, "Event", err)
	}

	existing, err := s.favoriteRepo.FindByEventAndUser(ctx, eventID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal(s.logger, "Failed to check favorite", err)
	}
	if err == nil && existing != nil {
		return nil, conflict("Event already favorited")
	}

	favorite := &domain.Favorite{EventID: eventID, UserID: userID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEntry):
			return nil, conflict("Event already favorited")
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, notFound("Event")
		default:
			return nil, internal(s.logger, "Failed to add favorite", err)
		}
	}

	s.recorder.IncrementFavoriteAdded()
	return toFavoriteResponse(favorite), nil
}

// Remove deletes the bookmark if present
func (s *favoriteServiceImpl) Remove(ctx context.Context, eventID, userID int64) error {
	if _, err := s.favoriteRepo.DeleteByEventAndUser(ctx, eventID, userID); err != nil {
		return internal(s.logger, "Failed to remove favorite", err)
	}
	return nil
}

// ListByEvent returns who favorited eventID, newest first
func (s *favoriteServiceImpl) ListByEvent(ctx context.Context, eventID int64) ([]*dto.FavoriteResponse, error) {
	favorites, err := s.favoriteRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, internal(s.logger, "Failed to load favorites", err)
	}

	result := make([]*dto.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		resp := toFavoriteResponse(f)
		if f.Account != nil {
			resp.Username = f.Account.Username
			resp.FirstName = f.Account.FirstName
			resp.LastName = f.Account.LastName
		}
		result = append(result, resp)
	}
	return result, nil
}

// ListByUser returns the events userID favorited with their host and address
func (s *favoriteServiceImpl) ListByUser(ctx context.Context, userID int64) ([]*dto.FavoriteResponse, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, internal(s.logger, "Failed to load favorites", err)
	}

	result := make([]*dto.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		resp := toFavoriteResponse(f)
		if e := f.Event; e != nil {
			date := e.Date.UTC()
			resp.EventTitle = e.Title
			resp.EventDescription = e.Description
			resp.EventDate = &date
			resp.LocationID = e.LocationID
			if e.Location != nil {
				resp.Address = e.Location.Address
			}
			if e.Host != nil {
				resp.HostUsername = e.Host.Username
				resp.HostFirstName = e.Host.FirstName
				resp.HostLastName = e.Host.LastName
			}
		}
		result = append(result, resp)
	}
	return result, nil
}

func toFavoriteResponse(f *domain.Favorite) *dto.FavoriteResponse {
	return &dto.FavoriteResponse{
		ID:        f.ID,
		EventID:   f.EventID,
		UserID:    f.UserID,
		CreatedAt: f.CreatedAt.UTC(),
	}
}
