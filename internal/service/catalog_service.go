package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tabletop-events-api/internal/auth"
	"tabletop-events-api/internal/domain"
	"tabletop-events-api/internal/dto"
	"tabletop-events-api/internal/repository"
)

// GameService defines the interface for game business logic
type GameService interface {
	GetGame(ctx context.Context, id int64) (*domain.Game, error)
	GetGames(ctx context.Context) ([]*domain.Game, error)
	CreateGame(ctx context.Context, caller *auth.Caller, req *dto.CreateGameRequest) (*domain.Game, error)
	UpdateGame(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateGameRequest) (*domain.Game, error)
	DeleteGame(ctx context.Context, caller *auth.Caller, id int64) (*domain.Game, error)
}

type gameServiceImpl struct {
	gameRepo repository.GameRepository
	logger   *zap.Logger
}

// NewGameService creates a new instance of GameService
func NewGameService(gameRepo repository.GameRepository, logger *zap.Logger) GameService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &gameServiceImpl{gameRepo: gameRepo, logger: logger}
}

func (s *gameServiceImpl) GetGame(ctx context.Context, id int64) (*domain.Game, error) {
	game, err := s.gameRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "Game", err)
	}
	return game, nil
}

func (s *gameServiceImpl) GetGames(ctx context.Context) ([]*domain.Game, error) {
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, internal(s.logger, "Failed to load games", err)
	}
	return games, nil
}

// CreateGame adds a game to the catalog. Any signed-in account may do so.
func (s *gameServiceImpl) CreateGame(ctx context.Context, caller *auth.Caller, req *dto.CreateGameRequest) (*domain.Game, error) {
	if caller == nil {
		return nil, unauthorized("Authentication required")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid("title is required")
	}

	game := &domain.Game{Title: title, Description: req.Description}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, internal(s.logger, "Failed to create game", err)
	}
	return game, nil
}

// UpdateGame changes a game. Returns nil when the game does not exist.
func (s *gameServiceImpl) UpdateGame(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateGameRequest) (*domain.Game, error) {
	if err := requireAdmin(caller, "Only administrators can modify games"); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid("title is required")
	}

	fields := map[string]interface{}{"title": title}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	game, err := s.gameRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, internal(s.logger, "Failed to update game", err)
	}
	return game, nil
}

// DeleteGame removes a game and, through the cascade, its events. Returns
// nil when the game does not exist.
func (s *gameServiceImpl) DeleteGame(ctx context.Context, caller *auth.Caller, id int64) (*domain.Game, error) {
	if err := requireAdmin(caller, "Only administrators can delete games"); err != nil {
		return nil, err
	}
	game, err := s.gameRepo.Delete(ctx, id)
	if err != nil {
		return nil, internal(s.logger, "Failed to delete game", err)
	}
	if game != nil {
		s.logger.Info("Game deleted", zap.Int64("game_id", id), zap.Int64("caller_id", caller.AccountID))
	}
	return game, nil
}

// LocationService defines the interface for location business logic
type LocationService interface {
	GetLocation(ctx context.Context, id int64) (*domain.Location, error)
	GetLocations(ctx context.Context) ([]*domain.Location, error)
	CreateLocation(ctx context.Context, caller *auth.Caller, req *dto.CreateLocationRequest) (*domain.Location, error)
	UpdateLocation(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateLocationRequest) (*domain.Location, error)
	DeleteLocation(ctx context.Context, caller *auth.Caller, id int64) (*domain.Location, error)
}

type locationServiceImpl struct {
	locationRepo repository.LocationRepository
	logger       *zap.Logger
}

// NewLocationService creates a new instance of LocationService
func NewLocationService(locationRepo repository.LocationRepository, logger *zap.Logger) LocationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &locationServiceImpl{locationRepo: locationRepo, logger: logger}
}

func (s *locationServiceImpl) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "Location", err)
	}
	return location, nil
}

func (s *locationServiceImpl) GetLocations(ctx context.Context) ([]*domain.Location, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, internal(s.logger, "Failed to load locations", err)
	}
	return locations, nil
}

func (s *locationServiceImpl) CreateLocation(ctx context.Context, caller *auth.Caller, req *dto.CreateLocationRequest) (*domain.Location, error) {
	if caller == nil {
		return nil, unauthorized("Authentication required")
	}
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, invalid("address is required")
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, invalid("latitude and longitude must be given together")
	}

	location := &domain.Location{Address: address, Latitude: req.Latitude, Longitude: req.Longitude}
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, internal(s.logger, "Failed to create location", err)
	}
	return location, nil
}

// UpdateLocation replaces a location's address and coordinates. Returns nil
// when the location does not exist.
func (s *locationServiceImpl) UpdateLocation(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateLocationRequest) (*domain.Location, error) {
	if err := requireAdmin(caller, "Only administrators can modify locations"); err != nil {
		return nil, err
	}
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, invalid("address is required")
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, invalid("latitude and longitude must be given together")
	}

	location, err := s.locationRepo.Update(ctx, id, map[string]interface{}{
		"address":   address,
		"latitude":  req.Latitude,
		"longitude": req.Longitude,
	})
	if err != nil {
		return nil, internal(s.logger, "Failed to update location", err)
	}
	return location, nil
}

func (s *locationServiceImpl) DeleteLocation(ctx context.Context, caller *auth.Caller, id int64) (*domain.Location, error) {
	if err := requireAdmin(caller, "Only administrators can delete locations"); err != nil {
		return nil, err
	}
	location, err := s.locationRepo.Delete(ctx, id)
	if err != nil {
		return nil, internal(s.logger, "Failed to delete location", err)
	}
	if location != nil {
		s.logger.Info("Location deleted", zap.Int64("location_id", id), zap.Int64("caller_id", caller.AccountID))
	}
	return location, nil
}

// OptionsService feeds the event form's pickers
type OptionsService interface {
	GetOptions(ctx context.Context) (*dto.OptionsResponse, error)
}

type optionsServiceImpl struct {
	games     GameService
	locations LocationService
}

// NewOptionsService creates a new instance of OptionsService
func NewOptionsService(games GameService, locations LocationService) OptionsService {
	return &optionsServiceImpl{games: games, locations: locations}
}

func (s *optionsServiceImpl) GetOptions(ctx context.Context) (*dto.OptionsResponse, error) {
	games, err := s.games.GetGames(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.locations.GetLocations(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.OptionsResponse{Games: games, Locations: locations}, nil
}

func requireAdmin(caller *auth.Caller, message string) error {
	if caller == nil {
		return unauthorized("Authentication required")
	}
	if !caller.IsAdmin {
		return forbidden(message)
	}
	return nil
}
