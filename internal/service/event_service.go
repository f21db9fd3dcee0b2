package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"tabletop-events-api/internal/auth"
	"tabletop-events-api/internal/domain"
	"tabletop-events-api/internal/dto"
	"tabletop-events-api/internal/geo"
	"tabletop-events-api/internal/repository"
)

// DefaultPopularLimit is the number of events the popular view returns when
// the caller does not ask for a specific count
const DefaultPopularLimit = 10

// EventService defines the interface for event business logic
type EventService interface {
	GetAllEvents(ctx context.Context) ([]*dto.EventDisplay, error)
	GetOneEvent(ctx context.Context, id int64) (*dto.EventInfo, error)
	CreateEvent(ctx context.Context, caller *auth.Caller, req *dto.CreateEventRequest) (*domain.Event, error)
	UpdateEvent(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateEventRequest) (*domain.Event, error)
	RemoveEvent(ctx context.Context, caller *auth.Caller, id int64) (*domain.Event, error)

	TodayEvents(ctx context.Context, now time.Time) ([]*dto.EventSummary, error)
	PopularEvents(ctx context.Context, now time.Time, limit int) ([]*dto.EventSummary, error)
	NearbyEvents(ctx context.Context, now time.Time, origin geo.Point) ([]*dto.EventSummary, error)
}

// eventServiceImpl is the implementation of EventService
type eventServiceImpl struct {
	eventRepo       repository.EventRepository
	accountRepo     repository.AccountRepository
	gameRepo        repository.GameRepository
	locationRepo    repository.LocationRepository
	participantRepo repository.ParticipantRepository
	favoriteRepo    repository.FavoriteRepository
	recorder        BusinessRecorder
	logger          *zap.Logger
}

// EventServiceDeps groups the collaborators of EventService
type EventServiceDeps struct {
	Events       repository.EventRepository
	Accounts     repository.AccountRepository
	Games        repository.GameRepository
	Locations    repository.LocationRepository
	Participants repository.ParticipantRepository
	Favorites    repository.FavoriteRepository
	Recorder     BusinessRecorder
	Logger       *zap.Logger
}

// NewEventService creates a new instance of EventService
func NewEventService(deps EventServiceDeps) EventService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &eventServiceImpl{
		eventRepo:       deps.Events,
		accountRepo:     deps.Accounts,
		gameRepo:        deps.Games,
		locationRepo:    deps.Locations,
		participantRepo: deps.Participants,
		favoriteRepo:    deps.Favorites,
		recorder:        recorderOrNoop(deps.Recorder),
		logger:          logger,
	}
}

// lookups indexes accounts, games and locations by id so that event lists
// join in one pass.
type lookups struct {
	accounts  map[int64]*domain.Account
	games     map[int64]*domain.Game
	locations map[int64]*domain.Location
}

func (s *eventServiceImpl) loadLookups(ctx context.Context) (*lookups, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, internal(s.logger, "Failed to load accounts", err)
	}
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, internal(s.logger, "Failed to load games", err)
	}
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, internal(s.logger, "Failed to load locations", err)
	}

	l := &lookups{
		accounts:  make(map[int64]*domain.Account, len(accounts)),
		games:     make(map[int64]*domain.Game, len(games)),
		locations: make(map[int64]*domain.Location, len(locations)),
	}
	for _, a := range accounts {
		l.accounts[a.ID] = a
	}
	for _, g := range games {
		l.games[g.ID] = g
	}
	for _, loc := range locations {
		l.locations[loc.ID] = loc
	}
	return l, nil
}

func (l *lookups) display(event *domain.Event) *dto.EventDisplay {
	d := &dto.EventDisplay{Event: *event}
	d.Date = d.Date.UTC()
	if host, ok := l.accounts[event.HostID]; ok {
		name := host.DisplayName()
		d.Author = &name
	}
	if game, ok := l.games[event.GameID]; ok {
		title := game.Title
		d.Game = &title
	}
	if loc, ok := l.locations[event.LocationID]; ok {
		address := loc.Address
		d.Address = &address
	}
	return d
}

// GetAllEvents returns every event with its host name, game title and address
func (s *eventServiceImpl) GetAllEvents(ctx context.Context) ([]*dto.EventDisplay, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, internal(s.logger, "Failed to load events", err)
	}
	l, err := s.loadLookups(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EventDisplay, 0, len(events))
	for _, e := range events {
		result = append(result, l.display(e))
	}
	return result, nil
}

// GetOneEvent returns an event with its host, game and location nested
func (s *eventServiceImpl) GetOneEvent(ctx context.Context, id int64) (*dto.EventInfo, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "Event", err)
	}
	host, err := s.accountRepo.FindByID(ctx, event.HostID)
	if err != nil {
		return nil, lookupError(s.logger, "Host account", err)
	}
	game, err := s.gameRepo.FindByID(ctx, event.GameID)
	if err != nil {
		return nil, lookupError(s.logger, "Game", err)
	}
	location, err := s.locationRepo.FindByID(ctx, event.LocationID)
	if err != nil {
		return nil, lookupError(s.logger, "Location", err)
	}

	info := &dto.EventInfo{Event: *event, Author: host, Game: game, Location: location}
	info.Date = info.Date.UTC()
	return info, nil
}

// CreateEvent creates an event hosted by the caller
func (s *eventServiceImpl) CreateEvent(ctx context.Context, caller *auth.Caller, req *dto.CreateEventRequest) (*domain.Event, error) {
	if caller == nil {
		return nil, unauthorized("Authentication required")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid("title is required")
	}
	if req.Date == nil {
		return nil, invalid("date is required")
	}
	if err := s.verifyReferences(ctx, &caller.AccountID, &req.GameID, &req.LocationID); err != nil {
		return nil, err
	}

	event := &domain.Event{
		HostID:      caller.AccountID,
		GameID:      req.GameID,
		LocationID:  req.LocationID,
		Title:       title,
		Description: req.Description,
		Date:        domain.NormalizeEventDate(*req.Date),
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, invalid("Referenced host, game or location does not exist")
		}
		return nil, internal(s.logger, "Failed to create event", err)
	}

	s.recorder.IncrementEventCreated()
	s.logger.Info("Event created",
		zap.Int64("event_id", event.ID),
		zap.Int64("host_id", event.HostID),
		zap.Int64("game_id", event.GameID),
		zap.Int64("location_id", event.LocationID),
	)
	return event, nil
}

// verifyReferences checks that each non-nil id names an existing row
func (s *eventServiceImpl) verifyReferences(ctx context.Context, hostID, gameID, locationID *int64) error {
	if hostID != nil {
		if _, err := s.accountRepo.FindByID(ctx, *hostID); err != nil {
			return lookupError(s.logger, "Host account", err)
		}
	}
	if gameID != nil {
		if _, err := s.gameRepo.FindByID(ctx, *gameID); err != nil {
			return lookupError(s.logger, "Game", err)
		}
	}
	if locationID != nil {
		if _, err := s.locationRepo.FindByID(ctx, *locationID); err != nil {
			return lookupError(s.logger, "Location", err)
		}
	}
	return nil
}

// UpdateEvent changes the provided fields of an event the caller hosts or administers
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateEventRequest) (*domain.Event, error) {
	if caller == nil {
		return nil, unauthorized("Authentication required")
	}
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "Event", err)
	}
	if !auth.CanModifyEvent(caller, event) {
		return nil, forbidden("Not authorized to update this event")
	}
	if err := s.verifyReferences(ctx, nil, req.GameID, req.LocationID); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, invalid("title must not be empty")
		}
		fields["title"] = title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Date != nil {
		fields["date"] = domain.NormalizeEventDate(*req.Date)
	}
	if req.GameID != nil {
		fields["game_id"] = *req.GameID
	}
	if req.LocationID != nil {
		fields["location_id"] = *req.LocationID
	}
	if len(fields) == 0 {
		return event, nil
	}

	updated, err := s.eventRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, invalid("Referenced game or location does not exist")
		}
		return nil, internal(s.logger, "Failed to update event", err)
	}
	if updated == nil {
		return nil, notFound("Event")
	}
	updated.Date = updated.Date.UTC()
	return updated, nil
}

// RemoveEvent deletes an event the caller hosts or administers
func (s *eventServiceImpl) RemoveEvent(ctx context.Context, caller *auth.Caller, id int64) (*domain.Event, error) {
	if caller == nil {
		return nil, unauthorized("Authentication required")
	}
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(s.logger, "Event", err)
	}
	if !auth.CanModifyEvent(caller, event) {
		s.logger.Warn("Event delete refused",
			zap.Int64("event_id", id),
			zap.Int64("host_id", event.HostID),
			zap.Int64("caller_id", caller.AccountID),
		)
		return nil, forbidden("Not authorized to delete this event")
	}

	deleted, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return nil, internal(s.logger, "Failed to delete event", err)
	}
	if deleted == nil {
		return nil, notFound("Event")
	}
	s.logger.Info("Event deleted", zap.Int64("event_id", id), zap.Int64("caller_id", caller.AccountID))
	return deleted, nil
}

// TodayEvents returns the events dated on now's UTC calendar day, earliest first
func (s *eventServiceImpl) TodayEvents(ctx context.Context, now time.Time) ([]*dto.EventSummary, error) {
	now = now.UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	events, err := s.eventRepo.ListBetween(ctx, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, internal(s.logger, "Failed to load today's events", err)
	}
	return s.summarize(ctx, events)
}

// PopularEvents returns upcoming events with the most favorites first; ties
// go to the earlier event.
func (s *eventServiceImpl) PopularEvents(ctx context.Context, now time.Time, limit int) ([]*dto.EventSummary, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	events, err := s.eventRepo.ListUpcoming(ctx, now)
	if err != nil {
		return nil, internal(s.logger, "Failed to load upcoming events", err)
	}
	summaries, err := s.summarize(ctx, events)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].FavoriteCount != summaries[j].FavoriteCount {
			return summaries[i].FavoriteCount > summaries[j].FavoriteCount
		}
		return summaries[i].Date.Before(summaries[j].Date)
	})
	if len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// NearbyEvents returns upcoming events ordered by distance from origin.
// Events whose location has no coordinates come last.
func (s *eventServiceImpl) NearbyEvents(ctx context.Context, now time.Time, origin geo.Point) ([]*dto.EventSummary, error) {
	if !geo.ValidPoint(origin) {
		return nil, invalid("lat and lng must be valid coordinates")
	}
	events, err := s.eventRepo.ListUpcoming(ctx, now)
	if err != nil {
		return nil, internal(s.logger, "Failed to load upcoming events", err)
	}
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, internal(s.logger, "Failed to load locations", err)
	}
	summaries, err := s.summarize(ctx, events)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.Location, len(locations))
	for _, loc := range locations {
		byID[loc.ID] = loc
	}
	for _, sum := range summaries {
		loc, ok := byID[sum.LocationID]
		if !ok || !loc.HasCoordinates() {
			continue
		}
		d := geo.HaversineKm(origin, geo.Point{Lat: *loc.Latitude, Lng: *loc.Longitude})
		sum.DistanceKm = &d
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].DistanceKm, summaries[j].DistanceKm
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return summaries, nil
}

// summarize joins display fields and engagement counts onto events
func (s *eventServiceImpl) summarize(ctx context.Context, events []*domain.Event) ([]*dto.EventSummary, error) {
	result := make([]*dto.EventSummary, 0, len(events))
	if len(events) == 0 {
		return result, nil
	}

	l, err := s.loadLookups(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	participants, err := s.participantRepo.CountByEvents(ctx, ids)
	if err != nil {
		return nil, internal(s.logger, "Failed to count participants", err)
	}
	favorites, err := s.favoriteRepo.CountByEvents(ctx, ids)
	if err != nil {
		return nil, internal(s.logger, "Failed to count favorites", err)
	}

	for _, e := range events {
		result = append(result, &dto.EventSummary{
			EventDisplay:     *l.display(e),
			ParticipantCount: participants[e.ID],
			FavoriteCount:    favorites[e.ID],
		})
	}
	return result, nil
}
