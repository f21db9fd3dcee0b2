package handler

import (
	"context"
	"time"

	"tabletop-events-api/internal/auth"
	"tabletop-events-api/internal/domain"
	"tabletop-events-api/internal/dto"
	"tabletop-events-api/internal/geo"
)

// MockEventService is a mock implementation of service.EventService
type MockEventService struct {
	GetAllEventsFunc  func(ctx context.Context) ([]*dto.EventDisplay, error)
	GetOneEventFunc   func(ctx context.Context, id int64) (*dto.EventInfo, error)
	CreateEventFunc   func(ctx context.Context, caller *auth.Caller, req *dto.CreateEventRequest) (*domain.Event, error)
	UpdateEventFunc   func(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateEventRequest) (*domain.Event, error)
	RemoveEventFunc   func(ctx context.Context, caller *auth.Caller, id int64) (*domain.Event, error)
	TodayEventsFunc   func(ctx context.Context, now time.Time) ([]*dto.EventSummary, error)
	PopularEventsFunc func(ctx context.Context, now time.Time, limit int) ([]*dto.EventSummary, error)
	NearbyEventsFunc  func(ctx context.Context, now time.Time, origin geo.Point) ([]*dto.EventSummary, error)
}

func (m *MockEventService) GetAllEvents(ctx context.Context) ([]*dto.EventDisplay, error) {
	if m.GetAllEventsFunc != nil {
		return m.GetAllEventsFunc(ctx)
	}
	return nil, nil
}

func (m *MockEventService) GetOneEvent(ctx context.Context, id int64) (*dto.EventInfo, error) {
	if m.GetOneEventFunc != nil {
		return m.GetOneEventFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockEventService) CreateEvent(ctx context.Context, caller *auth.Caller, req *dto.CreateEventRequest) (*domain.Event, error) {
	if m.CreateEventFunc != nil {
		return m.CreateEventFunc(ctx, caller, req)
	}
	return nil, nil
}

func (m *MockEventService) UpdateEvent(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateEventRequest) (*domain.Event, error) {
	if m.UpdateEventFunc != nil {
		return m.UpdateEventFunc(ctx, caller, id, req)
	}
	return nil, nil
}

func (m *MockEventService) RemoveEvent(ctx context.Context, caller *auth.Caller, id int64) (*domain.Event, error) {
	if m.RemoveEventFunc != nil {
		return m.RemoveEventFunc(ctx, caller, id)
	}
	return nil, nil
}

func (m *MockEventService) TodayEvents(ctx context.Context, now time.Time) ([]*dto.EventSummary, error) {
	if m.TodayEventsFunc != nil {
		return m.TodayEventsFunc(ctx, now)
	}
	return nil, nil
}

func (m *MockEventService) PopularEvents(ctx context.Context, now time.Time, limit int) ([]*dto.EventSummary, error) {
	if m.PopularEventsFunc != nil {
		return m.PopularEventsFunc(ctx, now, limit)
	}
	return nil, nil
}

func (m *MockEventService) NearbyEvents(ctx context.Context, now time.Time, origin geo.Point) ([]*dto.EventSummary, error) {
	if m.NearbyEventsFunc != nil {
		return m.NearbyEventsFunc(ctx, now, origin)
	}
	return nil, nil
}

// MockGameService is a mock implementation of service.GameService
type MockGameService struct {
	GetGameFunc    func(ctx context.Context, id int64) (*domain.Game, error)
	GetGamesFunc   func(ctx context.Context) ([]*domain.Game, error)
	CreateGameFunc func(ctx context.Context, caller *auth.Caller, req *dto.CreateGameRequest) (*domain.Game, error)
	UpdateGameFunc func(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateGameRequest) (*domain.Game, error)
	DeleteGameFunc func(ctx context.Context, caller *auth.Caller, id int64) (*domain.Game, error)
}

func (m *MockGameService) GetGame(ctx context.Context, id int64) (*domain.Game, error) {
	if m.GetGameFunc != nil {
		return m.GetGameFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockGameService) GetGames(ctx context.Context) ([]*domain.Game, error) {
	if m.GetGamesFunc != nil {
		return m.GetGamesFunc(ctx)
	}
	return nil, nil
}

func (m *MockGameService) CreateGame(ctx context.Context, caller *auth.Caller, req *dto.CreateGameRequest) (*domain.Game, error) {
	if m.CreateGameFunc != nil {
		return m.CreateGameFunc(ctx, caller, req)
	}
	return nil, nil
}

func (m *MockGameService) UpdateGame(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateGameRequest) (*domain.Game, error) {
	if m.UpdateGameFunc != nil {
		return m.UpdateGameFunc(ctx, caller, id, req)
	}
	return nil, nil
}

func (m *MockGameService) DeleteGame(ctx context.Context, caller *auth.Caller, id int64) (*domain.Game, error) {
	if m.DeleteGameFunc != nil {
		return m.DeleteGameFunc(ctx, caller, id)
	}
	return nil, nil
}

// MockParticipantService is a mock implementation of service.ParticipantService
type MockParticipantService struct {
	JoinFunc             func(ctx context.Context, eventID, userID int64) (*dto.ParticipantResponse, error)
	LeaveFunc            func(ctx context.Context, eventID, userID int64) error
	ListParticipantsFunc func(ctx context.Context, eventID int64) ([]*dto.ParticipantResponse, error)
}

func (m *MockParticipantService) Join(ctx context.Context, eventID, userID int64) (*dto.ParticipantResponse, error) {
	if m.JoinFunc != nil {
		return m.JoinFunc(ctx, eventID, userID)
	}
	return nil, nil
}

func (m *MockParticipantService) Leave(ctx context.Context, eventID, userID int64) error {
	if m.LeaveFunc != nil {
		return m.LeaveFunc(ctx, eventID, userID)
	}
	return nil
}

func (m *MockParticipantService) ListParticipants(ctx context.Context, eventID int64) ([]*dto.ParticipantResponse, error) {
	if m.ListParticipantsFunc != nil {
		return m.ListParticipantsFunc(ctx, eventID)
	}
	return nil, nil
}

// MockFavoriteService is a mock implementation of service.FavoriteService
type MockFavoriteService struct {
	AddFunc         func(ctx context.Context, eventID, userID int64) (*dto.FavoriteResponse, error)
	RemoveFunc      func(ctx context.Context, eventID, userID int64) error
	ListByEventFunc func(ctx context.Context, eventID int64) ([]*dto.FavoriteResponse, error)
	ListByUserFunc  func(ctx context.Context, userID int64) ([]*dto.FavoriteResponse, error)
}

func (m *MockFavoriteService) Add(ctx context.Context, eventID, userID int64) (*dto.FavoriteResponse, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, eventID, userID)
	}
	return nil, nil
}

func (m *MockFavoriteService) Remove(ctx context.Context, eventID, userID int64) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, eventID, userID)
	}
	return nil
}

func (m *MockFavoriteService) ListByEvent(ctx context.Context, eventID int64) ([]*dto.FavoriteResponse, error) {
	if m.ListByEventFunc != nil {
		return m.ListByEventFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *MockFavoriteService) ListByUser(ctx context.Context, userID int64) ([]*dto.FavoriteResponse, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

// MockAccountService is a mock implementation of service.AccountService
type MockAccountService struct {
	GetAccountFunc               func(ctx context.Context, id int64) (*domain.Account, error)
	GetAccountsFunc              func(ctx context.Context) ([]*domain.Account, error)
	FindByUsernameFunc           func(ctx context.Context, username string) (*domain.Account, error)
	CreateAccountFunc            func(ctx context.Context, req *dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccountFunc            func(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateAccountRequest) (*domain.Account, error)
	UpdatePasswordFunc           func(ctx context.Context, caller *auth.Caller, id int64, password string) error
	DeleteAccountFunc            func(ctx context.Context, caller *auth.Caller, id int64) (*domain.Account, error)
	SetAdminFunc                 func(ctx context.Context, caller *auth.Caller, email string, isAdmin bool) (*domain.Account, error)
	EnsureAccountForIdentityFunc func(ctx context.Context, identity auth.Identity) (*domain.Account, error)
}

func (m *MockAccountService) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetAccountFunc != nil {
		return m.GetAccountFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAccountService) GetAccounts(ctx context.Context) ([]*domain.Account, error) {
	if m.GetAccountsFunc != nil {
		return m.GetAccountsFunc(ctx)
	}
	return nil, nil
}

func (m *MockAccountService) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*domain.Account, error) {
	if m.CreateAccountFunc != nil {
		return m.CreateAccountFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateAccountRequest) (*domain.Account, error) {
	if m.UpdateAccountFunc != nil {
		return m.UpdateAccountFunc(ctx, caller, id, req)
	}
	return nil, nil
}

func (m *MockAccountService) UpdatePassword(ctx context.Context, caller *auth.Caller, id int64, password string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, caller, id, password)
	}
	return nil
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, caller *auth.Caller, id int64) (*domain.Account, error) {
	if m.DeleteAccountFunc != nil {
		return m.DeleteAccountFunc(ctx, caller, id)
	}
	return nil, nil
}

func (m *MockAccountService) SetAdmin(ctx context.Context, caller *auth.Caller, email string, isAdmin bool) (*domain.Account, error) {
	if m.SetAdminFunc != nil {
		return m.SetAdminFunc(ctx, caller, email, isAdmin)
	}
	return nil, nil
}

func (m *MockAccountService) EnsureAccountForIdentity(ctx context.Context, identity auth.Identity) (*domain.Account, error) {
	if m.EnsureAccountForIdentityFunc != nil {
		return m.EnsureAccountForIdentityFunc(ctx, identity)
	}
	return nil, nil
}

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	SignupFunc   func(ctx context.Context, req *dto.CreateAccountRequest) (*dto.SessionResponse, error)
	LoginFunc    func(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	LogoutFunc   func(ctx context.Context, claims *auth.SessionClaims) error
	ExchangeFunc func(ctx context.Context, token string) (*dto.SessionResponse, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req *dto.CreateAccountRequest) (*dto.SessionResponse, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, claims *auth.SessionClaims) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, claims)
	}
	return nil
}

func (m *MockAuthService) Exchange(ctx context.Context, token string) (*dto.SessionResponse, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, token)
	}
	return nil, nil
}

type MockLocationService struct {
	GetLocationFunc    func(ctx context.Context, id int64) (*domain.Location, error)
	GetLocationsFunc   func(ctx context.Context) ([]*domain.Location, error)
	CreateLocationFunc func(ctx context.Context, caller *auth.Caller, req *dto.CreateLocationRequest) (*domain.Location, error)
	UpdateLocationFunc func(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateLocationRequest) (*domain.Location, error)
	DeleteLocationFunc func(ctx context.Context, caller *auth.Caller, id int64) (*domain.Location, error)
}

func (m *MockLocationService) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	if m.GetLocationFunc != nil {
		return m.GetLocationFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockLocationService) GetLocations(ctx context.Context) ([]*domain.Location, error) {
	if m.GetLocationsFunc != nil {
		return m.GetLocationsFunc(ctx)
	}
	return nil, nil
}

func (m *MockLocationService) CreateLocation(ctx context.Context, caller *auth.Caller, req *dto.CreateLocationRequest) (*domain.Location, error) {
	if m.CreateLocationFunc != nil {
		return m.CreateLocationFunc(ctx, caller, req)
	}
	return nil, nil
}

func (m *MockLocationService) UpdateLocation(ctx context.Context, caller *auth.Caller, id int64, req *dto.UpdateLocationRequest) (*domain.Location, error) {
	if m.UpdateLocationFunc != nil {
		return m.UpdateLocationFunc(ctx, caller, id, req)
	}
	return nil, nil
}

func (m *MockLocationService) DeleteLocation(ctx context.Context, caller *auth.Caller, id int64) (*domain.Location, error) {
	if m.DeleteLocationFunc != nil {
		return m.DeleteLocationFunc(ctx, caller, id)
	}
	return nil, nil
}

type MockOptionsService struct {
	GetOptionsFunc func(ctx context.Context) (*dto.OptionsResponse, error)
}

func (m *MockOptionsService) GetOptions(ctx context.Context) (*dto.OptionsResponse, error) {
	if m.GetOptionsFunc != nil {
		return m.GetOptionsFunc(ctx)
	}
	return &dto.OptionsResponse{}, nil
}
