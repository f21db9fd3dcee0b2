package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tabletop-events-api/internal/domain"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	ListFunc                  func(ctx context.Context) ([]*domain.Account, error)
	FindByIDFunc              func(ctx context.Context, id int64) (*domain.Account, error)
	FindByUsernameFunc        func(ctx context.Context, username string) (*domain.Account, error)
	FindByExternalSubjectFunc func(ctx context.Context, subject string) (*domain.Account, error)
	CreateFunc                func(ctx context.Context, account *domain.Account) error
	UpdateFunc                func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Account, error)
	DeleteFunc                func(ctx context.Context, id int64) (*domain.Account, error)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAccountRepository) FindByExternalSubject(ctx context.Context, subject string) (*domain.Account, error) {
	if m.FindByExternalSubjectFunc != nil {
		return m.FindByExternalSubjectFunc(ctx, subject)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	return nil
}

func (m *MockAccountRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Account, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil, nil
}

func (m *MockAccountRepository) Delete(ctx context.Context, id int64) (*domain.Account, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, nil
}

// MockGameRepository is a mock implementation of GameRepository
type MockGameRepository struct {
	ListFunc        func(ctx context.Context) ([]*domain.Game, error)
	FindByIDFunc    func(ctx context.Context, id int64) (*domain.Game, error)
	FindByTitleFunc func(ctx context.Context, title string) (*domain.Game, error)
	CreateFunc      func(ctx context.Context, game *domain.Game) error
	UpdateFunc      func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Game, error)
	DeleteFunc      func(ctx context.Context, id int64) (*domain.Game, error)
}

func (m *MockGameRepository) List(ctx context.Context) ([]*domain.Game, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockGameRepository) FindByID(ctx context.Context, id int64) (*domain.Game, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockGameRepository) FindByTitle(ctx context.Context, title string) (*domain.Game, error) {
	if m.FindByTitleFunc != nil {
		return m.FindByTitleFunc(ctx, title)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockGameRepository) Create(ctx context.Context, game *domain.Game) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, game)
	}
	return nil
}

func (m *MockGameRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Game, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil, nil
}

func (m *MockGameRepository) Delete(ctx context.Context, id int64) (*domain.Game, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, nil
}

// MockLocationRepository is a mock implementation of LocationRepository
type MockLocationRepository struct {
	ListFunc          func(ctx context.Context) ([]*domain.Location, error)
	FindByIDFunc      func(ctx context.Context, id int64) (*domain.Location, error)
	FindByAddressFunc func(ctx context.Context, address string) (*domain.Location, error)
	CreateFunc        func(ctx context.Context, location *domain.Location) error
	UpdateFunc        func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Location, error)
	DeleteFunc        func(ctx context.Context, id int64) (*domain.Location, error)
}

func (m *MockLocationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id int64) (*domain.Location, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockLocationRepository) FindByAddress(ctx context.Context, address string) (*domain.Location, error) {
	if m.FindByAddressFunc != nil {
		return m.FindByAddressFunc(ctx, address)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockLocationRepository) Create(ctx context.Context, location *domain.Location) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, location)
	}
	return nil
}

func (m *MockLocationRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Location, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil, nil
}

func (m *MockLocationRepository) Delete(ctx context.Context, id int64) (*domain.Location, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, nil
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	ListFunc         func(ctx context.Context) ([]*domain.Event, error)
	FindByIDFunc     func(ctx context.Context, id int64) (*domain.Event, error)
	ListBetweenFunc  func(ctx context.Context, from, to time.Time) ([]*domain.Event, error)
	ListUpcomingFunc func(ctx context.Context, from time.Time) ([]*domain.Event, error)
	CreateFunc       func(ctx context.Context, event *domain.Event) error
	UpdateFunc       func(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Event, error)
	DeleteFunc       func(ctx context.Context, id int64) (*domain.Event, error)
}

func (m *MockEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockEventRepository) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockEventRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	if m.ListBetweenFunc != nil {
		return m.ListBetweenFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *MockEventRepository) ListUpcoming(ctx context.Context, from time.Time) ([]*domain.Event, error) {
	if m.ListUpcomingFunc != nil {
		return m.ListUpcomingFunc(ctx, from)
	}
	return nil, nil
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Event, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil, nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id int64) (*domain.Event, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil, nil
}

// MockParticipantRepository is a mock implementation of ParticipantRepository
type MockParticipantRepository struct {
	CreateFunc               func(ctx context.Context, participant *domain.Participant) error
	FindByEventAndUserFunc   func(ctx context.Context, eventID, userID int64) (*domain.Participant, error)
	ListByEventFunc          func(ctx context.Context, eventID int64) ([]*domain.Participant, error)
	DeleteByEventAndUserFunc func(ctx context.Context, eventID, userID int64) (int64, error)
	CountByEventsFunc        func(ctx context.Context, eventIDs []int64) (map[int64]int64, error)
}

func (m *MockParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, participant)
	}
	return nil
}

func (m *MockParticipantRepository) FindByEventAndUser(ctx context.Context, eventID, userID int64) (*domain.Participant, error) {
	if m.FindByEventAndUserFunc != nil {
		return m.FindByEventAndUserFunc(ctx, eventID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockParticipantRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Participant, error) {
	if m.ListByEventFunc != nil {
		return m.ListByEventFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *MockParticipantRepository) DeleteByEventAndUser(ctx context.Context, eventID, userID int64) (int64, error) {
	if m.DeleteByEventAndUserFunc != nil {
		return m.DeleteByEventAndUserFunc(ctx, eventID, userID)
	}
	return 0, nil
}

func (m *MockParticipantRepository) CountByEvents(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	if m.CountByEventsFunc != nil {
		return m.CountByEventsFunc(ctx, eventIDs)
	}
	return map[int64]int64{}, nil
}

// MockFavoriteRepository is a mock implementation of FavoriteRepository
type MockFavoriteRepository struct {
	CreateFunc               func(ctx context.Context, favorite *domain.Favorite) error
	FindByEventAndUserFunc   func(ctx context.Context, eventID, userID int64) (*domain.Favorite, error)
	ListByEventFunc          func(ctx context.Context, eventID int64) ([]*domain.Favorite, error)
	ListByUserFunc           func(ctx context.Context, userID int64) ([]*domain.Favorite, error)
	DeleteByEventAndUserFunc func(ctx context.Context, eventID, userID int64) (int64, error)
	CountByEventsFunc        func(ctx context.Context, eventIDs []int64) (map[int64]int64, error)
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, favorite)
	}
	return nil
}

func (m *MockFavoriteRepository) FindByEventAndUser(ctx context.Context, eventID, userID int64) (*domain.Favorite, error) {
	if m.FindByEventAndUserFunc != nil {
		return m.FindByEventAndUserFunc(ctx, eventID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockFavoriteRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Favorite, error) {
	if m.ListByEventFunc != nil {
		return m.ListByEventFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockFavoriteRepository) DeleteByEventAndUser(ctx context.Context, eventID, userID int64) (int64, error) {
	if m.DeleteByEventAndUserFunc != nil {
		return m.DeleteByEventAndUserFunc(ctx, eventID, userID)
	}
	return 0, nil
}

func (m *MockFavoriteRepository) CountByEvents(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	if m.CountByEventsFunc != nil {
		return m.CountByEventsFunc(ctx, eventIDs)
	}
	return map[int64]int64{}, nil
}

// recordingRecorder counts business events
type recordingRecorder struct {
	created   int
	joined    int
	favorited int
	attempts  map[string]int
}

func newRecordingRecorder() *recordingRecorder {
	return &recordingRecorder{attempts: make(map[string]int)}
}

func (r *recordingRecorder) IncrementEventCreated()  { r.created++ }
func (r *recordingRecorder) IncrementEventJoined()   { r.joined++ }
func (r *recordingRecorder) IncrementFavoriteAdded() { r.favorited++ }
func (r *recordingRecorder) RecordAuthAttempt(method, result string) {
	r.attempts[method+"/"+result]++
}
