package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabletop-events-api/internal/domain"
	"tabletop-events-api/internal/repository"
	"tabletop-events-api/internal/response"
)

func existingEvent(ctx context.Context, id int64) (*domain.Event, error) {
	return &domain.Event{ID: id, HostID: 1}, nil
}

func TestParticipantService_Join(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		participants := &MockParticipantRepository{
			CreateFunc: func(ctx context.Context, p *domain.Participant) error {
				p.ID = 7
				p.JoinedAt = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
				return nil
			},
		}
		accounts := &MockAccountRepository{
			FindByIDFunc: func(ctx context.Context, id int64) (*domain.Account, error) {
				return &domain.Account{ID: id, Username: "bob", FirstName: "Bob", LastName: "Builder"}, nil
			},
		}
		recorder := newRecordingRecorder()
		svc := NewParticipantService(participants, &MockEventRepository{FindByIDFunc: existingEvent}, accounts, recorder, nil)

		resp, err := svc.Join(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, int64(1), resp.EventID)
		assert.Equal(t, int64(2), resp.UserID)
		assert.Equal(t, "bob", resp.Username)
		assert.Equal(t, 1, recorder.joined)
	})

	t.Run("event not found", func(t *testing.T) {
		svc := NewParticipantService(&MockParticipantRepository{}, &MockEventRepository{}, &MockAccountRepository{}, nil, nil)
		_, err := svc.Join(context.Background(), 1, 2)
		assertAppError(t, err, response.ErrCodeNotFound)
	})

	t.Run("already joined", func(t *testing.T) {
		created := false
		participants := &MockParticipantRepository{
			FindByEventAndUserFunc: func(ctx context.Context, eventID, userID int64) (*domain.Participant, error) {
				return &domain.Participant{ID: 1, EventID: eventID, UserID: userID}, nil
			},
			CreateFunc: func(ctx context.Context, p *domain.Participant) error {
				created = true
				return nil
			},
		}
		svc := NewParticipantService(participants, &MockEventRepository{FindByIDFunc: existingEvent}, &MockAccountRepository{}, nil, nil)

		_, err := svc.Join(context.Background(), 1, 2)
		appErr := assertAppError(t, err, response.ErrCodeAlreadyExists)
		assert.Equal(t, "Already joined this event", appErr.Message)
		assert.False(t, created)
	})

	t.Run("unique index fallback", func(t *testing.T) {
		participants := &MockParticipantRepository{
			CreateFunc: func(ctx context.Context, p *domain.Participant) error {
				return repository.ErrDuplicateEntry
			},
		}
		svc := NewParticipantService(participants, &MockEventRepository{FindByIDFunc: existingEvent}, &MockAccountRepository{}, nil, nil)

		_, err := svc.Join(context.Background(), 1, 2)
		assertAppError(t, err, response.ErrCodeAlreadyExists)
	})
}

func TestParticipantService_LeaveIsIdempotent(t *testing.T) {
	calls := 0
	participants := &MockParticipantRepository{
		DeleteByEventAndUserFunc: func(ctx context.Context, eventID, userID int64) (int64, error) {
			calls++
			return 0, nil
		},
	}
	svc := NewParticipantService(participants, &MockEventRepository{}, &MockAccountRepository{}, nil, nil)

	require.NoError(t, svc.Leave(context.Background(), 1, 2))
	require.NoError(t, svc.Leave(context.Background(), 1, 2))
	assert.Equal(t, 2, calls)
}

func TestParticipantService_ListParticipants(t *testing.T) {
	participants := &MockParticipantRepository{
		ListByEventFunc: func(ctx context.Context, eventID int64) ([]*domain.Participant, error) {
			return []*domain.Participant{
				{ID: 1, EventID: eventID, UserID: 2, Account: &domain.Account{ID: 2, Username: "bob", FirstName: "Bob"}},
				{ID: 2, EventID: eventID, UserID: 3},
			}, nil
		},
	}
	svc := NewParticipantService(participants, &MockEventRepository{}, &MockAccountRepository{}, nil, nil)

	list, err := svc.ListParticipants(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bob", list[0].Username)
	assert.Equal(t, "Bob", list[0].FirstName)
	assert.Empty(t, list[1].Username)
}

func TestFavoriteService_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		favorites := &MockFavoriteRepository{
			CreateFunc: func(ctx context.Context, f *domain.Favorite) error {
				f.ID = 3
				return nil
			},
		}
		recorder := newRecordingRecorder()
		svc := NewFavoriteService(favorites, &MockEventRepository{FindByIDFunc: existingEvent}, recorder, nil)

		fav, err := svc.Add(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), fav.ID)
		assert.Equal(t, 1, recorder.favorited)
	})

	t.Run("already favorited", func(t *testing.T) {
		favorites := &MockFavoriteRepository{
			FindByEventAndUserFunc: func(ctx context.Context, eventID, userID int64) (*domain.Favorite, error) {
				return &domain.Favorite{ID: 1}, nil
			},
		}
		svc := NewFavoriteService(favorites, &MockEventRepository{FindByIDFunc: existingEvent}, nil, nil)

		_, err := svc.Add(context.Background(), 1, 2)
		appErr := assertAppError(t, err, response.ErrCodeAlreadyExists)
		assert.Equal(t, "Event already favorited", appErr.Message)
	})

	t.Run("event not found", func(t *testing.T) {
		svc := NewFavoriteService(&MockFavoriteRepository{}, &MockEventRepository{}, nil, nil)
		_, err := svc.Add(context.Background(), 1, 2)
		assertAppError(t, err, response.ErrCodeNotFound)
	})
}

func TestFavoriteService_ListByUserFillsEventFields(t *testing.T) {
	date := time.Date(2026, 5, 1, 19, 0, 0, 0, time.UTC)
	favorites := &MockFavoriteRepository{
		ListByUserFunc: func(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
			return []*domain.Favorite{{
				ID: 1, EventID: 9, UserID: userID,
				Event: &domain.Event{
					ID: 9, Title: "Game Night", Description: "Bring snacks", Date: date, LocationID: 4,
					Host:     &domain.Account{Username: "alice", FirstName: "Alice", LastName: "Liddell"},
					Location: &domain.Location{ID: 4, Address: "123 Main St"},
				},
			}}, nil
		},
	}
	svc := NewFavoriteService(favorites, &MockEventRepository{}, nil, nil)

	list, err := svc.ListByUser(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	f := list[0]
	assert.Equal(t, "Game Night", f.EventTitle)
	assert.Equal(t, "Bring snacks", f.EventDescription)
	assert.True(t, f.EventDate.Equal(date))
	assert.Equal(t, int64(4), f.LocationID)
	assert.Equal(t, "123 Main St", f.Address)
	assert.Equal(t, "alice", f.HostUsername)
	assert.Equal(t, "Liddell", f.HostLastName)
}
