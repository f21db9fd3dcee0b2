package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabletop-events-api/internal/domain"
)

func TestFavoriteRepository_ListByEventAndUser(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Favorite{EventID: f.event.ID, UserID: f.guest.ID}))

	byEvent, err := repo.ListByEvent(ctx, f.event.ID)
	require.NoError(t, err)
	require.Len(t, byEvent, 1)
	require.NotNil(t, byEvent[0].Account)
	assert.Equal(t, "bob", byEvent[0].Account.Username)

	byUser, err := repo.ListByUser(ctx, f.guest.ID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	require.NotNil(t, byUser[0].Event)
	assert.Equal(t, "Game Night", byUser[0].Event.Title)
	require.NotNil(t, byUser[0].Event.Host)
	assert.Equal(t, "alice", byUser[0].Event.Host.Username)
	require.NotNil(t, byUser[0].Event.Location)
	assert.Equal(t, "123 Main St", byUser[0].Event.Location.Address)
}

func TestFavoriteRepository_DuplicateAndRemove(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Favorite{EventID: f.event.ID, UserID: f.guest.ID}))
	err := repo.Create(ctx, &domain.Favorite{EventID: f.event.ID, UserID: f.guest.ID})
	assert.ErrorIs(t, err, ErrDuplicateEntry)

	// favorites and participants are independent
	require.NoError(t, NewParticipantRepository(db).Create(ctx, &domain.Participant{EventID: f.event.ID, UserID: f.guest.ID}))

	removed, err := repo.DeleteByEventAndUser(ctx, f.event.ID, f.guest.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	counts, err := repo.CountByEvents(ctx, []int64{f.event.ID})
	require.NoError(t, err)
	assert.Zero(t, counts[f.event.ID])
}
