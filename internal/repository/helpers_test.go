package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tabletop-events-api/internal/database"
	"tabletop-events-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteMemory()
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, zap.NewNop()))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

type fixture struct {
	host     *domain.Account
	guest    *domain.Account
	game     *domain.Game
	location *domain.Location
	event    *domain.Event
}

// seedFixture inserts alice (host), bob, Catan, 123 Main St and one event.
func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		host:     &domain.Account{Username: "alice", Password: "hash", FirstName: "Alice", LastName: "Liddell"},
		guest:    &domain.Account{Username: "bob", Password: "hash", FirstName: "Bob", LastName: "Builder"},
		game:     &domain.Game{Title: "Catan", Description: "Trade and build"},
		location: &domain.Location{Address: "123 Main St"},
	}
	require.NoError(t, db.Create(f.host).Error)
	require.NoError(t, db.Create(f.guest).Error)
	require.NoError(t, db.Create(f.game).Error)
	require.NoError(t, db.Create(f.location).Error)

	f.event = &domain.Event{
		HostID:     f.host.ID,
		GameID:     f.game.ID,
		LocationID: f.location.ID,
		Title:      "Game Night",
		Date:       domain.NormalizeEventDate(time.Date(2026, 5, 1, 19, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, db.Create(f.event).Error)
	return f
}
