package service

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gorm.io/gorm"

	"tabletop-events-api/internal/domain"
	"tabletop-events-api/internal/repository"
)

// Joining any event any number of times leaves exactly one participant row
// and every call after the first conflicts.
func TestProperty_JoinIsIdempotentWithConflict(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("repeated joins create one row", prop.ForAll(
		func(eventID, userID int64, attempts int) bool {
			type key struct{ event, user int64 }
			rows := make(map[key]*domain.Participant)

			participants := &MockParticipantRepository{
				FindByEventAndUserFunc: func(ctx context.Context, e, u int64) (*domain.Participant, error) {
					if p, ok := rows[key{e, u}]; ok {
						return p, nil
					}
					return nil, gorm.ErrRecordNotFound
				},
				CreateFunc: func(ctx context.Context, p *domain.Participant) error {
					k := key{p.EventID, p.UserID}
					if _, ok := rows[k]; ok {
						return repository.ErrDuplicateEntry
					}
					p.ID = int64(len(rows) + 1)
					rows[k] = p
					return nil
				},
			}
			svc := NewParticipantService(participants, &MockEventRepository{FindByIDFunc: existingEvent}, &MockAccountRepository{}, nil, nil)

			conflicts := 0
			for i := 0; i < attempts; i++ {
				if _, err := svc.Join(context.Background(), eventID, userID); err != nil {
					conflicts++
				}
			}
			return len(rows) == 1 && conflicts == attempts-1
		},
		gen.Int64Range(1, 1000),
		gen.Int64Range(1, 1000),
		gen.IntRange(1, 6),
	))

	properties.TestingRun(t)
}

// GetAllEvents returns one entry per event, and each display field is absent
// exactly when the row it refers to is missing.
func TestProperty_GetAllEventsDisplayFields(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// ids 1..3 exist, 4..6 dangle
	const existing = 3

	properties.Property("length matches and absent fields mark missing rows", prop.ForAll(
		func(refs []int64) bool {
			events := make([]*domain.Event, 0, len(refs))
			for i, r := range refs {
				events = append(events, &domain.Event{
					ID:         int64(i + 1),
					HostID:     r,
					GameID:     (r % 6) + 1,
					LocationID: ((r + 2) % 6) + 1,
				})
			}

			svc, m := newEventServiceWithMocks()
			m.events.ListFunc = func(ctx context.Context) ([]*domain.Event, error) { return events, nil }
			m.accounts.ListFunc = func(ctx context.Context) ([]*domain.Account, error) {
				return []*domain.Account{{ID: 1}, {ID: 2}, {ID: 3}}, nil
			}
			m.games.ListFunc = func(ctx context.Context) ([]*domain.Game, error) {
				return []*domain.Game{{ID: 1}, {ID: 2}, {ID: 3}}, nil
			}
			m.locations.ListFunc = func(ctx context.Context) ([]*domain.Location, error) {
				return []*domain.Location{{ID: 1}, {ID: 2}, {ID: 3}}, nil
			}

			result, err := svc.GetAllEvents(context.Background())
			if err != nil || len(result) != len(events) {
				return false
			}
			for i, d := range result {
				e := events[i]
				if (d.Author != nil) != (e.HostID <= existing) {
					return false
				}
				if (d.Game != nil) != (e.GameID <= existing) {
					return false
				}
				if (d.Address != nil) != (e.LocationID <= existing) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int64Range(1, 6)),
	))

	properties.TestingRun(t)
}
