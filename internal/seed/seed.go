package seed

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tabletop-events-api/internal/domain"
	"tabletop-events-api/internal/repository"
)

func coord(v float64) *float64 { return &v }

// Locations are the stores created by a fresh seed
var Locations = []domain.Location{
	{Address: "Game Haven - Charlotte", Latitude: coord(35.2271), Longitude: coord(-80.8431)},
	{Address: "Boardwalk Games - Raleigh", Latitude: coord(35.7796), Longitude: coord(-78.6382)},
	{Address: "Dice & Dragons - Greensboro", Latitude: coord(36.0726), Longitude: coord(-79.7920)},
	{Address: "Card Kingdom - Durham", Latitude: coord(35.9940), Longitude: coord(-78.8986)},
	{Address: "Tabletop Tavern - Winston-Salem", Latitude: coord(36.0999), Longitude: coord(-80.2442)},
}

// Games are the catalog entries created by a fresh seed
var Games = []domain.Game{
	{Title: "Dungeons & Dragons", Description: "The world's greatest roleplaying game"},
	{Title: "Magic: The Gathering", Description: "The original collectible card game"},
	{Title: "Warhammer 40K", Description: "Tabletop miniature wargame set in a dystopian sci-fi universe"},
	{Title: "Pathfinder", Description: "Fantasy roleplaying game derived from D&D 3.5"},
	{Title: "Catan", Description: "Popular resource management and trading board game"},
	{Title: "Pokemon TCG", Description: "Collectible card game based on the Pokemon franchise"},
}

// Result counts what a run inserted and what it found already present
type Result struct {
	LocationsCreated int `json:"locationsCreated"`
	LocationsSkipped int `json:"locationsSkipped"`
	GamesCreated     int `json:"gamesCreated"`
	GamesSkipped     int `json:"gamesSkipped"`
	Failed           int `json:"failed"`
}

// Seeder inserts the starter catalog. Rows are matched by address and
// title, so running it again only fills in what is missing.
type Seeder struct {
	games     repository.GameRepository
	locations repository.LocationRepository
	logger    *zap.Logger
}

// NewSeeder creates a Seeder
func NewSeeder(games repository.GameRepository, locations repository.LocationRepository, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{games: games, locations: locations, logger: logger}
}

// Run seeds locations then games. A failing row is logged and skipped; the
// returned error reports only a cancelled context.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	res := &Result{}

	for i := range Locations {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		loc := Locations[i]
		created, err := s.seedLocation(ctx, &loc)
		switch {
		case err != nil:
			res.Failed++
			s.logger.Warn("Failed to seed location", zap.String("address", loc.Address), zap.Error(err))
		case created:
			res.LocationsCreated++
		default:
			res.LocationsSkipped++
		}
	}

	for i := range Games {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		game := Games[i]
		created, err := s.seedGame(ctx, &game)
		switch {
		case err != nil:
			res.Failed++
			s.logger.Warn("Failed to seed game", zap.String("title", game.Title), zap.Error(err))
		case created:
			res.GamesCreated++
		default:
			res.GamesSkipped++
		}
	}

	s.logger.Info("Seed completed",
		zap.Int("locations_created", res.LocationsCreated),
		zap.Int("locations_skipped", res.LocationsSkipped),
		zap.Int("games_created", res.GamesCreated),
		zap.Int("games_skipped", res.GamesSkipped),
		zap.Int("failed", res.Failed),
	)
	return res, nil
}

func (s *Seeder) seedLocation(ctx context.Context, loc *domain.Location) (bool, error) {
	_, err := s.locations.FindByAddress(ctx, loc.Address)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := s.locations.Create(ctx, loc); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Seeder) seedGame(ctx context.Context, game *domain.Game) (bool, error) {
	_, err := s.games.FindByTitle(ctx, game.Title)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := s.games.Create(ctx, game); err != nil {
		return false, err
	}
	return true, nil
}
