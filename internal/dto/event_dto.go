package dto

import (
	"time"

	"tabletop-events-api/internal/domain"
)

// CreateEventRequest is the body of POST /events. The host is the caller.
type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Date        *time.Time `json:"date" binding:"required"`
	GameID      int64      `json:"gameId" binding:"required"`
	LocationID  int64      `json:"locationId" binding:"required"`
}

// UpdateEventRequest is the body of PUT /events/:id. Nil fields are left unchanged.
type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	GameID      *int64     `json:"gameId" binding:"omitempty,gt=0"`
	LocationID  *int64     `json:"locationId" binding:"omitempty,gt=0"`
}

// EventDisplay flattens host name, game title and address onto an event for
// list views. Each is omitted when the referenced row is missing.
type EventDisplay struct {
	domain.Event
	Author  *string `json:"author,omitempty"`
	Game    *string `json:"game,omitempty"`
	Address *string `json:"address,omitempty"`
}

// EventInfo nests the full host, game and location for detail views.
type EventInfo struct {
	domain.Event
	Author   *domain.Account  `json:"author"`
	Game     *domain.Game     `json:"game"`
	Location *domain.Location `json:"location"`
}

// EventSummary is an EventDisplay with engagement counts, used by the
// today, popular and nearby views.
type EventSummary struct {
	EventDisplay
	ParticipantCount int64    `json:"participantCount"`
	FavoriteCount    int64    `json:"favoriteCount"`
	DistanceKm       *float64 `json:"distanceKm,omitempty"`
}
