package dto

import "tabletop-events-api/internal/domain"

// CreateGameRequest is the body of POST /games
type CreateGameRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateGameRequest is the body of PUT /games/:id
type UpdateGameRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

// CreateLocationRequest is the body of POST /locations
type CreateLocationRequest struct {
	Address   string   `json:"address" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
}

// UpdateLocationRequest is the body of PUT /locations/:id
type UpdateLocationRequest struct {
	Address   string   `json:"address" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
}

// OptionsResponse feeds the event form's game and location pickers
type OptionsResponse struct {
	Games     []*domain.Game     `json:"games"`
	Locations []*domain.Location `json:"locations"`
}
