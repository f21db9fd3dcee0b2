package dto

import "time"

// EventRefRequest is the body of POST /participants and POST /favorites
type EventRefRequest struct {
	EventID int64 `json:"eventId" binding:"required"`
}

// ParticipantResponse is a participant row enriched with account fields
type ParticipantResponse struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	UserID    int64     `json:"userId"`
	JoinedAt  time.Time `json:"joinedAt"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

// FavoriteResponse is a favorite row. Listing by event fills the member's
// account fields; listing by user fills the event and host fields.
type FavoriteResponse struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`

	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`

	EventTitle       string     `json:"title,omitempty"`
	EventDescription string     `json:"description,omitempty"`
	EventDate        *time.Time `json:"date,omitempty"`
	LocationID       int64      `json:"locationId,omitempty"`
	Address          string     `json:"address,omitempty"`
	HostUsername     string     `json:"hostUsername,omitempty"`
	HostFirstName    string     `json:"hostFirstName,omitempty"`
	HostLastName     string     `json:"hostLastName,omitempty"`
}

// FavoritesResponse wraps favorite lists as {"favorites": [...]}
type FavoritesResponse struct {
	Favorites []*FavoriteResponse `json:"favorites"`
}

// FavoriteCreatedResponse wraps a new favorite as {"favorite": {...}}
type FavoriteCreatedResponse struct {
	Favorite *FavoriteResponse `json:"favorite"`
}
