package domain

import "time"

// Favorite is an account's bookmark of an event, independent of participation.
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID   int64     `gorm:"not null;index:idx_favorites_event_id;uniqueIndex:uq_favorites_event_user" json:"eventId"`
	UserID    int64     `gorm:"not null;index:idx_favorites_user_id;uniqueIndex:uq_favorites_event_user" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`

	Event   *Event   `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	Account *Account `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Favorite
func (Favorite) TableName() string {
	return "favorites"
}
