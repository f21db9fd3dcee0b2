package domain

import "time"

// Event is a scheduled game session hosted by an account at a location.
// Deleting the host, game or location removes the event.
type Event struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	HostID      int64     `gorm:"not null;index:idx_events_host_id" json:"hostId"`
	GameID      int64     `gorm:"not null;index:idx_events_game_id" json:"gameId"`
	LocationID  int64     `gorm:"not null;index:idx_events_location_id" json:"locationId"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"not null;index:idx_events_date" json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Host     *Account  `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE" json:"-"`
	Game     *Game     `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"-"`
	Location *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}

// NormalizeEventDate converts t to UTC at microsecond precision, the finest
// resolution every supported database keeps.
func NormalizeEventDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
