package domain

import "time"

// Participant records an account joining an event (RSVP).
type Participant struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID  int64     `gorm:"not null;index:idx_participants_event_id;uniqueIndex:uq_participants_event_user" json:"eventId"`
	UserID   int64     `gorm:"not null;index:idx_participants_user_id;uniqueIndex:uq_participants_event_user" json:"userId"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joinedAt"`

	Event   *Event   `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	Account *Account `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}
