package domain

// Location is a venue address. Coordinates are optional and only feed the
// nearby view.
type Location struct {
	ID        int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Address   string   `gorm:"type:varchar(500);not null" json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// TableName specifies the table name for Location
func (Location) TableName() string {
	return "locations"
}

// HasCoordinates reports whether both latitude and longitude are set.
func (l *Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}
