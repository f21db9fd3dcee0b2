package domain

// Game is a lookup entity referenced by events.
type Game struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName specifies the table name for Game
func (Game) TableName() string {
	return "games"
}
