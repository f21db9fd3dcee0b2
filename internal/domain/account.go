package domain

import "time"

// Account is a registered member. Username is the unique login name and the
// only field the admin allow-list is matched against; Email is contact
// information and carries no authority.
type Account struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string `gorm:"type:varchar(255);not null;uniqueIndex:uq_accounts_username" json:"username"`
	Email     string `gorm:"type:varchar(255);index:idx_accounts_email" json:"email"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	FirstName string `gorm:"type:varchar(100)" json:"firstName"`
	LastName  string `gorm:"type:varchar(100)" json:"lastName"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"isAdmin"`
	// ExternalSubject is the identity provider's subject for accounts it
	// provisioned; nil for password accounts
	ExternalSubject *string   `gorm:"type:varchar(255);uniqueIndex:uq_accounts_external_subject" json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// DisplayName is the "first last" form shown as an event author.
func (a *Account) DisplayName() string {
	return a.FirstName + " " + a.LastName
}
