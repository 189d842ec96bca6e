package models

// Account is a bank account owned by a single user. The 20-digit number is
// generated at creation and never changes.
type Account struct {
	Base
	Number string `gorm:"uniqueIndex;not null" json:"number"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Cards  []Card `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}
