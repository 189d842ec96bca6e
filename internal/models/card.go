package models

import "github.com/shopspring/decimal"

// Card is a payment card under an account. A freshly generated card is not
// issued; it participates in balance operations only once an administrator
// approves the issue.
type Card struct {
	Base
	Number     string          `gorm:"uniqueIndex;not null" json:"number"`
	ExpireDate string          `gorm:"size:5;not null" json:"expire_date"` // MM/YY
	CVV        string          `gorm:"size:3;not null" json:"-"`
	Balance    decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"balance"`
	IsIssued   bool            `gorm:"not null;default:false" json:"is_issued"`
	AccountID  uint            `gorm:"not null;index" json:"account_id"`
	Account    Account         `gorm:"foreignKey:AccountID" json:"-"`
}
