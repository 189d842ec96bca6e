package models

import "github.com/shopspring/decimal"

// BankTransaction records the intent to move funds between two cards. Card
// numbers are denormalized snapshots, not foreign keys: the referenced card
// may no longer resolve to an active card at approval time, so the approval
// path re-validates both sides.
//
// State machine: pending (IsCompleted=false) -> completed, terminal. Failed
// approvals leave the row pending and may be retried.
type BankTransaction struct {
	Base
	Reference          string          `gorm:"uniqueIndex;not null" json:"reference"`
	Amount             decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	SenderCardNumber   string          `gorm:"size:16;not null" json:"sender_card_number"`
	ReceiverCardNumber string          `gorm:"size:16;not null" json:"receiver_card_number"`
	IsCompleted        bool            `gorm:"not null;default:false" json:"is_completed"`
}
