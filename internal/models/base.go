package models

import "time"

// Base is embedded by every persisted entity. Rows are never physically
// removed; IsDeleted marks them invisible to all read paths.
type Base struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	IsDeleted bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
