package models

import "time"

// CardModel represents the database persistence model for stored cards.
// The unique index on Number backs the dedup-on-write guarantee: the same
// card number is never stored twice.
type CardModel struct {
	ID         uint      `gorm:"primarykey"`
	Number     string    `gorm:"uniqueIndex;not null;size:19"`
	Last4      string    `gorm:"column:last_4_digits;not null;size:4"`
	ClientName string    `gorm:"not null;size:100"`
	ExpireDate time.Time `gorm:"not null"`
	CVC        string    `gorm:"not null;size:4"`
	CardFlagID uint      `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (CardModel) TableName() string {
	return "cards"
}
