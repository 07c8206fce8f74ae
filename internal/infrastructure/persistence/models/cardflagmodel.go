package models

import "time"

// CardFlagModel represents the database persistence model for card brands
type CardFlagModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:50"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (CardFlagModel) TableName() string {
	return "card_flags"
}
