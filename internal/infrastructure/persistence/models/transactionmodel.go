package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionModel represents the database persistence model for payment
// attempts. Status is true for approved and false for declined attempts;
// both are kept.
type TransactionModel struct {
	ID             uint            `gorm:"primarykey"`
	CardID         uint            `gorm:"not null;index"`
	SubscriptionID uint            `gorm:"not null;index"`
	Status         bool            `gorm:"not null"`
	PricePaid      decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}
