package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionModel represents the database persistence model for
// subscriptions. The unique index on Email enforces one subscription per
// email at the database level.
type SubscriptionModel struct {
	ID        uint            `gorm:"primarykey"`
	PlanID    uint            `gorm:"not null;index"`
	CouponID  *uint           `gorm:"index"`
	Email     string          `gorm:"uniqueIndex;not null;size:255"`
	Active    bool            `gorm:"not null;default:false"`
	PricePaid decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
