package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CouponModel represents the database persistence model for coupons.
// DiscountType and DiscountValue together encode the discount: "percent"
// and "amount" carry a value, "none" ignores it. UsedCount is maintained
// under a conditional update so the usage cap holds under concurrency.
type CouponModel struct {
	ID             uint            `gorm:"primarykey"`
	Name           string          `gorm:"not null;size:100;index:idx_coupons_name_plan"`
	PlanID         *uint           `gorm:"index:idx_coupons_name_plan"`
	ExpirationDays *int
	AmountOfUses   *int
	UsedCount      int             `gorm:"not null;default:0"`
	DiscountType   string          `gorm:"not null;size:10;default:none"`
	DiscountValue  decimal.Decimal `gorm:"not null;type:decimal(10,2);default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (CouponModel) TableName() string {
	return "coupons"
}
