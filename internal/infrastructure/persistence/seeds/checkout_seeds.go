package seeds

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/models"
)

// SeedCardFlags seeds the card brands accepted at checkout
func SeedCardFlags(db *gorm.DB) error {
	names := []string{"Visa", "Mastercard", "Elo", "American Express"}

	for _, name := range names {
		flag := models.CardFlagModel{Name: name}
		if err := db.FirstOrCreate(&flag, models.CardFlagModel{Name: name}).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedPlans seeds the default billable plans
func SeedPlans(db *gorm.DB) error {
	plans := []models.PlanModel{
		{
			Name:        "BASIC_MONTHLY",
			Description: "Basic plan billed every 30 days",
			Price:       decimal.RequireFromString("49.90"),
			Periodicity: 30,
			Active:      true,
		},
		{
			Name:        "BASIC_YEARLY",
			Description: "Basic plan billed every 365 days",
			Price:       decimal.RequireFromString("499.00"),
			Periodicity: 365,
			Active:      true,
		},
		{
			Name:        "PRO_MONTHLY",
			Description: "Pro plan billed every 30 days",
			Price:       decimal.RequireFromString("99.90"),
			Periodicity: 30,
			Active:      true,
		},
		{
			Name:        "PRO_YEARLY",
			Description: "Pro plan billed every 365 days",
			Price:       decimal.RequireFromString("999.00"),
			Periodicity: 365,
			Active:      true,
		},
	}

	for _, plan := range plans {
		if err := db.FirstOrCreate(&plan, models.PlanModel{Name: plan.Name}).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedCoupons seeds sample coupons against the seeded plans
func SeedCoupons(db *gorm.DB) error {
	var proMonthly models.PlanModel
	if err := db.Where("name = ?", "PRO_MONTHLY").First(&proMonthly).Error; err != nil {
		return err
	}

	intPtr := func(v int) *int { return &v }

	coupons := []models.CouponModel{
		{
			Name:          "OFF10",
			DiscountType:  "percent",
			DiscountValue: decimal.RequireFromString("10"),
		},
		{
			Name:           "SAVE30",
			PlanID:         &proMonthly.ID,
			ExpirationDays: intPtr(5),
			AmountOfUses:   intPtr(2),
			DiscountType:   "amount",
			DiscountValue:  decimal.RequireFromString("30"),
		},
		{
			Name:          "YEAR20",
			DiscountType:  "percent",
			DiscountValue: decimal.RequireFromString("20"),
		},
		{
			Name:           "EXPIRED5",
			ExpirationDays: intPtr(0),
			DiscountType:   "percent",
			DiscountValue:  decimal.RequireFromString("5"),
		},
	}

	for _, cpn := range coupons {
		if err := db.FirstOrCreate(&cpn, models.CouponModel{Name: cpn.Name}).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedAll runs every seeder in dependency order
func SeedAll(db *gorm.DB) error {
	if err := SeedCardFlags(db); err != nil {
		return err
	}
	if err := SeedPlans(db); err != nil {
		return err
	}
	return SeedCoupons(db)
}
