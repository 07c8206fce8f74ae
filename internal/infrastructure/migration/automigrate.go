package migration

import (
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PlanModel{},
		&models.CouponModel{},
		&models.CardFlagModel{},
		&models.CardModel{},
		&models.SubscriptionModel{},
		&models.TransactionModel{},
	}
}
