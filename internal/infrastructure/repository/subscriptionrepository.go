package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/caixa-inc/caixa/internal/domain/subscription"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/mappers"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/models"
	"github.com/caixa-inc/caixa/internal/shared/db"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to convert subscription to model", "error", err)
		return fmt.Errorf("failed to convert subscription to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return err
	}

	if err := sub.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("subscription created", "subscription_id", model.ID)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByIDForUpdate locks the subscription row for the duration of the
// transaction carried in ctx. Concurrent payment attempts serialize here.
func (r *SubscriptionRepositoryImpl) GetByIDForUpdate(ctx context.Context, id uint) (*subscription.Subscription, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SubscriptionModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription for update", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription for update: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to convert subscription to model", "error", err)
		return fmt.Errorf("failed to convert subscription to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.SubscriptionModel{}).
		Where("id = ?", sub.ID()).
		Updates(map[string]interface{}{
			"active":     model.Active,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "error", result.Error, "subscription_id", sub.ID())
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) List(ctx context.Context) ([]*subscription.Subscription, error) {
	var subModels []*models.SubscriptionModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&subModels).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return r.mapper.ToEntities(subModels)
}
