package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/caixa-inc/caixa/internal/domain/subscription"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/mappers"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/models"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) subscription.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) List(ctx context.Context) ([]*subscription.Plan, error) {
	var planModels []*models.PlanModel
	if err := r.db.WithContext(ctx).Order("id").Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return r.mapper.ToEntities(planModels)
}
