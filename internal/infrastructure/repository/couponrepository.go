package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/caixa-inc/caixa/internal/domain/coupon"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/mappers"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/models"
	"github.com/caixa-inc/caixa/internal/shared/db"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

type CouponRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CouponMapper
	logger logger.Interface
}

func NewCouponRepository(db *gorm.DB, logger logger.Interface) coupon.CouponRepository {
	return &CouponRepositoryImpl{
		db:     db,
		mapper: mappers.NewCouponMapper(),
		logger: logger,
	}
}

func (r *CouponRepositoryImpl) GetByID(ctx context.Context, id uint) (*coupon.Coupon, error) {
	var model models.CouponModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get coupon by ID", "error", err, "coupon_id", id)
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CouponRepositoryImpl) FindByNameForPlan(ctx context.Context, name string, planID *uint) (*coupon.Coupon, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("name = ?", name)
	if planID != nil {
		query = query.Where("plan_id IS NULL OR plan_id = ?", *planID)
	} else {
		query = query.Where("plan_id IS NULL")
	}

	// Prefer the plan-specific coupon when both a scoped and an agnostic
	// coupon share the code.
	var model models.CouponModel
	if err := query.Order("plan_id IS NULL").First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find coupon by name", "error", err, "name", name)
		return nil, fmt.Errorf("failed to find coupon: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Redeem consumes one use with a conditional increment, so two concurrent
// redemptions of a coupon's last use cannot both succeed.
func (r *CouponRepositoryImpl) Redeem(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.CouponModel{}).
		Where("id = ? AND (amount_of_uses IS NULL OR used_count < amount_of_uses)", id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		r.logger.Errorw("failed to redeem coupon", "error", result.Error, "coupon_id", id)
		return fmt.Errorf("failed to redeem coupon: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return coupon.ErrUsageLimitExceeded
	}

	r.logger.Infow("coupon redeemed", "coupon_id", id)
	return nil
}

func (r *CouponRepositoryImpl) List(ctx context.Context) ([]*coupon.Coupon, error) {
	var couponModels []*models.CouponModel
	if err := r.db.WithContext(ctx).Order("id").Find(&couponModels).Error; err != nil {
		r.logger.Errorw("failed to list coupons", "error", err)
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}

	return r.mapper.ToEntities(couponModels)
}

func (r *CouponRepositoryImpl) ListForPlan(ctx context.Context, planID uint) ([]*coupon.Coupon, error) {
	var couponModels []*models.CouponModel
	if err := r.db.WithContext(ctx).
		Where("plan_id IS NULL OR plan_id = ?", planID).
		Order("id").
		Find(&couponModels).Error; err != nil {
		r.logger.Errorw("failed to list coupons for plan", "error", err, "plan_id", planID)
		return nil, fmt.Errorf("failed to list coupons for plan: %w", err)
	}

	return r.mapper.ToEntities(couponModels)
}
