package usecases

import (
	"context"
	"fmt"

	"github.com/caixa-inc/caixa/internal/application/checkout/dto"
	"github.com/caixa-inc/caixa/internal/domain/coupon"
	apperrors "github.com/caixa-inc/caixa/internal/shared/errors"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

// GetCouponUseCase returns one coupon by ID.
type GetCouponUseCase struct {
	couponRepo coupon.CouponRepository
	logger     logger.Interface
}

// NewGetCouponUseCase creates a new GetCouponUseCase.
func NewGetCouponUseCase(couponRepo coupon.CouponRepository, logger logger.Interface) *GetCouponUseCase {
	return &GetCouponUseCase{couponRepo: couponRepo, logger: logger}
}

// Execute returns the coupon.
func (uc *GetCouponUseCase) Execute(ctx context.Context, id uint) (*dto.CouponDTO, error) {
	cpn, err := uc.couponRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get coupon", "coupon_id", id, "error", err)
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}
	if cpn == nil {
		return nil, apperrors.NewNotFoundError("Coupon not found.")
	}

	return dto.ToCouponDTO(cpn), nil
}

// ListCouponsUseCase lists coupons, optionally restricted to those usable
// with a given plan.
type ListCouponsUseCase struct {
	couponRepo coupon.CouponRepository
	logger     logger.Interface
}

// NewListCouponsUseCase creates a new ListCouponsUseCase.
func NewListCouponsUseCase(couponRepo coupon.CouponRepository, logger logger.Interface) *ListCouponsUseCase {
	return &ListCouponsUseCase{couponRepo: couponRepo, logger: logger}
}

// Execute returns coupons. When planID is non-nil only coupons valid for
// that plan are returned, which includes plan-agnostic coupons.
func (uc *ListCouponsUseCase) Execute(ctx context.Context, planID *uint) ([]*dto.CouponDTO, error) {
	var (
		coupons []*coupon.Coupon
		err     error
	)
	if planID != nil {
		coupons, err = uc.couponRepo.ListForPlan(ctx, *planID)
	} else {
		coupons, err = uc.couponRepo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list coupons", "error", err)
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}

	return dto.ToCouponDTOs(coupons), nil
}
