package services

import (
	"context"
	"fmt"
	"time"

	"github.com/caixa-inc/caixa/internal/domain/coupon"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

// CouponValidator decides whether a coupon code can be applied to a plan.
// Validity is a pure function of (code, plan id, current time, usage count):
// repeated calls with no state change yield the same result.
type CouponValidator struct {
	couponRepo coupon.CouponRepository
	logger     logger.Interface
}

// NewCouponValidator creates a new CouponValidator.
func NewCouponValidator(couponRepo coupon.CouponRepository, logger logger.Interface) *CouponValidator {
	return &CouponValidator{
		couponRepo: couponRepo,
		logger:     logger,
	}
}

// Validate returns the coupon when code is usable against planID (nil planID
// restricts the lookup to plan-agnostic coupons). The checks run in a fixed
// order and the first failure wins: lookup, then expiration, then usage limit.
func (v *CouponValidator) Validate(ctx context.Context, code string, planID *uint) (*coupon.Coupon, error) {
	cpn, err := v.couponRepo.FindByNameForPlan(ctx, code, planID)
	if err != nil {
		v.logger.Errorw("failed to look up coupon", "code", code, "error", err)
		return nil, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if cpn == nil {
		return nil, coupon.ErrInvalidCoupon
	}

	if cpn.IsExpired(time.Now()) {
		return nil, coupon.ErrExpiredCoupon
	}

	if cpn.UsesExhausted() {
		return nil, coupon.ErrUsageLimitExceeded
	}

	return cpn, nil
}
