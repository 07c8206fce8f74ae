package usecases

import (
	"context"
	"errors"

	"github.com/caixa-inc/caixa/internal/application/checkout/services"
	"github.com/caixa-inc/caixa/internal/domain/coupon"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

// CouponValidationResult is the outcome of a standalone coupon check. It is
// advisory only: the authoritative check happens again when the subscription
// is created.
type CouponValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ValidateCouponUseCase answers whether a coupon code is currently usable,
// optionally scoped to a plan, without consuming a use.
type ValidateCouponUseCase struct {
	validator *services.CouponValidator
	logger    logger.Interface
}

// NewValidateCouponUseCase creates a new ValidateCouponUseCase.
func NewValidateCouponUseCase(validator *services.CouponValidator, logger logger.Interface) *ValidateCouponUseCase {
	return &ValidateCouponUseCase{validator: validator, logger: logger}
}

// Execute checks the coupon. Rejections are part of the result, not errors;
// only infrastructure failures surface as errors.
func (uc *ValidateCouponUseCase) Execute(ctx context.Context, code string, planID *uint) (*CouponValidationResult, error) {
	_, err := uc.validator.Validate(ctx, code, planID)
	if err != nil {
		switch {
		case errors.Is(err, coupon.ErrInvalidCoupon):
			return &CouponValidationResult{Valid: false, Message: msgInvalidCoupon}, nil
		case errors.Is(err, coupon.ErrExpiredCoupon):
			return &CouponValidationResult{Valid: false, Message: msgExpiredCoupon}, nil
		case errors.Is(err, coupon.ErrUsageLimitExceeded):
			return &CouponValidationResult{Valid: false, Message: msgUsageLimitExceeded}, nil
		default:
			uc.logger.Errorw("coupon validation failed", "code", code, "plan_id", planID, "error", err)
			return nil, err
		}
	}

	return &CouponValidationResult{Valid: true, Message: "Valid coupon."}, nil
}
