package usecases

import (
	"errors"

	"github.com/caixa-inc/caixa/internal/domain/coupon"
	apperrors "github.com/caixa-inc/caixa/internal/shared/errors"
)

// Business-rule messages surfaced verbatim to the caller.
const (
	msgInvalidCoupon      = "Invalid coupon!"
	msgExpiredCoupon      = "Expired coupon!"
	msgUsageLimitExceeded = "Coupon usage limit exceeded!"
	msgAlreadyActive      = "This subscription is already active."
	msgInvalidPlan        = "Invalid plan."
	msgPlanInactive       = "This plan is not active."
	msgInvalidCardFlag    = "Invalid card flag."
	msgEmailTaken         = "This email already has a subscription."
)

// mapCouponError translates coupon domain rejections into 422 business errors.
func mapCouponError(err error) error {
	switch {
	case errors.Is(err, coupon.ErrInvalidCoupon):
		return apperrors.NewUnprocessableError(msgInvalidCoupon)
	case errors.Is(err, coupon.ErrExpiredCoupon):
		return apperrors.NewUnprocessableError(msgExpiredCoupon)
	case errors.Is(err, coupon.ErrUsageLimitExceeded):
		return apperrors.NewUnprocessableError(msgUsageLimitExceeded)
	default:
		return err
	}
}
