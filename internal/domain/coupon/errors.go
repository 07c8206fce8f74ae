package coupon

import "errors"

var (
	ErrInvalidCoupon      = errors.New("invalid coupon")
	ErrExpiredCoupon      = errors.New("expired coupon")
	ErrUsageLimitExceeded = errors.New("coupon usage limit exceeded")
)
