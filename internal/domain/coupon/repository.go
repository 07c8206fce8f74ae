package coupon

import "context"

// CouponRepository persists coupons.
type CouponRepository interface {
	GetByID(ctx context.Context, id uint) (*Coupon, error)
	// FindByNameForPlan finds the coupon matching code for the given plan
	// scope: with a plan id, coupons bound to that plan or to no plan match;
	// without one, only coupons bound to no plan match. Returns nil when
	// nothing matches.
	FindByNameForPlan(ctx context.Context, name string, planID *uint) (*Coupon, error)
	// Redeem consumes one use of the coupon. It must be atomic with respect
	// to concurrent redemptions: when the usage limit would be exceeded it
	// returns ErrUsageLimitExceeded and consumes nothing.
	Redeem(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*Coupon, error)
	// ListForPlan returns coupons usable for the plan, including plan-agnostic ones.
	ListForPlan(ctx context.Context, planID uint) ([]*Coupon, error)
}
