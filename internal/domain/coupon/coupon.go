package coupon

import (
	"fmt"
	"time"
)

// Coupon represents a discount coupon. A nil planID means the coupon applies
// to any plan; a nil expirationDays means it never expires; a nil amountOfUses
// means unlimited redemptions. usedCount is a counter maintained in the same
// atomic unit as each subscription insert referencing the coupon.
type Coupon struct {
	id             uint
	name           string
	planID         *uint
	expirationDays *int
	amountOfUses   *int
	usedCount      int
	discount       Discount
	createdAt      time.Time
}

// NewCoupon creates a new coupon.
func NewCoupon(name string, planID *uint, expirationDays, amountOfUses *int, discount Discount) (*Coupon, error) {
	if name == "" {
		return nil, fmt.Errorf("coupon name is required")
	}
	if expirationDays != nil && *expirationDays < 0 {
		return nil, fmt.Errorf("expiration days cannot be negative")
	}
	if amountOfUses != nil && *amountOfUses <= 0 {
		return nil, fmt.Errorf("amount of uses must be positive")
	}

	return &Coupon{
		name:           name,
		planID:         planID,
		expirationDays: expirationDays,
		amountOfUses:   amountOfUses,
		discount:       discount,
		createdAt:      time.Now(),
	}, nil
}

// ReconstructCoupon reconstructs a coupon from persistence.
func ReconstructCoupon(
	id uint,
	name string,
	planID *uint,
	expirationDays, amountOfUses *int,
	usedCount int,
	discount Discount,
	createdAt time.Time,
) (*Coupon, error) {
	if id == 0 {
		return nil, fmt.Errorf("coupon ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("coupon name is required")
	}

	return &Coupon{
		id:             id,
		name:           name,
		planID:         planID,
		expirationDays: expirationDays,
		amountOfUses:   amountOfUses,
		usedCount:      usedCount,
		discount:       discount,
		createdAt:      createdAt,
	}, nil
}

// ID returns the coupon ID
func (c *Coupon) ID() uint {
	return c.id
}

// Name returns the coupon code
func (c *Coupon) Name() string {
	return c.name
}

// PlanID returns the plan the coupon is restricted to, or nil for any plan
func (c *Coupon) PlanID() *uint {
	return c.planID
}

// ExpirationDays returns the validity window in days from creation, or nil
func (c *Coupon) ExpirationDays() *int {
	return c.expirationDays
}

// AmountOfUses returns the redemption limit, or nil for unlimited
func (c *Coupon) AmountOfUses() *int {
	return c.amountOfUses
}

// UsedCount returns how many subscriptions reference this coupon
func (c *Coupon) UsedCount() int {
	return c.usedCount
}

// Discount returns the coupon's discount
func (c *Coupon) Discount() Discount {
	return c.discount
}

// CreatedAt returns when the coupon was created
func (c *Coupon) CreatedAt() time.Time {
	return c.createdAt
}

// ExpiresAt returns the instant after which the coupon is expired, or nil
// when the coupon never expires.
func (c *Coupon) ExpiresAt() *time.Time {
	if c.expirationDays == nil {
		return nil
	}
	t := c.createdAt.AddDate(0, 0, *c.expirationDays)
	return &t
}

// IsExpired reports whether now is strictly after the expiration instant.
func (c *Coupon) IsExpired(now time.Time) bool {
	expiresAt := c.ExpiresAt()
	return expiresAt != nil && now.After(*expiresAt)
}

// UsesExhausted reports whether the redemption limit has been reached.
func (c *Coupon) UsesExhausted() bool {
	return c.amountOfUses != nil && c.usedCount >= *c.amountOfUses
}
