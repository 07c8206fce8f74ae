package subscription

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Subscription represents the subscription aggregate root. It is created in
// a pending (inactive) state and transitions to active exactly once, after a
// payment attempt against it has been approved.
type Subscription struct {
	id        uint
	planID    uint
	couponID  *uint
	email     string
	active    bool
	pricePaid decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
}

// NewSubscription creates a new pending subscription.
func NewSubscription(planID uint, couponID *uint, email string, pricePaid decimal.Decimal) (*Subscription, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if pricePaid.IsNegative() {
		return nil, fmt.Errorf("price paid cannot be negative")
	}
	if couponID != nil && *couponID == 0 {
		return nil, fmt.Errorf("coupon ID cannot be zero")
	}

	now := time.Now()
	return &Subscription{
		planID:    planID,
		couponID:  couponID,
		email:     email,
		active:    false,
		pricePaid: pricePaid,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence.
func ReconstructSubscription(
	id, planID uint,
	couponID *uint,
	email string,
	active bool,
	pricePaid decimal.Decimal,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &Subscription{
		id:        id,
		planID:    planID,
		couponID:  couponID,
		email:     email,
		active:    active,
		pricePaid: pricePaid,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ID returns the subscription ID
func (s *Subscription) ID() uint {
	return s.id
}

// PlanID returns the plan ID
func (s *Subscription) PlanID() uint {
	return s.planID
}

// CouponID returns the coupon ID, or nil when no coupon was applied
func (s *Subscription) CouponID() *uint {
	return s.couponID
}

// Email returns the subscriber email
func (s *Subscription) Email() string {
	return s.email
}

// IsActive reports whether the subscription has been activated
func (s *Subscription) IsActive() bool {
	return s.active
}

// PricePaid returns the price resolved at creation time
func (s *Subscription) PricePaid() decimal.Decimal {
	return s.pricePaid
}

// CreatedAt returns when the subscription was created
func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the subscription was last updated
func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// Activate marks the subscription active. It fails when the subscription is
// already active, so a second payment attempt cannot charge it again.
func (s *Subscription) Activate() error {
	if s.active {
		return ErrAlreadyActive
	}
	s.active = true
	s.updatedAt = time.Now()
	return nil
}
