package subscription

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Plan represents a billable plan. Plans are seeded externally and treated
// as immutable by the checkout flow.
type Plan struct {
	id              uint
	name            string
	description     string
	price           decimal.Decimal
	periodicityDays int
	active          bool
	createdAt       time.Time
}

// NewPlan creates a new plan.
func NewPlan(name, description string, price decimal.Decimal, periodicityDays int, active bool) (*Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("plan price cannot be negative")
	}
	if periodicityDays <= 0 {
		return nil, fmt.Errorf("plan periodicity must be positive")
	}

	return &Plan{
		name:            name,
		description:     description,
		price:           price,
		periodicityDays: periodicityDays,
		active:          active,
		createdAt:       time.Now(),
	}, nil
}

// ReconstructPlan reconstructs a plan from persistence.
func ReconstructPlan(id uint, name, description string, price decimal.Decimal, periodicityDays int, active bool, createdAt time.Time) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}

	return &Plan{
		id:              id,
		name:            name,
		description:     description,
		price:           price,
		periodicityDays: periodicityDays,
		active:          active,
		createdAt:       createdAt,
	}, nil
}

// ID returns the plan ID
func (p *Plan) ID() uint {
	return p.id
}

// Name returns the plan name
func (p *Plan) Name() string {
	return p.name
}

// Description returns the plan description
func (p *Plan) Description() string {
	return p.description
}

// Price returns the plan price
func (p *Plan) Price() decimal.Decimal {
	return p.price
}

// PeriodicityDays returns the billing period length in days
func (p *Plan) PeriodicityDays() int {
	return p.periodicityDays
}

// IsActive reports whether the plan can be subscribed to
func (p *Plan) IsActive() bool {
	return p.active
}

// CreatedAt returns when the plan was created
func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

// SetID sets the plan ID (only for persistence layer use)
func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}
