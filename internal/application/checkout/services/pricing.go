// Package services holds the checkout domain services shared by use cases.
package services

import (
	"github.com/shopspring/decimal"

	"github.com/caixa-inc/caixa/internal/domain/coupon"
	"github.com/caixa-inc/caixa/internal/domain/subscription"
)

// PricingCalculator resolves the price to charge for a plan, applying the
// coupon's discount when present. It is a pure function of its inputs.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// Price returns the amount to charge, rounded to two decimal places half-up.
// With no coupon the plan price is returned unchanged; a percent discount
// multiplies by (1 - percent/100); an amount discount subtracts, capped at
// the plan price so the result is never negative.
func (p *PricingCalculator) Price(plan *subscription.Plan, cpn *coupon.Coupon) decimal.Decimal {
	price := plan.Price()
	if cpn != nil {
		price = cpn.Discount().Apply(price)
	}
	return price.Round(2)
}
