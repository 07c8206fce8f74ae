package coupon

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DiscountKind tags the discount variant carried by a coupon.
type DiscountKind string

const (
	DiscountKindNone    DiscountKind = "none"
	DiscountKindPercent DiscountKind = "percent"
	DiscountKindAmount  DiscountKind = "amount"
)

// Discount is a tagged value: either a percentage of the plan price, an
// absolute currency amount, or nothing. Modeling it as a single variant
// removes the ambiguous state where both a percent and an amount are set.
type Discount struct {
	kind  DiscountKind
	value decimal.Decimal
}

// NoDiscount returns the empty discount.
func NoDiscount() Discount {
	return Discount{kind: DiscountKindNone}
}

// NewPercentDiscount creates a percentage discount in the range [0, 100].
func NewPercentDiscount(value decimal.Decimal) (Discount, error) {
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(100)) {
		return Discount{}, fmt.Errorf("percent discount must be between 0 and 100, got %s", value)
	}
	return Discount{kind: DiscountKindPercent, value: value}, nil
}

// NewAmountDiscount creates an absolute currency discount.
func NewAmountDiscount(value decimal.Decimal) (Discount, error) {
	if value.IsNegative() {
		return Discount{}, fmt.Errorf("amount discount cannot be negative, got %s", value)
	}
	return Discount{kind: DiscountKindAmount, value: value}, nil
}

// ReconstructDiscount rebuilds a discount from its persisted tag and value.
func ReconstructDiscount(kind string, value decimal.Decimal) (Discount, error) {
	switch DiscountKind(kind) {
	case DiscountKindNone, "":
		return NoDiscount(), nil
	case DiscountKindPercent:
		return NewPercentDiscount(value)
	case DiscountKindAmount:
		return NewAmountDiscount(value)
	default:
		return Discount{}, fmt.Errorf("unknown discount kind: %s", kind)
	}
}

// Kind returns the discount variant tag
func (d Discount) Kind() DiscountKind {
	return d.kind
}

// Value returns the percent or amount value; zero for DiscountKindNone
func (d Discount) Value() decimal.Decimal {
	return d.value
}

// IsZero reports whether the discount changes nothing
func (d Discount) IsZero() bool {
	return d.kind == DiscountKindNone || d.kind == "" || d.value.IsZero()
}

// Apply returns the price after the discount. The result is never negative:
// an amount discount larger than the price is capped at the price.
func (d Discount) Apply(price decimal.Decimal) decimal.Decimal {
	switch d.kind {
	case DiscountKindPercent:
		factor := decimal.NewFromInt(1).Sub(d.value.Div(decimal.NewFromInt(100)))
		return price.Mul(factor)
	case DiscountKindAmount:
		discounted := price.Sub(d.value)
		if discounted.IsNegative() {
			return decimal.Zero
		}
		return discounted
	default:
		return price
	}
}

func (d Discount) String() string {
	switch d.kind {
	case DiscountKindPercent:
		return fmt.Sprintf("%s%%", d.value)
	case DiscountKindAmount:
		return d.value.StringFixed(2)
	default:
		return "none"
	}
}
