package payment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction records one payment attempt against a subscription. Both
// approved and declined attempts are recorded; a subscription may accumulate
// several transactions, of which the latest by creation time is authoritative.
type Transaction struct {
	id             uint
	cardID         uint
	subscriptionID uint
	status         bool
	pricePaid      decimal.Decimal
	createdAt      time.Time
}

// NewTransaction creates a new transaction. status is true for an approved
// payment and false for a declined one.
func NewTransaction(cardID, subscriptionID uint, status bool, pricePaid decimal.Decimal) (*Transaction, error) {
	if cardID == 0 {
		return nil, fmt.Errorf("card ID is required")
	}
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}
	if pricePaid.IsNegative() {
		return nil, fmt.Errorf("price paid cannot be negative")
	}

	return &Transaction{
		cardID:         cardID,
		subscriptionID: subscriptionID,
		status:         status,
		pricePaid:      pricePaid,
		createdAt:      time.Now(),
	}, nil
}

// ReconstructTransaction reconstructs a transaction from persistence.
func ReconstructTransaction(id, cardID, subscriptionID uint, status bool, pricePaid decimal.Decimal, createdAt time.Time) (*Transaction, error) {
	if id == 0 {
		return nil, fmt.Errorf("transaction ID cannot be zero")
	}
	if cardID == 0 {
		return nil, fmt.Errorf("card ID is required")
	}
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}

	return &Transaction{
		id:             id,
		cardID:         cardID,
		subscriptionID: subscriptionID,
		status:         status,
		pricePaid:      pricePaid,
		createdAt:      createdAt,
	}, nil
}

// ID returns the transaction ID
func (t *Transaction) ID() uint {
	return t.id
}

// CardID returns the card used for the attempt
func (t *Transaction) CardID() uint {
	return t.cardID
}

// SubscriptionID returns the subscription paid for
func (t *Transaction) SubscriptionID() uint {
	return t.subscriptionID
}

// Approved reports whether the payment was approved
func (t *Transaction) Approved() bool {
	return t.status
}

// PricePaid returns the charged amount
func (t *Transaction) PricePaid() decimal.Decimal {
	return t.pricePaid
}

// CreatedAt returns when the attempt was recorded
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// SetID sets the transaction ID (only for persistence layer use)
func (t *Transaction) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("transaction ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("transaction ID cannot be zero")
	}
	t.id = id
	return nil
}
