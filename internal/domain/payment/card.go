package payment

import (
	"fmt"
	"time"
)

// Card represents a stored payment card. Cards are content-addressed by card
// number: the same number is never stored twice. The number is treated as an
// opaque identifier; this system performs no PAN validation beyond shape.
type Card struct {
	id         uint
	number     string
	last4      string
	clientName string
	expireDate time.Time
	cvc        string
	cardFlagID uint
	createdAt  time.Time
}

// NewCard creates a new card. expireDate is expected to already be
// normalized to an end-of-month date.
func NewCard(number, clientName string, expireDate time.Time, cvc string, cardFlagID uint) (*Card, error) {
	if number == "" {
		return nil, fmt.Errorf("card number is required")
	}
	if clientName == "" {
		return nil, fmt.Errorf("client name is required")
	}
	if cardFlagID == 0 {
		return nil, fmt.Errorf("card flag ID is required")
	}

	return &Card{
		number:     number,
		last4:      lastFour(number),
		clientName: clientName,
		expireDate: expireDate,
		cvc:        cvc,
		cardFlagID: cardFlagID,
		createdAt:  time.Now(),
	}, nil
}

// ReconstructCard reconstructs a card from persistence.
func ReconstructCard(id uint, number, last4, clientName string, expireDate time.Time, cvc string, cardFlagID uint, createdAt time.Time) (*Card, error) {
	if id == 0 {
		return nil, fmt.Errorf("card ID cannot be zero")
	}
	if number == "" {
		return nil, fmt.Errorf("card number is required")
	}

	return &Card{
		id:         id,
		number:     number,
		last4:      last4,
		clientName: clientName,
		expireDate: expireDate,
		cvc:        cvc,
		cardFlagID: cardFlagID,
		createdAt:  createdAt,
	}, nil
}

func lastFour(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}

// ID returns the card ID
func (c *Card) ID() uint {
	return c.id
}

// Number returns the full card number
func (c *Card) Number() string {
	return c.number
}

// Last4 returns the last four digits of the card number
func (c *Card) Last4() string {
	return c.last4
}

// ClientName returns the name printed on the card
func (c *Card) ClientName() string {
	return c.clientName
}

// ExpireDate returns the normalized end-of-month expiry date
func (c *Card) ExpireDate() time.Time {
	return c.expireDate
}

// CVC returns the card verification code
func (c *Card) CVC() string {
	return c.cvc
}

// CardFlagID returns the card brand ID
func (c *Card) CardFlagID() uint {
	return c.cardFlagID
}

// CreatedAt returns when the card was first stored
func (c *Card) CreatedAt() time.Time {
	return c.createdAt
}

// SetID sets the card ID (only for persistence layer use)
func (c *Card) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("card ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("card ID cannot be zero")
	}
	c.id = id
	return nil
}
