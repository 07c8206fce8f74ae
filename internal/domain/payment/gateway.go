package payment

import (
	"context"
	"errors"
)

// Decision is a definite gateway outcome: approved or declined. A declined
// payment is not an error, it is a valid terminal outcome.
type Decision struct {
	Approved bool
	Message  string
}

// Gateway charges a card. A returned error means the outcome is unknown
// (e.g. a timeout) and the attempt must be aborted without recording a
// transaction; it never means "declined".
type Gateway interface {
	Charge(ctx context.Context, cardNumber string) (Decision, error)
}

// ErrAmbiguousOutcome marks a gateway call whose result was never observed.
var ErrAmbiguousOutcome = errors.New("payment gateway outcome unknown")
