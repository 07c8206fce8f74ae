package payment

import (
	"fmt"
	"time"
)

// NormalizeExpiry parses an "MM/YY" card expiry and returns the last day of
// that month, which is the date stored on the card.
func NormalizeExpiry(expiry string) (time.Time, error) {
	t, err := time.Parse("01/06", expiry)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid expiry date %q, expected MM/YY: %w", expiry, err)
	}
	// First day of the following month, minus one day.
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1), nil
}
