package payment

import "fmt"

// CardFlag is a card brand (Visa, Mastercard, ...). Seeded externally.
type CardFlag struct {
	id   uint
	name string
}

// NewCardFlag creates a new card flag.
func NewCardFlag(name string) (*CardFlag, error) {
	if name == "" {
		return nil, fmt.Errorf("card flag name is required")
	}
	return &CardFlag{name: name}, nil
}

// ReconstructCardFlag reconstructs a card flag from persistence.
func ReconstructCardFlag(id uint, name string) (*CardFlag, error) {
	if id == 0 {
		return nil, fmt.Errorf("card flag ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("card flag name is required")
	}
	return &CardFlag{id: id, name: name}, nil
}

// ID returns the card flag ID
func (f *CardFlag) ID() uint {
	return f.id
}

// Name returns the brand name
func (f *CardFlag) Name() string {
	return f.name
}
