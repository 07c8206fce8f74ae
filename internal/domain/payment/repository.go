package payment

import "context"

// CardRepository persists cards. GetByNumber plus Create give the
// dedup-on-write behavior: callers look up by number first and only create
// when nothing is found, inside the surrounding transaction.
type CardRepository interface {
	Create(ctx context.Context, card *Card) error
	GetByID(ctx context.Context, id uint) (*Card, error)
	GetByNumber(ctx context.Context, number string) (*Card, error)
}

// CardFlagRepository reads card brands.
type CardFlagRepository interface {
	GetByID(ctx context.Context, id uint) (*CardFlag, error)
	List(ctx context.Context) ([]*CardFlag, error)
}

// TransactionRepository persists payment attempts.
type TransactionRepository interface {
	Create(ctx context.Context, txn *Transaction) error
	// GetLatestBySubscriptionID returns the most recent attempt, or nil.
	GetLatestBySubscriptionID(ctx context.Context, subscriptionID uint) (*Transaction, error)
	ListBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*Transaction, error)
}
