package subscription

import "context"

// SubscriptionRepository persists subscriptions. Implementations must join a
// transaction carried in the context, so checkout writes stay in one atomic unit.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	// GetByIDForUpdate loads the subscription and locks its row until the
	// surrounding transaction ends. Two concurrent payment attempts against
	// the same subscription serialize on this lock.
	GetByIDForUpdate(ctx context.Context, id uint) (*Subscription, error)
	Update(ctx context.Context, sub *Subscription) error
	List(ctx context.Context) ([]*Subscription, error)
}

// PlanRepository reads plans. Plans are administered externally.
type PlanRepository interface {
	GetByID(ctx context.Context, id uint) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
}
