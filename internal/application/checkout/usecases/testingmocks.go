package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/caixa-inc/caixa/internal/domain/coupon"
	"github.com/caixa-inc/caixa/internal/domain/payment"
	"github.com/caixa-inc/caixa/internal/domain/subscription"
)

// Shared testify mocks for the use case tests.

type mockSubscriptionRepository struct {
	mock.Mock
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) GetByIDForUpdate(ctx context.Context, id uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) List(ctx context.Context) ([]*subscription.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

type mockPlanRepository struct {
	mock.Mock
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Plan), args.Error(1)
}

func (m *mockPlanRepository) List(ctx context.Context) ([]*subscription.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Plan), args.Error(1)
}

type mockCouponRepository struct {
	mock.Mock
}

func (m *mockCouponRepository) GetByID(ctx context.Context, id uint) (*coupon.Coupon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

func (m *mockCouponRepository) FindByNameForPlan(ctx context.Context, name string, planID *uint) (*coupon.Coupon, error) {
	args := m.Called(ctx, name, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

func (m *mockCouponRepository) Redeem(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCouponRepository) List(ctx context.Context) ([]*coupon.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*coupon.Coupon), args.Error(1)
}

func (m *mockCouponRepository) ListForPlan(ctx context.Context, planID uint) ([]*coupon.Coupon, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*coupon.Coupon), args.Error(1)
}

type mockCardRepository struct {
	mock.Mock
}

func (m *mockCardRepository) Create(ctx context.Context, card *payment.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *mockCardRepository) GetByID(ctx context.Context, id uint) (*payment.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Card), args.Error(1)
}

func (m *mockCardRepository) GetByNumber(ctx context.Context, number string) (*payment.Card, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Card), args.Error(1)
}

type mockCardFlagRepository struct {
	mock.Mock
}

func (m *mockCardFlagRepository) GetByID(ctx context.Context, id uint) (*payment.CardFlag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.CardFlag), args.Error(1)
}

func (m *mockCardFlagRepository) List(ctx context.Context) ([]*payment.CardFlag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.CardFlag), args.Error(1)
}

type mockTransactionRepository struct {
	mock.Mock
}

func (m *mockTransactionRepository) Create(ctx context.Context, txn *payment.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *mockTransactionRepository) GetLatestBySubscriptionID(ctx context.Context, subscriptionID uint) (*payment.Transaction, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Transaction), args.Error(1)
}

func (m *mockTransactionRepository) ListBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*payment.Transaction, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Transaction), args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Charge(ctx context.Context, cardNumber string) (payment.Decision, error) {
	args := m.Called(ctx, cardNumber)
	return args.Get(0).(payment.Decision), args.Error(1)
}

// fakeTxManager runs the unit inline without a database.
type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
