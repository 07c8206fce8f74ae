package usecases

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caixa-inc/caixa/internal/application/checkout/services"
	"github.com/caixa-inc/caixa/internal/domain/coupon"
	"github.com/caixa-inc/caixa/internal/domain/subscription"
	apperrors "github.com/caixa-inc/caixa/internal/shared/errors"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

type signupMocks struct {
	subscriptionRepo *mockSubscriptionRepository
	planRepo         *mockPlanRepository
	couponRepo       *mockCouponRepository
}

func newCreateSubscriptionUseCase(t *testing.T) (*CreateSubscriptionUseCase, *signupMocks) {
	t.Helper()
	m := &signupMocks{
		subscriptionRepo: new(mockSubscriptionRepository),
		planRepo:         new(mockPlanRepository),
		couponRepo:       new(mockCouponRepository),
	}
	log := logger.NewLogger()
	uc := NewCreateSubscriptionUseCase(
		m.subscriptionRepo,
		m.planRepo,
		m.couponRepo,
		services.NewCouponValidator(m.couponRepo, log),
		services.NewPricingCalculator(),
		&fakeTxManager{},
		log,
	)
	return uc, m
}

func percentCoupon(t *testing.T, id uint, name string, percent int64, uses *int, usedCount int) *coupon.Coupon {
	t.Helper()
	discount, err := coupon.NewPercentDiscount(decimal.NewFromInt(percent))
	require.NoError(t, err)
	cpn, err := coupon.ReconstructCoupon(id, name, nil, nil, uses, usedCount, discount, time.Now())
	require.NoError(t, err)
	return cpn
}

func TestCreateSubscriptionWithoutCoupon(t *testing.T) {
	uc, m := newCreateSubscriptionUseCase(t)

	m.planRepo.On("GetByID", mock.Anything, uint(1)).Return(monthlyPlan(t), nil)
	m.subscriptionRepo.On("Create", mock.Anything, mock.AnythingOfType("*subscription.Subscription")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*subscription.Subscription).SetID(10))
		}).Return(nil)

	result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		PlanID: 1,
		Email:  "client@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(10), result.ID)
	assert.Equal(t, "49.90", result.PricePaid)
	assert.False(t, result.Active)
	assert.Nil(t, result.CouponID)
	m.couponRepo.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything)
	m.subscriptionRepo.AssertExpectations(t)
}

func TestCreateSubscriptionWithCouponRedeemsUse(t *testing.T) {
	uc, m := newCreateSubscriptionUseCase(t)
	uses := 2
	cpn := percentCoupon(t, 5, "OFF10", 10, &uses, 0)

	m.planRepo.On("GetByID", mock.Anything, uint(1)).Return(monthlyPlan(t), nil)
	m.couponRepo.On("FindByNameForPlan", mock.Anything, "OFF10", mock.AnythingOfType("*uint")).Return(cpn, nil)
	m.couponRepo.On("Redeem", mock.Anything, uint(5)).Return(nil)
	m.subscriptionRepo.On("Create", mock.Anything, mock.AnythingOfType("*subscription.Subscription")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*subscription.Subscription).SetID(11))
		}).Return(nil)

	result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		CouponCode: "OFF10",
		PlanID:     1,
		Email:      "client@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, result.CouponID)
	assert.Equal(t, uint(5), *result.CouponID)
	assert.Equal(t, "44.91", result.PricePaid)
	m.couponRepo.AssertExpectations(t)
}

func TestCreateSubscriptionUnknownPlan(t *testing.T) {
	uc, m := newCreateSubscriptionUseCase(t)

	m.planRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)

	result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		PlanID: 99,
		Email:  "client@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Equal(t, msgInvalidPlan, appErr.Message)
}

func TestCreateSubscriptionInactivePlan(t *testing.T) {
	uc, m := newCreateSubscriptionUseCase(t)
	plan, err := subscription.ReconstructPlan(
		2, "LEGACY", "Retired plan",
		decimal.RequireFromString("19.90"), 30, false, time.Now(),
	)
	require.NoError(t, err)

	m.planRepo.On("GetByID", mock.Anything, uint(2)).Return(plan, nil)

	result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		PlanID: 2,
		Email:  "client@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, msgPlanInactive, appErr.Message)
}

func TestCreateSubscriptionCouponRejections(t *testing.T) {
	uses := 2
	tests := []struct {
		name        string
		coupon      *coupon.Coupon
		wantMessage string
	}{
		{
			name:        "unknown code",
			coupon:      nil,
			wantMessage: msgInvalidCoupon,
		},
		{
			name: "expired",
			coupon: func() *coupon.Coupon {
				days := 0
				discount, _ := coupon.NewPercentDiscount(decimal.NewFromInt(5))
				cpn, _ := coupon.ReconstructCoupon(6, "EXPIRED5", nil, &days, nil, 0, discount, time.Now().AddDate(0, 0, -1))
				return cpn
			}(),
			wantMessage: msgExpiredCoupon,
		},
		{
			name: "uses exhausted",
			coupon: func() *coupon.Coupon {
				discount, _ := coupon.NewPercentDiscount(decimal.NewFromInt(10))
				cpn, _ := coupon.ReconstructCoupon(7, "SAVE30", nil, nil, &uses, 2, discount, time.Now())
				return cpn
			}(),
			wantMessage: msgUsageLimitExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newCreateSubscriptionUseCase(t)

			m.planRepo.On("GetByID", mock.Anything, uint(1)).Return(monthlyPlan(t), nil)
			m.couponRepo.On("FindByNameForPlan", mock.Anything, mock.Anything, mock.Anything).Return(tt.coupon, nil)

			result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
				CouponCode: "ANY",
				PlanID:     1,
				Email:      "client@example.com",
			})

			require.Error(t, err)
			assert.Nil(t, result)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
			assert.Equal(t, tt.wantMessage, appErr.Message)
			m.subscriptionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateSubscriptionRedeemLosesRace(t *testing.T) {
	uc, m := newCreateSubscriptionUseCase(t)
	uses := 1
	cpn := percentCoupon(t, 5, "OFF10", 10, &uses, 0)

	m.planRepo.On("GetByID", mock.Anything, uint(1)).Return(monthlyPlan(t), nil)
	m.couponRepo.On("FindByNameForPlan", mock.Anything, "OFF10", mock.Anything).Return(cpn, nil)
	m.couponRepo.On("Redeem", mock.Anything, uint(5)).Return(coupon.ErrUsageLimitExceeded)

	result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		CouponCode: "OFF10",
		PlanID:     1,
		Email:      "client@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, msgUsageLimitExceeded, appErr.Message)
	m.subscriptionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSubscriptionDuplicateEmail(t *testing.T) {
	uc, m := newCreateSubscriptionUseCase(t)

	m.planRepo.On("GetByID", mock.Anything, uint(1)).Return(monthlyPlan(t), nil)
	m.subscriptionRepo.On("Create", mock.Anything, mock.AnythingOfType("*subscription.Subscription")).
		Return(&mysqlDuplicateErr{})

	result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		PlanID: 1,
		Email:  "client@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Equal(t, msgEmailTaken, appErr.Message)
}

// mysqlDuplicateErr mimics the driver error text IsDuplicateError matches on.
type mysqlDuplicateErr struct{}

func (e *mysqlDuplicateErr) Error() string {
	return "Error 1062 (23000): Duplicate entry 'client@example.com' for key 'subscriptions.email'"
}
