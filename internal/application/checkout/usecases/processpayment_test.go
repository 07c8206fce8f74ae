package usecases

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caixa-inc/caixa/internal/application/checkout/services"
	"github.com/caixa-inc/caixa/internal/domain/coupon"
	"github.com/caixa-inc/caixa/internal/domain/payment"
	"github.com/caixa-inc/caixa/internal/domain/subscription"
	apperrors "github.com/caixa-inc/caixa/internal/shared/errors"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

type paymentMocks struct {
	subscriptionRepo *mockSubscriptionRepository
	planRepo         *mockPlanRepository
	couponRepo       *mockCouponRepository
	cardRepo         *mockCardRepository
	cardFlagRepo     *mockCardFlagRepository
	transactionRepo  *mockTransactionRepository
	gateway          *mockGateway
}

func newProcessPaymentUseCase(t *testing.T) (*ProcessPaymentUseCase, *paymentMocks) {
	t.Helper()
	m := &paymentMocks{
		subscriptionRepo: new(mockSubscriptionRepository),
		planRepo:         new(mockPlanRepository),
		couponRepo:       new(mockCouponRepository),
		cardRepo:         new(mockCardRepository),
		cardFlagRepo:     new(mockCardFlagRepository),
		transactionRepo:  new(mockTransactionRepository),
		gateway:          new(mockGateway),
	}
	uc := NewProcessPaymentUseCase(
		m.subscriptionRepo,
		m.planRepo,
		m.couponRepo,
		m.cardRepo,
		m.cardFlagRepo,
		m.transactionRepo,
		m.gateway,
		services.NewPricingCalculator(),
		&fakeTxManager{},
		logger.NewLogger(),
	)
	return uc, m
}

func pendingSubscription(t *testing.T, id uint) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.ReconstructSubscription(
		id, 1, nil, "client@example.com", false,
		decimal.RequireFromString("49.90"), time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return sub
}

func monthlyPlan(t *testing.T) *subscription.Plan {
	t.Helper()
	plan, err := subscription.ReconstructPlan(
		1, "BASIC_MONTHLY", "Basic monthly plan",
		decimal.RequireFromString("49.90"), 30, true, time.Now(),
	)
	require.NoError(t, err)
	return plan
}

func visaFlag(t *testing.T) *payment.CardFlag {
	t.Helper()
	flag, err := payment.ReconstructCardFlag(1, "Visa")
	require.NoError(t, err)
	return flag
}

func storedCard(t *testing.T, id uint, number string) *payment.Card {
	t.Helper()
	card, err := payment.ReconstructCard(
		id, number, number[len(number)-4:], "Client Name",
		time.Now().AddDate(2, 0, 0), "123", 1, time.Now(),
	)
	require.NoError(t, err)
	return card
}

func paymentCommand(subscriptionID uint, cardNumber string) ProcessPaymentCommand {
	return ProcessPaymentCommand{
		SubscriptionID: subscriptionID,
		CardNumber:     cardNumber,
		ClientName:     "Client Name",
		ExpireDate:     "12/30",
		CVC:            "123",
		CardFlagID:     1,
	}
}

func TestProcessPaymentApprovedActivatesSubscription(t *testing.T) {
	uc, m := newProcessPaymentUseCase(t)
	sub := pendingSubscription(t, 10)

	m.subscriptionRepo.On("GetByIDForUpdate", mock.Anything, uint(10)).Return(sub, nil)
	m.cardFlagRepo.On("GetByID", mock.Anything, uint(1)).Return(visaFlag(t), nil)
	m.cardRepo.On("GetByNumber", mock.Anything, "5555444433332222").Return(nil, nil)
	m.cardRepo.On("Create", mock.Anything, mock.AnythingOfType("*payment.Card")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*payment.Card).SetID(7))
		}).Return(nil)
	m.gateway.On("Charge", mock.Anything, "5555444433332222").
		Return(payment.Decision{Approved: true, Message: "approved"}, nil)
	m.planRepo.On("GetByID", mock.Anything, uint(1)).Return(monthlyPlan(t), nil)
	m.subscriptionRepo.On("Update", mock.Anything, sub).Return(nil)
	m.transactionRepo.On("Create", mock.Anything, mock.AnythingOfType("*payment.Transaction")).Return(nil)

	result, err := uc.Execute(context.Background(), paymentCommand(10, "5555444433332222"))

	require.NoError(t, err)
	assert.True(t, result.Status)
	assert.Equal(t, uint(7), result.CardID)
	assert.Equal(t, uint(10), result.SubscriptionID)
	assert.Equal(t, "49.90", result.PricePaid)
	assert.True(t, sub.IsActive())
	m.subscriptionRepo.AssertExpectations(t)
	m.transactionRepo.AssertExpectations(t)
}

func TestProcessPaymentDeclinedRecordsFailedTransaction(t *testing.T) {
	uc, m := newProcessPaymentUseCase(t)
	sub := pendingSubscription(t, 10)

	m.subscriptionRepo.On("GetByIDForUpdate", mock.Anything, uint(10)).Return(sub, nil)
	m.cardFlagRepo.On("GetByID", mock.Anything, uint(1)).Return(visaFlag(t), nil)
	m.cardRepo.On("GetByNumber", mock.Anything, "4111111111111111").
		Return(storedCard(t, 3, "4111111111111111"), nil)
	m.gateway.On("Charge", mock.Anything, "4111111111111111").
		Return(payment.Decision{Approved: false, Message: "declined"}, nil)
	m.planRepo.On("GetByID", mock.Anything, uint(1)).Return(monthlyPlan(t), nil)
	m.transactionRepo.On("Create", mock.Anything, mock.AnythingOfType("*payment.Transaction")).Return(nil)

	result, err := uc.Execute(context.Background(), paymentCommand(10, "4111111111111111"))

	require.NoError(t, err)
	assert.False(t, result.Status)
	assert.Equal(t, uint(3), result.CardID)
	assert.False(t, sub.IsActive())
	m.subscriptionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	m.cardRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.transactionRepo.AssertExpectations(t)
}

func TestProcessPaymentAlreadyActive(t *testing.T) {
	uc, m := newProcessPaymentUseCase(t)
	sub := pendingSubscription(t, 10)
	require.NoError(t, sub.Activate())

	m.subscriptionRepo.On("GetByIDForUpdate", mock.Anything, uint(10)).Return(sub, nil)

	result, err := uc.Execute(context.Background(), paymentCommand(10, "5555444433332222"))

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Equal(t, msgAlreadyActive, appErr.Message)
	m.gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
}

func TestProcessPaymentSubscriptionNotFound(t *testing.T) {
	uc, m := newProcessPaymentUseCase(t)

	m.subscriptionRepo.On("GetByIDForUpdate", mock.Anything, uint(99)).Return(nil, nil)

	result, err := uc.Execute(context.Background(), paymentCommand(99, "5555444433332222"))

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestProcessPaymentInvalidExpireDate(t *testing.T) {
	uc, m := newProcessPaymentUseCase(t)

	m.subscriptionRepo.On("GetByIDForUpdate", mock.Anything, uint(10)).Return(pendingSubscription(t, 10), nil)

	cmd := paymentCommand(10, "5555444433332222")
	cmd.ExpireDate = "2030-12"

	result, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestProcessPaymentUnknownCardFlag(t *testing.T) {
	uc, m := newProcessPaymentUseCase(t)

	m.subscriptionRepo.On("GetByIDForUpdate", mock.Anything, uint(10)).Return(pendingSubscription(t, 10), nil)
	m.cardFlagRepo.On("GetByID", mock.Anything, uint(1)).Return(nil, nil)

	result, err := uc.Execute(context.Background(), paymentCommand(10, "5555444433332222"))

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Equal(t, msgInvalidCardFlag, appErr.Message)
}

func TestProcessPaymentAmbiguousGatewayOutcome(t *testing.T) {
	uc, m := newProcessPaymentUseCase(t)
	sub := pendingSubscription(t, 10)

	m.subscriptionRepo.On("GetByIDForUpdate", mock.Anything, uint(10)).Return(sub, nil)
	m.cardFlagRepo.On("GetByID", mock.Anything, uint(1)).Return(visaFlag(t), nil)
	m.cardRepo.On("GetByNumber", mock.Anything, "3123456789012345").
		Return(storedCard(t, 3, "3123456789012345"), nil)
	m.gateway.On("Charge", mock.Anything, "3123456789012345").
		Return(payment.Decision{}, payment.ErrAmbiguousOutcome)

	result, err := uc.Execute(context.Background(), paymentCommand(10, "3123456789012345"))

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
	assert.False(t, sub.IsActive())
	m.transactionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.subscriptionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProcessPaymentAppliesCouponDiscount(t *testing.T) {
	uc, m := newProcessPaymentUseCase(t)
	couponID := uint(5)
	sub, err := subscription.ReconstructSubscription(
		10, 1, &couponID, "client@example.com", false,
		decimal.RequireFromString("44.91"), time.Now(), time.Now(),
	)
	require.NoError(t, err)

	discount, err := coupon.NewPercentDiscount(decimal.NewFromInt(10))
	require.NoError(t, err)
	cpn, err := coupon.ReconstructCoupon(5, "OFF10", nil, nil, nil, 1, discount, time.Now())
	require.NoError(t, err)

	m.subscriptionRepo.On("GetByIDForUpdate", mock.Anything, uint(10)).Return(sub, nil)
	m.cardFlagRepo.On("GetByID", mock.Anything, uint(1)).Return(visaFlag(t), nil)
	m.cardRepo.On("GetByNumber", mock.Anything, "5555444433332222").
		Return(storedCard(t, 3, "5555444433332222"), nil)
	m.gateway.On("Charge", mock.Anything, "5555444433332222").
		Return(payment.Decision{Approved: true, Message: "approved"}, nil)
	m.planRepo.On("GetByID", mock.Anything, uint(1)).Return(monthlyPlan(t), nil)
	m.couponRepo.On("GetByID", mock.Anything, uint(5)).Return(cpn, nil)
	m.subscriptionRepo.On("Update", mock.Anything, sub).Return(nil)
	m.transactionRepo.On("Create", mock.Anything, mock.AnythingOfType("*payment.Transaction")).Return(nil)

	result, err := uc.Execute(context.Background(), paymentCommand(10, "5555444433332222"))

	require.NoError(t, err)
	assert.Equal(t, "44.91", result.PricePaid)
	m.couponRepo.AssertExpectations(t)
}

func TestProcessPaymentRepositoryFailureSurfaces(t *testing.T) {
	uc, m := newProcessPaymentUseCase(t)

	m.subscriptionRepo.On("GetByIDForUpdate", mock.Anything, uint(10)).
		Return(nil, errors.New("connection refused"))

	result, err := uc.Execute(context.Background(), paymentCommand(10, "5555444433332222"))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Nil(t, apperrors.GetAppError(err))
}
