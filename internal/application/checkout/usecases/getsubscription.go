package usecases

import (
	"context"
	"fmt"

	"github.com/caixa-inc/caixa/internal/application/checkout/dto"
	"github.com/caixa-inc/caixa/internal/domain/coupon"
	"github.com/caixa-inc/caixa/internal/domain/payment"
	"github.com/caixa-inc/caixa/internal/domain/subscription"
	apperrors "github.com/caixa-inc/caixa/internal/shared/errors"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

// GetSubscriptionUseCase loads a subscription together with its plan, coupon
// and most recent payment attempt.
type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	couponRepo       coupon.CouponRepository
	transactionRepo  payment.TransactionRepository
	cardRepo         payment.CardRepository
	logger           logger.Interface
}

// NewGetSubscriptionUseCase creates a new GetSubscriptionUseCase.
func NewGetSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	couponRepo coupon.CouponRepository,
	transactionRepo payment.TransactionRepository,
	cardRepo payment.CardRepository,
	logger logger.Interface,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		couponRepo:       couponRepo,
		transactionRepo:  transactionRepo,
		cardRepo:         cardRepo,
		logger:           logger,
	}
}

// Execute returns the subscription detail.
func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, id uint) (*dto.SubscriptionDetailDTO, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "subscription_id", id, "error", err)
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("Subscription not found.")
	}

	detail := &dto.SubscriptionDetailDTO{SubscriptionDTO: *dto.ToSubscriptionDTO(sub)}

	plan, err := uc.planRepo.GetByID(ctx, sub.PlanID())
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	detail.Plan = dto.ToPlanDTO(plan)

	if sub.CouponID() != nil {
		cpn, err := uc.couponRepo.GetByID(ctx, *sub.CouponID())
		if err != nil {
			return nil, fmt.Errorf("failed to load coupon: %w", err)
		}
		detail.Coupon = dto.ToCouponDTO(cpn)
	}

	txn, err := uc.transactionRepo.GetLatestBySubscriptionID(ctx, sub.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if txn != nil {
		txnDTO := dto.ToTransactionDTO(txn)
		card, err := uc.cardRepo.GetByID(ctx, txn.CardID())
		if err != nil {
			return nil, fmt.Errorf("failed to load card: %w", err)
		}
		txnDTO.Card = dto.ToCardDTO(card)
		detail.Transaction = txnDTO
	}

	return detail, nil
}
