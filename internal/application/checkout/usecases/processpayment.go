package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caixa-inc/caixa/internal/application/checkout/dto"
	"github.com/caixa-inc/caixa/internal/application/checkout/services"
	"github.com/caixa-inc/caixa/internal/domain/coupon"
	"github.com/caixa-inc/caixa/internal/domain/payment"
	"github.com/caixa-inc/caixa/internal/domain/subscription"
	apperrors "github.com/caixa-inc/caixa/internal/shared/errors"
	"github.com/caixa-inc/caixa/internal/shared/logger"
	"github.com/caixa-inc/caixa/internal/shared/utils"
)

// ProcessPaymentCommand carries one payment attempt.
type ProcessPaymentCommand struct {
	SubscriptionID uint
	CardNumber     string
	ClientName     string
	ExpireDate     string // MM/YY
	CVC            string
	CardFlagID     uint
}

// ProcessPaymentUseCase executes one checkout-and-pay attempt as a single
// atomic unit: subscription lock and activation, card dedup-on-write, the
// gateway charge, pricing, and the transaction record all commit or roll
// back together. The subscription row is locked for the duration of the
// unit, so of two concurrent attempts the second observes the activation
// committed by the first and aborts without charging again.
type ProcessPaymentUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	couponRepo       coupon.CouponRepository
	cardRepo         payment.CardRepository
	cardFlagRepo     payment.CardFlagRepository
	transactionRepo  payment.TransactionRepository
	gateway          payment.Gateway
	pricing          *services.PricingCalculator
	txManager        TransactionManager
	logger           logger.Interface
}

// NewProcessPaymentUseCase creates a new ProcessPaymentUseCase.
func NewProcessPaymentUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	couponRepo coupon.CouponRepository,
	cardRepo payment.CardRepository,
	cardFlagRepo payment.CardFlagRepository,
	transactionRepo payment.TransactionRepository,
	gateway payment.Gateway,
	pricing *services.PricingCalculator,
	txManager TransactionManager,
	logger logger.Interface,
) *ProcessPaymentUseCase {
	return &ProcessPaymentUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		couponRepo:       couponRepo,
		cardRepo:         cardRepo,
		cardFlagRepo:     cardFlagRepo,
		transactionRepo:  transactionRepo,
		gateway:          gateway,
		pricing:          pricing,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute runs the payment attempt. A declined payment is a successful
// processing outcome: the transaction is recorded with status false and
// returned without error. An ambiguous gateway outcome aborts the unit
// without recording anything, leaving the subscription payable again.
func (uc *ProcessPaymentUseCase) Execute(ctx context.Context, cmd ProcessPaymentCommand) (*dto.TransactionDTO, error) {
	var result *dto.TransactionDTO

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		sub, err := uc.subscriptionRepo.GetByIDForUpdate(txCtx, cmd.SubscriptionID)
		if err != nil {
			uc.logger.Errorw("failed to load subscription", "subscription_id", cmd.SubscriptionID, "error", err)
			return fmt.Errorf("failed to load subscription: %w", err)
		}
		if sub == nil {
			return apperrors.NewNotFoundError("Subscription not found.")
		}
		if sub.IsActive() {
			return apperrors.NewUnprocessableError(msgAlreadyActive)
		}

		expireDate, err := payment.NormalizeExpiry(cmd.ExpireDate)
		if err != nil {
			return apperrors.NewValidationError("Invalid expire date, expected MM/YY.", err.Error())
		}

		flag, err := uc.cardFlagRepo.GetByID(txCtx, cmd.CardFlagID)
		if err != nil {
			uc.logger.Errorw("failed to load card flag", "card_flag_id", cmd.CardFlagID, "error", err)
			return fmt.Errorf("failed to load card flag: %w", err)
		}
		if flag == nil {
			return apperrors.NewUnprocessableError(msgInvalidCardFlag)
		}

		card, err := uc.findOrCreateCard(txCtx, cmd, expireDate)
		if err != nil {
			return err
		}

		decision, err := uc.gateway.Charge(txCtx, cmd.CardNumber)
		if err != nil {
			// Unknown outcome: abort without a transaction row so the
			// caller can retry against the still-inactive subscription.
			uc.logger.Warnw("gateway outcome unknown",
				"subscription_id", sub.ID(),
				"card_number", utils.MaskCardNumber(cmd.CardNumber),
				"error", err,
			)
			return apperrors.NewGatewayError("Payment gateway unavailable, outcome unknown.", err.Error())
		}

		plan, err := uc.planRepo.GetByID(txCtx, sub.PlanID())
		if err != nil {
			return fmt.Errorf("failed to load plan: %w", err)
		}
		if plan == nil {
			return fmt.Errorf("plan %d referenced by subscription %d is missing", sub.PlanID(), sub.ID())
		}

		var cpn *coupon.Coupon
		if sub.CouponID() != nil {
			cpn, err = uc.couponRepo.GetByID(txCtx, *sub.CouponID())
			if err != nil {
				return fmt.Errorf("failed to load coupon: %w", err)
			}
		}

		pricePaid := uc.pricing.Price(plan, cpn)

		if decision.Approved {
			if err := sub.Activate(); err != nil {
				if errors.Is(err, subscription.ErrAlreadyActive) {
					return apperrors.NewUnprocessableError(msgAlreadyActive)
				}
				return err
			}
			if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
				uc.logger.Errorw("failed to activate subscription", "subscription_id", sub.ID(), "error", err)
				return fmt.Errorf("failed to activate subscription: %w", err)
			}
		}

		// Declined attempts are recorded too, for audit.
		txn, err := payment.NewTransaction(card.ID(), sub.ID(), decision.Approved, pricePaid)
		if err != nil {
			return err
		}
		if err := uc.transactionRepo.Create(txCtx, txn); err != nil {
			uc.logger.Errorw("failed to record transaction", "subscription_id", sub.ID(), "error", err)
			return fmt.Errorf("failed to record transaction: %w", err)
		}

		result = dto.ToTransactionDTO(txn)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("payment processed",
		"subscription_id", cmd.SubscriptionID,
		"transaction_id", result.ID,
		"approved", result.Status,
		"price_paid", result.PricePaid,
		"card_number", utils.MaskCardNumber(cmd.CardNumber),
	)

	return result, nil
}

// findOrCreateCard looks the card up by number and creates it when absent,
// inside the surrounding transaction. The same number always maps to the
// same card row.
func (uc *ProcessPaymentUseCase) findOrCreateCard(ctx context.Context, cmd ProcessPaymentCommand, expireDate time.Time) (*payment.Card, error) {
	card, err := uc.cardRepo.GetByNumber(ctx, cmd.CardNumber)
	if err != nil {
		uc.logger.Errorw("failed to look up card", "card_number", utils.MaskCardNumber(cmd.CardNumber), "error", err)
		return nil, fmt.Errorf("failed to look up card: %w", err)
	}
	if card != nil {
		return card, nil
	}

	card, err = payment.NewCard(cmd.CardNumber, cmd.ClientName, expireDate, cmd.CVC, cmd.CardFlagID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return card, nil
}
