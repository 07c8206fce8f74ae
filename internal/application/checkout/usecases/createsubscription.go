package usecases

import (
	"context"
	"fmt"

	"github.com/caixa-inc/caixa/internal/application/checkout/dto"
	"github.com/caixa-inc/caixa/internal/application/checkout/services"
	"github.com/caixa-inc/caixa/internal/domain/coupon"
	"github.com/caixa-inc/caixa/internal/domain/subscription"
	apperrors "github.com/caixa-inc/caixa/internal/shared/errors"
	"github.com/caixa-inc/caixa/internal/shared/logger"
	"github.com/caixa-inc/caixa/internal/shared/utils"
)

// CreateSubscriptionCommand carries the signup request.
type CreateSubscriptionCommand struct {
	CouponCode string // optional coupon code
	PlanID     uint
	Email      string
}

// CreateSubscriptionUseCase creates a pending subscription. Coupon validation,
// coupon redemption and the subscription insert happen in one atomic unit, so
// a coupon use can never be consumed without the subscription row that
// references it, and the usage limit holds under concurrent signups. Payment
// is a separate, later call against the created subscription.
type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	couponRepo       coupon.CouponRepository
	validator        *services.CouponValidator
	pricing          *services.PricingCalculator
	txManager        TransactionManager
	logger           logger.Interface
}

// NewCreateSubscriptionUseCase creates a new CreateSubscriptionUseCase.
func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	couponRepo coupon.CouponRepository,
	validator *services.CouponValidator,
	pricing *services.PricingCalculator,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		couponRepo:       couponRepo,
		validator:        validator,
		pricing:          pricing,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute runs the signup. On any failure the whole unit rolls back and no
// subscription or coupon redemption is observable.
func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	var result *dto.SubscriptionDTO

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		plan, err := uc.planRepo.GetByID(txCtx, cmd.PlanID)
		if err != nil {
			uc.logger.Errorw("failed to get plan", "plan_id", cmd.PlanID, "error", err)
			return fmt.Errorf("failed to get plan: %w", err)
		}
		if plan == nil {
			return apperrors.NewUnprocessableError(msgInvalidPlan)
		}
		if !plan.IsActive() {
			return apperrors.NewUnprocessableError(msgPlanInactive)
		}

		var cpn *coupon.Coupon
		if cmd.CouponCode != "" {
			cpn, err = uc.validator.Validate(txCtx, cmd.CouponCode, &cmd.PlanID)
			if err != nil {
				return mapCouponError(err)
			}
		}

		pricePaid := uc.pricing.Price(plan, cpn)

		var couponID *uint
		if cpn != nil {
			id := cpn.ID()
			couponID = &id
		}

		sub, err := subscription.NewSubscription(cmd.PlanID, couponID, cmd.Email, pricePaid)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		// Consume a coupon use in the same unit as the insert. Redeem holds
		// the counter row, so two signups racing for the last use cannot
		// both commit.
		if cpn != nil {
			if err := uc.couponRepo.Redeem(txCtx, cpn.ID()); err != nil {
				return mapCouponError(err)
			}
		}

		if err := uc.subscriptionRepo.Create(txCtx, sub); err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.NewUnprocessableError(msgEmailTaken)
			}
			uc.logger.Errorw("failed to create subscription", "email", utils.MaskEmail(cmd.Email), "error", err)
			return fmt.Errorf("failed to create subscription: %w", err)
		}

		result = dto.ToSubscriptionDTO(sub)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("subscription created",
		"subscription_id", result.ID,
		"plan_id", cmd.PlanID,
		"email", utils.MaskEmail(cmd.Email),
		"price_paid", result.PricePaid,
	)

	return result, nil
}
