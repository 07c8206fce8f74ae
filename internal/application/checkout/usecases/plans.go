package usecases

import (
	"context"
	"fmt"

	"github.com/caixa-inc/caixa/internal/application/checkout/dto"
	"github.com/caixa-inc/caixa/internal/domain/subscription"
	apperrors "github.com/caixa-inc/caixa/internal/shared/errors"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

// GetPlanUseCase loads a single plan.
type GetPlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

// NewGetPlanUseCase creates a new GetPlanUseCase.
func NewGetPlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{planRepo: planRepo, logger: logger}
}

// Execute returns the plan by ID.
func (uc *GetPlanUseCase) Execute(ctx context.Context, id uint) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "plan_id", id, "error", err)
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("Plan not found.")
	}
	return dto.ToPlanDTO(plan), nil
}

// ListPlansUseCase lists all plans.
type ListPlansUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

// NewListPlansUseCase creates a new ListPlansUseCase.
func NewListPlansUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo, logger: logger}
}

// Execute returns all plans.
func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return dto.ToPlanDTOs(plans), nil
}
