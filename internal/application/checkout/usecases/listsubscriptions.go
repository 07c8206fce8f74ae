package usecases

import (
	"context"
	"fmt"

	"github.com/caixa-inc/caixa/internal/application/checkout/dto"
	"github.com/caixa-inc/caixa/internal/domain/subscription"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

// ListSubscriptionsUseCase lists subscriptions, newest first.
type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

// NewListSubscriptionsUseCase creates a new ListSubscriptionsUseCase.
func NewListSubscriptionsUseCase(subscriptionRepo subscription.SubscriptionRepository, logger logger.Interface) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{subscriptionRepo: subscriptionRepo, logger: logger}
}

// Execute returns all subscriptions.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context) ([]*dto.SubscriptionDTO, error) {
	subs, err := uc.subscriptionRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	dtos := make([]*dto.SubscriptionDTO, 0, len(subs))
	for _, s := range subs {
		dtos = append(dtos, dto.ToSubscriptionDTO(s))
	}
	return dtos, nil
}
