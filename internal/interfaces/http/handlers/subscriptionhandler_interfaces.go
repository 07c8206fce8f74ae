package handlers

import (
	"context"

	"github.com/caixa-inc/caixa/internal/application/checkout/dto"
	"github.com/caixa-inc/caixa/internal/application/checkout/usecases"
)

// Use case interfaces for SubscriptionHandler

type createSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateSubscriptionCommand) (*dto.SubscriptionDTO, error)
}

type getSubscriptionUseCase interface {
	Execute(ctx context.Context, id uint) (*dto.SubscriptionDetailDTO, error)
}

type listSubscriptionsUseCase interface {
	Execute(ctx context.Context) ([]*dto.SubscriptionDTO, error)
}
