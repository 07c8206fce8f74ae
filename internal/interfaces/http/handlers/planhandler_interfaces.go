package handlers

import (
	"context"

	"github.com/caixa-inc/caixa/internal/application/checkout/dto"
)

// Use case interfaces for PlanHandler and CardFlagHandler

type getPlanUseCase interface {
	Execute(ctx context.Context, id uint) (*dto.PlanDTO, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context) ([]*dto.PlanDTO, error)
}

type getCardFlagUseCase interface {
	Execute(ctx context.Context, id uint) (*dto.CardFlagDTO, error)
}

type listCardFlagsUseCase interface {
	Execute(ctx context.Context) ([]*dto.CardFlagDTO, error)
}
