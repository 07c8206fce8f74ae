package handlers

import (
	"context"

	"github.com/caixa-inc/caixa/internal/application/checkout/dto"
	"github.com/caixa-inc/caixa/internal/application/checkout/usecases"
)

// Use case interfaces for CouponHandler

type validateCouponUseCase interface {
	Execute(ctx context.Context, code string, planID *uint) (*usecases.CouponValidationResult, error)
}

type getCouponUseCase interface {
	Execute(ctx context.Context, id uint) (*dto.CouponDTO, error)
}

type listCouponsUseCase interface {
	Execute(ctx context.Context, planID *uint) ([]*dto.CouponDTO, error)
}
