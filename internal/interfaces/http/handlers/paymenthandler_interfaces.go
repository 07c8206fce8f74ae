package handlers

import (
	"context"

	"github.com/caixa-inc/caixa/internal/application/checkout/dto"
	"github.com/caixa-inc/caixa/internal/application/checkout/usecases"
)

// Use case interfaces for PaymentHandler

type processPaymentUseCase interface {
	Execute(ctx context.Context, cmd usecases.ProcessPaymentCommand) (*dto.TransactionDTO, error)
}
