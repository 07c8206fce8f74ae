package usecases

import (
	"context"
	"fmt"

	"github.com/caixa-inc/caixa/internal/application/checkout/dto"
	"github.com/caixa-inc/caixa/internal/domain/payment"
	apperrors "github.com/caixa-inc/caixa/internal/shared/errors"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

// ListCardFlagsUseCase lists the accepted card brands.
type ListCardFlagsUseCase struct {
	cardFlagRepo payment.CardFlagRepository
	logger       logger.Interface
}

// NewListCardFlagsUseCase creates a new ListCardFlagsUseCase.
func NewListCardFlagsUseCase(cardFlagRepo payment.CardFlagRepository, logger logger.Interface) *ListCardFlagsUseCase {
	return &ListCardFlagsUseCase{cardFlagRepo: cardFlagRepo, logger: logger}
}

// Execute returns all card flags.
func (uc *ListCardFlagsUseCase) Execute(ctx context.Context) ([]*dto.CardFlagDTO, error) {
	flags, err := uc.cardFlagRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list card flags", "error", err)
		return nil, fmt.Errorf("failed to list card flags: %w", err)
	}
	return dto.ToCardFlagDTOs(flags), nil
}

// GetCardFlagUseCase loads a single card brand.
type GetCardFlagUseCase struct {
	cardFlagRepo payment.CardFlagRepository
	logger       logger.Interface
}

// NewGetCardFlagUseCase creates a new GetCardFlagUseCase.
func NewGetCardFlagUseCase(cardFlagRepo payment.CardFlagRepository, logger logger.Interface) *GetCardFlagUseCase {
	return &GetCardFlagUseCase{cardFlagRepo: cardFlagRepo, logger: logger}
}

// Execute returns the card flag by ID.
func (uc *GetCardFlagUseCase) Execute(ctx context.Context, id uint) (*dto.CardFlagDTO, error) {
	flag, err := uc.cardFlagRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load card flag", "card_flag_id", id, "error", err)
		return nil, fmt.Errorf("failed to load card flag: %w", err)
	}
	if flag == nil {
		return nil, apperrors.NewNotFoundError("Card flag not found.")
	}
	return dto.ToCardFlagDTO(flag), nil
}
