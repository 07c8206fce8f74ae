package mappers

import (
	"fmt"

	"github.com/caixa-inc/caixa/internal/domain/payment"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/models"
)

// CardMapper handles the conversion between domain entities and persistence models
type CardMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.CardModel) (*payment.Card, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *payment.Card) (*models.CardModel, error)
}

type cardMapper struct{}

// NewCardMapper creates a new card mapper
func NewCardMapper() CardMapper {
	return &cardMapper{}
}

func (m *cardMapper) ToEntity(model *models.CardModel) (*payment.Card, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := payment.ReconstructCard(
		model.ID,
		model.Number,
		model.Last4,
		model.ClientName,
		model.ExpireDate,
		model.CVC,
		model.CardFlagID,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct card entity: %w", err)
	}

	return entity, nil
}

func (m *cardMapper) ToModel(entity *payment.Card) (*models.CardModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CardModel{
		ID:         entity.ID(),
		Number:     entity.Number(),
		Last4:      entity.Last4(),
		ClientName: entity.ClientName(),
		ExpireDate: entity.ExpireDate(),
		CVC:        entity.CVC(),
		CardFlagID: entity.CardFlagID(),
		CreatedAt:  entity.CreatedAt(),
	}, nil
}
