package mappers

import (
	"fmt"

	"github.com/caixa-inc/caixa/internal/domain/payment"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/models"
)

// CardFlagMapper handles the conversion between domain entities and persistence models
type CardFlagMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.CardFlagModel) (*payment.CardFlag, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.CardFlagModel) ([]*payment.CardFlag, error)
}

type cardFlagMapper struct{}

// NewCardFlagMapper creates a new card flag mapper
func NewCardFlagMapper() CardFlagMapper {
	return &cardFlagMapper{}
}

func (m *cardFlagMapper) ToEntity(model *models.CardFlagModel) (*payment.CardFlag, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := payment.ReconstructCardFlag(model.ID, model.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct card flag entity: %w", err)
	}

	return entity, nil
}

func (m *cardFlagMapper) ToEntities(flagModels []*models.CardFlagModel) ([]*payment.CardFlag, error) {
	entities := make([]*payment.CardFlag, 0, len(flagModels))

	for i, model := range flagModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map model at index %d (ID %d): %w", i, model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}

	return entities, nil
}
