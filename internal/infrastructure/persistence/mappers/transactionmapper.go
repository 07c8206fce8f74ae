package mappers

import (
	"fmt"

	"github.com/caixa-inc/caixa/internal/domain/payment"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/models"
)

// TransactionMapper handles the conversion between domain entities and persistence models
type TransactionMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.TransactionModel) (*payment.Transaction, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *payment.Transaction) (*models.TransactionModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.TransactionModel) ([]*payment.Transaction, error)
}

type transactionMapper struct{}

// NewTransactionMapper creates a new transaction mapper
func NewTransactionMapper() TransactionMapper {
	return &transactionMapper{}
}

func (m *transactionMapper) ToEntity(model *models.TransactionModel) (*payment.Transaction, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := payment.ReconstructTransaction(
		model.ID,
		model.CardID,
		model.SubscriptionID,
		model.Status,
		model.PricePaid,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct transaction entity: %w", err)
	}

	return entity, nil
}

func (m *transactionMapper) ToModel(entity *payment.Transaction) (*models.TransactionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TransactionModel{
		ID:             entity.ID(),
		CardID:         entity.CardID(),
		SubscriptionID: entity.SubscriptionID(),
		Status:         entity.Approved(),
		PricePaid:      entity.PricePaid(),
		CreatedAt:      entity.CreatedAt(),
	}, nil
}

func (m *transactionMapper) ToEntities(txnModels []*models.TransactionModel) ([]*payment.Transaction, error) {
	entities := make([]*payment.Transaction, 0, len(txnModels))

	for i, model := range txnModels {
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
