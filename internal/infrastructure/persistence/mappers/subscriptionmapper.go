package mappers

import (
	"fmt"

	"github.com/caixa-inc/caixa/internal/domain/subscription"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/models"
)

// SubscriptionMapper handles the conversion between domain entities and persistence models
type SubscriptionMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type subscriptionMapper struct{}

// NewSubscriptionMapper creates a new subscription mapper
func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapper{}
}

func (m *subscriptionMapper) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := subscription.ReconstructSubscription(
		model.ID,
		model.PlanID,
		model.CouponID,
		model.Email,
		model.Active,
		model.PricePaid,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *subscriptionMapper) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		ID:        entity.ID(),
		PlanID:    entity.PlanID(),
		CouponID:  entity.CouponID(),
		Email:     entity.Email(),
		Active:    entity.IsActive(),
		PricePaid: entity.PricePaid(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *subscriptionMapper) ToEntities(subscriptionModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subscriptionModels))

	for i, model := range subscriptionModels {
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
