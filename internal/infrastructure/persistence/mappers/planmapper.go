package mappers

import (
	"fmt"

	"github.com/caixa-inc/caixa/internal/domain/subscription"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/models"
)

// PlanMapper handles the conversion between domain entities and persistence models
type PlanMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.PlanModel) (*subscription.Plan, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *subscription.Plan) (*models.PlanModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.PlanModel) ([]*subscription.Plan, error)
}

type planMapper struct{}

// NewPlanMapper creates a new plan mapper
func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*subscription.Plan, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := subscription.ReconstructPlan(
		model.ID,
		model.Name,
		model.Description,
		model.Price,
		model.Periodicity,
		model.Active,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}

	return entity, nil
}

func (m *planMapper) ToModel(entity *subscription.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PlanModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Price:       entity.Price(),
		Periodicity: entity.PeriodicityDays(),
		Active:      entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func (m *planMapper) ToEntities(planModels []*models.PlanModel) ([]*subscription.Plan, error) {
	entities := make([]*subscription.Plan, 0, len(planModels))

	for i, model := range planModels {
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
