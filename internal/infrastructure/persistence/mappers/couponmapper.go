package mappers

import (
	"fmt"

	"github.com/caixa-inc/caixa/internal/domain/coupon"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/models"
)

// CouponMapper handles the conversion between domain entities and persistence models
type CouponMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.CouponModel) (*coupon.Coupon, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *coupon.Coupon) (*models.CouponModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.CouponModel) ([]*coupon.Coupon, error)
}

type couponMapper struct{}

// NewCouponMapper creates a new coupon mapper
func NewCouponMapper() CouponMapper {
	return &couponMapper{}
}

func (m *couponMapper) ToEntity(model *models.CouponModel) (*coupon.Coupon, error) {
	if model == nil {
		return nil, nil
	}

	discount, err := coupon.ReconstructDiscount(model.DiscountType, model.DiscountValue)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct discount: %w", err)
	}

	entity, err := coupon.ReconstructCoupon(
		model.ID,
		model.Name,
		model.PlanID,
		model.ExpirationDays,
		model.AmountOfUses,
		model.UsedCount,
		discount,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct coupon entity: %w", err)
	}

	return entity, nil
}

func (m *couponMapper) ToModel(entity *coupon.Coupon) (*models.CouponModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CouponModel{
		ID:             entity.ID(),
		Name:           entity.Name(),
		PlanID:         entity.PlanID(),
		ExpirationDays: entity.ExpirationDays(),
		AmountOfUses:   entity.AmountOfUses(),
		UsedCount:      entity.UsedCount(),
		DiscountType:   string(entity.Discount().Kind()),
		DiscountValue:  entity.Discount().Value(),
		CreatedAt:      entity.CreatedAt(),
	}, nil
}

func (m *couponMapper) ToEntities(couponModels []*models.CouponModel) ([]*coupon.Coupon, error) {
	entities := make([]*coupon.Coupon, 0, len(couponModels))

	for i, model := range couponModels {
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
