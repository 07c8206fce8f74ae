package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/caixa-inc/caixa/internal/domain/payment"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/mappers"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/models"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

type CardFlagRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CardFlagMapper
	logger logger.Interface
}

func NewCardFlagRepository(db *gorm.DB, logger logger.Interface) payment.CardFlagRepository {
	return &CardFlagRepositoryImpl{
		db:     db,
		mapper: mappers.NewCardFlagMapper(),
		logger: logger,
	}
}

func (r *CardFlagRepositoryImpl) GetByID(ctx context.Context, id uint) (*payment.CardFlag, error) {
	var model models.CardFlagModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get card flag by ID", "error", err, "card_flag_id", id)
		return nil, fmt.Errorf("failed to get card flag: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CardFlagRepositoryImpl) List(ctx context.Context) ([]*payment.CardFlag, error) {
	var flagModels []*models.CardFlagModel
	if err := r.db.WithContext(ctx).Order("id").Find(&flagModels).Error; err != nil {
		r.logger.Errorw("failed to list card flags", "error", err)
		return nil, fmt.Errorf("failed to list card flags: %w", err)
	}

	return r.mapper.ToEntities(flagModels)
}
