package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/caixa-inc/caixa/internal/domain/payment"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/mappers"
	"github.com/caixa-inc/caixa/internal/infrastructure/persistence/models"
	"github.com/caixa-inc/caixa/internal/shared/db"
	"github.com/caixa-inc/caixa/internal/shared/logger"
	"github.com/caixa-inc/caixa/internal/shared/utils"
)

type CardRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CardMapper
	logger logger.Interface
}

func NewCardRepository(db *gorm.DB, logger logger.Interface) payment.CardRepository {
	return &CardRepositoryImpl{
		db:     db,
		mapper: mappers.NewCardMapper(),
		logger: logger,
	}
}

func (r *CardRepositoryImpl) Create(ctx context.Context, card *payment.Card) error {
	model, err := r.mapper.ToModel(card)
	if err != nil {
		r.logger.Errorw("failed to convert card to model", "error", err)
		return fmt.Errorf("failed to convert card to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create card",
			"error", err,
			"card_number", utils.MaskCardNumber(card.Number()))
		return fmt.Errorf("failed to create card: %w", err)
	}

	if err := card.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("card stored", "card_id", model.ID, "last_4_digits", card.Last4())
	return nil
}

func (r *CardRepositoryImpl) GetByID(ctx context.Context, id uint) (*payment.Card, error) {
	var model models.CardModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get card by ID", "error", err, "card_id", id)
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CardRepositoryImpl) GetByNumber(ctx context.Context, number string) (*payment.Card, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.CardModel
	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get card by number",
			"error", err,
			"card_number", utils.MaskCardNumber(number))
		return nil, fmt.Errorf("failed to get card by number: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
