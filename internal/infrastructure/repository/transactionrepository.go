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
)

type TransactionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TransactionMapper
	logger logger.Interface
}

func NewTransactionRepository(db *gorm.DB, logger logger.Interface) payment.TransactionRepository {
	return &TransactionRepositoryImpl{
		db:     db,
		mapper: mappers.NewTransactionMapper(),
		logger: logger,
	}
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, txn *payment.Transaction) error {
	model, err := r.mapper.ToModel(txn)
	if err != nil {
		r.logger.Errorw("failed to convert transaction to model", "error", err)
		return fmt.Errorf("failed to convert transaction to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create transaction",
			"error", err,
			"subscription_id", txn.SubscriptionID())
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := txn.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("transaction recorded",
		"transaction_id", model.ID,
		"subscription_id", txn.SubscriptionID(),
		"approved", txn.Approved())
	return nil
}

func (r *TransactionRepositoryImpl) GetLatestBySubscriptionID(ctx context.Context, subscriptionID uint) (*payment.Transaction, error) {
	var model models.TransactionModel
	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get latest transaction", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to get latest transaction: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TransactionRepositoryImpl) ListBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*payment.Transaction, error) {
	var txnModels []*models.TransactionModel
	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("created_at DESC, id DESC").
		Find(&txnModels).Error
	if err != nil {
		r.logger.Errorw("failed to list transactions", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return r.mapper.ToEntities(txnModels)
}
