package repository

import (
	"context"
	"fmt"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/entity"
	errs "github.com/mkarimi-dev/finance-tracker/internal/domain/error"
	coreport "github.com/mkarimi-dev/finance-tracker/internal/domain/port/core"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/database"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionRepository implements the TransactionRepository port using GORM.
// Every statement goes through GORM's parameter binding; values are never
// interpolated into SQL text.
type TransactionRepository struct {
	db         *gorm.DB
	logger     coreport.Logger
	classifier *database.ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:         db,
		logger:     logger,
		classifier: database.NewErrorClassifier(),
	}
}

// wrapStoreError maps a driver error onto the domain's store error types
func (r *TransactionRepository) wrapStoreError(err error) error {
	if r.classifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// entityToModel converts a transaction entity to a database model
func entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:        transaction.ID,
		UserID:    transaction.UserID,
		Title:     transaction.Title,
		Amount:    transaction.Amount,
		Category:  transaction.Category,
		CreatedAt: transaction.CreatedAt,
	}
}

// modelToEntity converts a database model to a transaction entity
func modelToEntity(m *model.Transaction) entity.Transaction {
	return entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Amount:    m.Amount,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
	}
}

// ListByUser returns all transactions for the user, most recent first.
// The secondary order on id keeps same-day rows stable within a result set.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, r.wrapStoreError(result.Error)
	}

	transactions := make([]entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, modelToEntity(&models[i]))
	}
	return transactions, nil
}

// Create inserts a new transaction row and fills in the assigned id
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"user_id": transaction.UserID,
			"error":   result.Error.Error(),
		})
		return r.wrapStoreError(result.Error)
	}

	transaction.ID = transactionModel.ID
	transaction.CreatedAt = transactionModel.CreatedAt

	r.logger.Debug("Transaction row inserted", map[string]any{
		"id":      transaction.ID,
		"user_id": transaction.UserID,
	})
	return nil
}

// Delete permanently removes the transaction with the given id
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Transaction{}, id)
	if result.Error != nil {
		r.logger.Error("Failed to delete transaction", map[string]any{
			"id":    id,
			"error": result.Error.Error(),
		})
		return r.wrapStoreError(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// Summarize computes the balance/income/expense aggregate in a single query.
// COALESCE keeps every field zero-filled when the user has no rows.
func (r *TransactionRepository) Summarize(ctx context.Context, userID string) (entity.Summary, error) {
	var row struct {
		Balance      decimal.Decimal
		TotalIncome  decimal.Decimal
		TotalExpense decimal.Decimal
	}

	result := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS balance, " +
			"COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0) AS total_income, " +
			"COALESCE(SUM(CASE WHEN amount < 0 THEN amount ELSE 0 END), 0) AS total_expense").
		Where("user_id = ?", userID).
		Scan(&row)

	if result.Error != nil {
		r.logger.Error("Failed to summarize transactions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return entity.Summary{}, r.wrapStoreError(result.Error)
	}

	return entity.Summary{
		Balance:      row.Balance,
		TotalIncome:  row.TotalIncome,
		TotalExpense: row.TotalExpense,
	}, nil
}
