package usecase

import (
	"context"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateTransactionInput carries the caller-supplied fields for a create.
// Amount is a pointer so a missing amount can be told apart from a zero one.
type CreateTransactionInput struct {
	UserID   string
	Title    string
	Amount   *decimal.Decimal
	Category string
}

// TransactionUseCase defines the transaction service operations
type TransactionUseCase interface {
	// ListByUser returns the user's transactions, most recent first
	ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error)

	// Create validates the input and persists a new transaction
	Create(ctx context.Context, input CreateTransactionInput) (*entity.Transaction, error)

	// Delete permanently removes a transaction by its identifier
	Delete(ctx context.Context, id string) error

	// Summarize computes the balance/income/expense aggregate for the user
	Summarize(ctx context.Context, userID string) (entity.Summary, error)
}
