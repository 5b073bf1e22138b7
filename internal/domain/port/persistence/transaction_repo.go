package persistence

import (
	"context"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/entity"
)

// TransactionRepository defines persistence operations for transactions.
// It is the only component permitted to issue statements against the store.
type TransactionRepository interface {
	// ListByUser returns all transactions for the user, most recent first
	ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error)

	// Create persists a new transaction and fills in the assigned ID
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Delete permanently removes the transaction with the given ID.
	// Returns ErrTransactionNotFound when no row matches.
	Delete(ctx context.Context, id uint64) error

	// Summarize computes the balance/income/expense aggregate for the user
	Summarize(ctx context.Context, userID string) (entity.Summary, error)
}
