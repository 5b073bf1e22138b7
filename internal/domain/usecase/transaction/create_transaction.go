package transaction

import (
	"context"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/entity"
	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/usecase"
)

// Create validates the input and persists a new transaction. On success the
// returned record carries the server-assigned id and creation date.
func (s *Service) Create(ctx context.Context, input usecase.CreateTransactionInput) (*entity.Transaction, error) {
	if err := validateCreateInput(input); err != nil {
		s.logger.Warn("Rejected create with missing fields", map[string]any{
			"user_id": input.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	tx := entity.NewTransaction(input.UserID, input.Title, *input.Amount, input.Category, s.timeProvider)

	if err := s.repo.Create(ctx, tx); err != nil {
		s.logger.Error("Failed to create transaction", map[string]any{
			"user_id": input.UserID,
			"title":   input.Title,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"id":       tx.ID,
		"user_id":  tx.UserID,
		"amount":   tx.Amount.String(),
		"category": tx.Category,
	})
	return tx, nil
}
