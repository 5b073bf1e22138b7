package transaction

import (
	"context"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/entity"
)

// ListByUser returns all transactions for the user, ordered most recent first.
// The identifier is validated before any store access.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	transactions, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("Transactions listed", map[string]any{
		"user_id": userID,
		"count":   len(transactions),
	})
	return transactions, nil
}
