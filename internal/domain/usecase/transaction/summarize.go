package transaction

import (
	"context"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/entity"
)

// Summarize computes the balance/income/expense aggregate for the user.
// Users with no transactions get a zero-filled summary.
func (s *Service) Summarize(ctx context.Context, userID string) (entity.Summary, error) {
	if err := validateUserID(userID); err != nil {
		return entity.Summary{}, err
	}

	summary, err := s.repo.Summarize(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to summarize transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return entity.Summary{}, err
	}

	s.logger.Debug("Summary computed", map[string]any{
		"user_id": userID,
		"balance": summary.Balance.String(),
	})
	return summary, nil
}
