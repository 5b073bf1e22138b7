package transaction

import (
	"context"

	errs "github.com/mkarimi-dev/finance-tracker/internal/domain/error"
)

// Delete permanently removes a transaction. The identifier is validated before
// any store access; a missing row surfaces as ErrTransactionNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	transactionID, err := parseTransactionID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, transactionID); err != nil {
		if errs.IsNotFoundError(err) {
			s.logger.Warn("Delete target not found", map[string]any{
				"id": transactionID,
			})
			return err
		}
		s.logger.Error("Failed to delete transaction", map[string]any{
			"id":    transactionID,
			"error": err.Error(),
		})
		return err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"id": transactionID,
	})
	return nil
}
