package transaction

import (
	"strconv"
	"strings"

	errs "github.com/mkarimi-dev/finance-tracker/internal/domain/error"
	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/usecase"
)

// validateUserID ensures a user identifier parses as a non-negative integer
func validateUserID(userID string) error {
	if _, err := strconv.ParseUint(strings.TrimSpace(userID), 10, 64); err != nil {
		return errs.ErrInvalidUserID
	}
	return nil
}

// parseTransactionID parses a transaction identifier from its path form
func parseTransactionID(id string) (uint64, error) {
	parsed, err := strconv.ParseUint(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return 0, errs.ErrInvalidTransactionID
	}
	return parsed, nil
}

// validateCreateInput collects the missing required fields, if any.
// Amount may be zero or negative but must be present; the other fields
// must be non-empty.
func validateCreateInput(input usecase.CreateTransactionInput) error {
	var missing []string

	if strings.TrimSpace(input.UserID) == "" {
		missing = append(missing, "user_id")
	}
	if strings.TrimSpace(input.Title) == "" {
		missing = append(missing, "title")
	}
	if input.Amount == nil {
		missing = append(missing, "amount")
	}
	if strings.TrimSpace(input.Category) == "" {
		missing = append(missing, "category")
	}

	if len(missing) > 0 {
		return errs.NewValidationError(missing...)
	}
	return nil
}
