package dto

import (
	"time"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest represents the API request for creating a transaction.
// Amount is a pointer so a missing amount is distinguishable from a zero one;
// presence validation happens in the service.
type CreateTransactionRequest struct {
	UserID   string           `json:"user_id"`
	Title    string           `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Category string           `json:"category"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID        uint64          `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
}

// FromTransaction converts a transaction entity to its API representation
func FromTransaction(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Title:     t.Title,
		Amount:    t.Amount,
		Category:  t.Category,
		CreatedAt: t.CreatedAt,
	}
}

// FromTransactions converts a slice of transaction entities
func FromTransactions(transactions []entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, FromTransaction(&transactions[i]))
	}
	return responses
}
