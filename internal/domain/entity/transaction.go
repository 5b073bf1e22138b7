package entity

import (
	"time"

	tport "github.com/mkarimi-dev/finance-tracker/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// AmountDecimalPlaces defines how many decimal places are stored for amounts
const AmountDecimalPlaces = 2

// Transaction represents a single recorded income or expense entry owned by a user.
// Positive amounts are income, negative amounts are expenses.
type Transaction struct {
	ID        uint64          // Server-assigned identifier, unique, immutable
	UserID    string          // Identifier of the owning user, trusted from the caller
	Title     string          // Non-empty label
	Amount    decimal.Decimal // Signed amount, stored with 2 decimal places
	Category  string          // Free-form classification
	CreatedAt time.Time       // Creation date, server-assigned
}

// NewTransaction creates a new transaction with a server-assigned creation date.
// The amount is normalized to 2 decimal places and created_at is truncated to
// the day, matching the DATE column it is stored in.
func NewTransaction(
	userID string,
	title string,
	amount decimal.Decimal,
	category string,
	timeProvider tport.TimeProvider,
) *Transaction {
	now := timeProvider.Now()
	return &Transaction{
		UserID:    userID,
		Title:     title,
		Amount:    NormalizeAmount(amount),
		Category:  category,
		CreatedAt: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}
}

// IsIncome returns true if this transaction increases the user's balance
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense returns true if this transaction decreases the user's balance
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// NormalizeAmount rounds an amount to the stored precision of 2 decimal places
func NormalizeAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountDecimalPlaces)
}
