package dto

import (
	"github.com/mkarimi-dev/finance-tracker/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SummaryResponse represents the API response for a user's transaction summary
type SummaryResponse struct {
	Balance      decimal.Decimal `json:"balance"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// FromSummary converts a summary aggregate to its API representation
func FromSummary(s entity.Summary) SummaryResponse {
	return SummaryResponse{
		Balance:      s.Balance,
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
	}
}
