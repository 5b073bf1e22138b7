package entity

import "github.com/shopspring/decimal"

// Summary is the derived aggregate over a user's transactions.
// It is computed per request and never persisted.
type Summary struct {
	Balance      decimal.Decimal // Sum of all amounts
	TotalIncome  decimal.Decimal // Sum of positive amounts, 0 when none
	TotalExpense decimal.Decimal // Sum of negative amounts, 0 when none
}

// ZeroSummary returns the summary for a user with no transactions
func ZeroSummary() Summary {
	return Summary{
		Balance:      decimal.Zero,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
}

// Add folds a transaction amount into the summary
func (s Summary) Add(amount decimal.Decimal) Summary {
	s.Balance = s.Balance.Add(amount)
	if amount.IsPositive() {
		s.TotalIncome = s.TotalIncome.Add(amount)
	}
	if amount.IsNegative() {
		s.TotalExpense = s.TotalExpense.Add(amount)
	}
	return s
}
