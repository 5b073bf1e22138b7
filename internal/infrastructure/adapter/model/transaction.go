package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	UserID    string          `gorm:"not null;size:255;index"`
	Title     string          `gorm:"not null;size:255"`
	Amount    decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Category  string          `gorm:"not null;size:255"`
	CreatedAt time.Time       `gorm:"not null;type:date;default:CURRENT_DATE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
