package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/entity"
)

// MockTransactionRepository is a mock implementation of the
// persistence.TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) Summarize(ctx context.Context, userID string) (entity.Summary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(entity.Summary), args.Error(1)
}
