package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/entity"
	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/usecase"
)

// MockTransactionUseCase is a mock implementation of the
// usecase.TransactionUseCase interface
type MockTransactionUseCase struct {
	mock.Mock
}

func (m *MockTransactionUseCase) ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

func (m *MockTransactionUseCase) Create(ctx context.Context, input usecase.CreateTransactionInput) (*entity.Transaction, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *MockTransactionUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionUseCase) Summarize(ctx context.Context, userID string) (entity.Summary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(entity.Summary), args.Error(1)
}
