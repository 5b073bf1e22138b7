package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/entity"
	errs "github.com/mkarimi-dev/finance-tracker/internal/domain/error"
	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/usecase"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/logger"
	coremocks "github.com/mkarimi-dev/finance-tracker/mocks/port/core"
	persistencemocks "github.com/mkarimi-dev/finance-tracker/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

func newTestService(repo *persistencemocks.MockTransactionRepository) usecase.TransactionUseCase {
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime).Maybe()
	return NewService(repo, mockTime, logger.NewNoopLogger())
}

func decimalPtr(v decimal.Decimal) *decimal.Decimal {
	return &v
}

func TestService_ListByUser(t *testing.T) {
	t.Run("should return transactions for a valid user", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)
		expected := []entity.Transaction{
			{ID: 2, UserID: "42", Title: "Coffee", Amount: decimal.NewFromFloat(-3.50), Category: "food"},
			{ID: 1, UserID: "42", Title: "Salary", Amount: decimal.NewFromInt(1500), Category: "salary"},
		}
		mockRepo.On("ListByUser", ctx, "42").Return(expected, nil)

		service := newTestService(mockRepo)

		transactions, err := service.ListByUser(ctx, "42")

		assert.NoError(t, err)
		assert.Equal(t, expected, transactions)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should reject a non-numeric user ID without touching the store", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)

		service := newTestService(mockRepo)

		transactions, err := service.ListByUser(ctx, "abc")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, transactions)
		mockRepo.AssertNotCalled(t, "ListByUser")
	})

	t.Run("should return an empty slice for a user with no transactions", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)
		mockRepo.On("ListByUser", ctx, "7").Return([]entity.Transaction{}, nil)

		service := newTestService(mockRepo)

		transactions, err := service.ListByUser(ctx, "7")

		assert.NoError(t, err)
		assert.Empty(t, transactions)
	})

	t.Run("should propagate store errors", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)
		mockRepo.On("ListByUser", ctx, "42").Return(nil, errs.ErrDatabaseConnection)

		service := newTestService(mockRepo)

		_, err := service.ListByUser(ctx, "42")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestService_Create(t *testing.T) {
	t.Run("should persist a valid transaction with server-assigned fields", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).
			Run(func(args mock.Arguments) {
				tx := args.Get(1).(*entity.Transaction)
				tx.ID = 11
			}).
			Return(nil)

		service := newTestService(mockRepo)

		created, err := service.Create(ctx, usecase.CreateTransactionInput{
			UserID:   "42",
			Title:    "Salary",
			Amount:   decimalPtr(decimal.NewFromInt(1500)),
			Category: "salary",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint64(11), created.ID)
		assert.Equal(t, "42", created.UserID)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), created.CreatedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should allow a zero amount when present", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)

		service := newTestService(mockRepo)

		created, err := service.Create(ctx, usecase.CreateTransactionInput{
			UserID:   "42",
			Title:    "Correction",
			Amount:   decimalPtr(decimal.Zero),
			Category: "misc",
		})

		assert.NoError(t, err)
		assert.True(t, created.Amount.IsZero())
	})

	t.Run("should reject a missing amount without inserting a row", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)

		service := newTestService(mockRepo)

		created, err := service.Create(ctx, usecase.CreateTransactionInput{
			UserID:   "42",
			Title:    "Salary",
			Category: "salary",
		})

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "amount")
		assert.Nil(t, created)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("should list every missing field", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)

		service := newTestService(mockRepo)

		_, err := service.Create(ctx, usecase.CreateTransactionInput{})

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "user_id")
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "amount")
		assert.Contains(t, err.Error(), "category")
	})

	t.Run("should propagate store errors", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).
			Return(errs.ErrDatabaseConnection)

		service := newTestService(mockRepo)

		_, err := service.Create(ctx, usecase.CreateTransactionInput{
			UserID:   "42",
			Title:    "Salary",
			Amount:   decimalPtr(decimal.NewFromInt(100)),
			Category: "salary",
		})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("should delete an existing transaction", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)
		mockRepo.On("Delete", ctx, uint64(11)).Return(nil)

		service := newTestService(mockRepo)

		err := service.Delete(ctx, "11")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should reject a non-numeric ID without touching the store", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)

		service := newTestService(mockRepo)

		err := service.Delete(ctx, "eleven")

		assert.ErrorIs(t, err, errs.ErrInvalidTransactionID)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("should surface not found for an absent target", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)
		mockRepo.On("Delete", ctx, uint64(99)).Return(errs.ErrTransactionNotFound)

		service := newTestService(mockRepo)

		err := service.Delete(ctx, "99")

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestService_Summarize(t *testing.T) {
	t.Run("should return the aggregate for a valid user", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)
		summary := entity.Summary{
			Balance:      decimal.NewFromInt(60),
			TotalIncome:  decimal.NewFromInt(100),
			TotalExpense: decimal.NewFromInt(-40),
		}
		mockRepo.On("Summarize", ctx, "42").Return(summary, nil)

		service := newTestService(mockRepo)

		got, err := service.Summarize(ctx, "42")

		assert.NoError(t, err)
		assert.True(t, summary.Balance.Equal(got.Balance))
		assert.True(t, summary.TotalIncome.Equal(got.TotalIncome))
		assert.True(t, summary.TotalExpense.Equal(got.TotalExpense))
	})

	t.Run("should reject a non-numeric user ID without touching the store", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)

		service := newTestService(mockRepo)

		_, err := service.Summarize(ctx, "abc")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		mockRepo.AssertNotCalled(t, "Summarize")
	})

	t.Run("should return a zero-filled summary for a user with no transactions", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)
		mockRepo.On("Summarize", ctx, "7").Return(entity.ZeroSummary(), nil)

		service := newTestService(mockRepo)

		got, err := service.Summarize(ctx, "7")

		assert.NoError(t, err)
		assert.True(t, got.Balance.IsZero())
		assert.True(t, got.TotalIncome.IsZero())
		assert.True(t, got.TotalExpense.IsZero())
	})

	t.Run("should propagate store errors", func(t *testing.T) {
		ctx := context.Background()
		mockRepo := new(persistencemocks.MockTransactionRepository)
		mockRepo.On("Summarize", ctx, "42").Return(entity.Summary{}, errors.New("connection reset"))

		service := newTestService(mockRepo)

		_, err := service.Summarize(ctx, "42")

		assert.Error(t, err)
	})
}
