package transaction

import (
	coreport "github.com/mkarimi-dev/finance-tracker/internal/domain/port/core"
	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/persistence"
	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/usecase"
)

// Service implements the transaction business logic over the persistence gateway.
// Operations are stateless; no cross-request state is held here.
type Service struct {
	repo         persistence.TransactionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new transaction service instance
func NewService(
	repo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.TransactionUseCase {
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
