package ratelimit

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLimiter is a mock implementation of the ratelimit.Limiter interface
type MockLimiter struct {
	mock.Mock
}

func (m *MockLimiter) Check(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
