package core

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/core"
)

// MockTimeProvider is a mock implementation of the core.TimeProvider interface
type MockTimeProvider struct {
	mock.Mock
}

func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func (m *MockTimeProvider) Since(t time.Time) core.Duration {
	args := m.Called(t)
	return args.Get(0).(core.Duration)
}

func (m *MockTimeProvider) Until(t time.Time) core.Duration {
	args := m.Called(t)
	return args.Get(0).(core.Duration)
}

func (m *MockTimeProvider) Sleep(d core.Duration) {
	m.Called(d)
}

func (m *MockTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	args := m.Called(ctx, timeout)
	return args.Get(0).(context.Context), args.Get(1).(context.CancelFunc)
}

func (m *MockTimeProvider) ParseDuration(s string) (core.Duration, error) {
	args := m.Called(s)
	return args.Get(0).(core.Duration), args.Error(1)
}
