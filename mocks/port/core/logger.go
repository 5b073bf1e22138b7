package core

import (
	"github.com/stretchr/testify/mock"

	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/core"
)

// MockLogger is a mock implementation of the core.Logger interface
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) SetLevel(level core.LogLevel) {
	m.Called(level)
}

func (m *MockLogger) GetLevel() core.LogLevel {
	args := m.Called()
	return args.Get(0).(core.LogLevel)
}

func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}
