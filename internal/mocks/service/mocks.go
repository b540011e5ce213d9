// Package mocks holds testify mocks of the domain service interfaces.
package mocks

import (
	"context"
	"time"

	"warehouse/internal/domain/entity"
	"warehouse/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// TestingT is what the constructors need to register expectation checks.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockEventPublisher is a mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock whose expectations are asserted at test cleanup.
func NewMockEventPublisher(t TestingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishStockAlert(ctx context.Context, event *service.StockAlertEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock whose expectations are asserted at test cleanup.
func NewMockPasswordHasher(t TestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock whose expectations are asserted at test cleanup.
func NewMockTokenService(t TestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateAccessToken(user entity.User) (string, time.Time, error) {
	args := m.Called(user)

	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

var (
	_ service.EventPublisher = (*MockEventPublisher)(nil)
	_ service.PasswordHasher = (*MockPasswordHasher)(nil)
	_ service.TokenService   = (*MockTokenService)(nil)
)
