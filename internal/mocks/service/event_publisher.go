package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"winespa/internal/domain/service"
)

// MockEventPublisher is a mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

var _ service.EventPublisher = (*MockEventPublisher)(nil)

// NewMockEventPublisher creates a mock and asserts its expectations on cleanup.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *service.AccountEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockCredentialNotifier is a mock of service.CredentialNotifier.
type MockCredentialNotifier struct {
	mock.Mock
}

var _ service.CredentialNotifier = (*MockCredentialNotifier)(nil)

// NewMockCredentialNotifier creates a mock and asserts its expectations on cleanup.
func NewMockCredentialNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialNotifier {
	m := &MockCredentialNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCredentialNotifier) SendTemporaryPassword(ctx context.Context, email, fullName, plaintext string) error {
	return m.Called(ctx, email, fullName, plaintext).Error(0)
}

func (m *MockCredentialNotifier) SendPasswordChanged(ctx context.Context, email, fullName string) error {
	return m.Called(ctx, email, fullName).Error(0)
}
