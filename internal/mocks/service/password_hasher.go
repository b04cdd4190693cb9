package service

import (
	"github.com/stretchr/testify/mock"

	"winespa/internal/domain/service"
)

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

var _ service.PasswordHasher = (*MockPasswordHasher)(nil)

// NewMockPasswordHasher creates a mock and asserts its expectations on cleanup.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
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

// MockSecretGenerator is a mock of service.SecretGenerator.
type MockSecretGenerator struct {
	mock.Mock
}

var _ service.SecretGenerator = (*MockSecretGenerator)(nil)

// NewMockSecretGenerator creates a mock and asserts its expectations on cleanup.
func NewMockSecretGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSecretGenerator {
	m := &MockSecretGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSecretGenerator) Generate() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}
