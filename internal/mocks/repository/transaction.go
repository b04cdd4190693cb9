package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"winespa/internal/domain/repository"
)

// MockTransactionManager is a mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

var _ repository.TransactionManager = (*MockTransactionManager)(nil)

// NewMockTransactionManager creates a mock and asserts its expectations on cleanup.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Execute returns the configured error, or runs the configured function when one was given.
func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return args.Error(0)
}

// RunWith makes Execute call fn with factory and return its result.
func (m *MockTransactionManager) RunWith(factory repository.RepositoryFactory) *mock.Call {
	return m.On("Execute", mock.Anything, mock.Anything).
		Return(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// MockRepositoryFactory is a mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

var _ repository.RepositoryFactory = (*MockRepositoryFactory)(nil)

// NewMockRepositoryFactory creates a mock without expectation assertions;
// factories are consulted a varying number of times per transaction.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)

	return m
}

func (m *MockRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	repo, _ := m.Called().Get(0).(repository.AccountRepository)

	return repo
}

func (m *MockRepositoryFactory) NewRoleRepository() repository.RoleRepository {
	repo, _ := m.Called().Get(0).(repository.RoleRepository)

	return repo
}

func (m *MockRepositoryFactory) NewPermissionRepository() repository.PermissionRepository {
	repo, _ := m.Called().Get(0).(repository.PermissionRepository)

	return repo
}

func (m *MockRepositoryFactory) NewAbsenceRepository() repository.AbsenceRepository {
	repo, _ := m.Called().Get(0).(repository.AbsenceRepository)

	return repo
}
