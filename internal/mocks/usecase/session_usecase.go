package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"winespa/internal/usecase"
)

// MockSessionUsecase is a mock of usecase.SessionUsecase.
type MockSessionUsecase struct {
	mock.Mock
}

var _ usecase.SessionUsecase = (*MockSessionUsecase)(nil)

// NewMockSessionUsecase creates a mock and asserts its expectations on cleanup.
func NewMockSessionUsecase(t testingT) *MockSessionUsecase {
	m := &MockSessionUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSessionUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.LoginOutput)

	return out, args.Error(1)
}

// MockAuthorizationUsecase is a mock of usecase.AuthorizationUsecase.
type MockAuthorizationUsecase struct {
	mock.Mock
}

var _ usecase.AuthorizationUsecase = (*MockAuthorizationUsecase)(nil)

// NewMockAuthorizationUsecase creates a mock and asserts its expectations on cleanup.
func NewMockAuthorizationUsecase(t testingT) *MockAuthorizationUsecase {
	m := &MockAuthorizationUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthorizationUsecase) AccountHasPermission(ctx context.Context, accountID uuid.UUID, permission string) (bool, error) {
	args := m.Called(ctx, accountID, permission)

	return args.Bool(0), args.Error(1)
}

func (m *MockAuthorizationUsecase) AccountIsSuperuser(ctx context.Context, accountID uuid.UUID) (bool, error) {
	args := m.Called(ctx, accountID)

	return args.Bool(0), args.Error(1)
}

func (m *MockAuthorizationUsecase) MustChangePassword(ctx context.Context, accountID uuid.UUID) (bool, error) {
	args := m.Called(ctx, accountID)

	return args.Bool(0), args.Error(1)
}
