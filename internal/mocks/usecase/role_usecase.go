package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"winespa/internal/domain/entity"
	"winespa/internal/usecase"
)

// MockRoleUsecase is a mock of usecase.RoleUsecase.
type MockRoleUsecase struct {
	mock.Mock
}

var _ usecase.RoleUsecase = (*MockRoleUsecase)(nil)

// NewMockRoleUsecase creates a mock and asserts its expectations on cleanup.
func NewMockRoleUsecase(t testingT) *MockRoleUsecase {
	m := &MockRoleUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRoleUsecase) CreateRole(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	role, _ := args.Get(0).(*entity.Role)

	return role, args.Error(1)
}

func (m *MockRoleUsecase) GetRole(ctx context.Context, roleID uuid.UUID) (*entity.Role, error) {
	args := m.Called(ctx, roleID)
	role, _ := args.Get(0).(*entity.Role)

	return role, args.Error(1)
}

func (m *MockRoleUsecase) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]*entity.Role)

	return roles, args.Error(1)
}

func (m *MockRoleUsecase) SetRoleStatus(ctx context.Context, roleID uuid.UUID, status entity.Status) (*entity.Role, error) {
	args := m.Called(ctx, roleID, status)
	role, _ := args.Get(0).(*entity.Role)

	return role, args.Error(1)
}

func (m *MockRoleUsecase) DeleteRole(ctx context.Context, roleID uuid.UUID) error {
	return m.Called(ctx, roleID).Error(0)
}

func (m *MockRoleUsecase) CreatePermission(ctx context.Context, name string) (*entity.Permission, error) {
	args := m.Called(ctx, name)
	permission, _ := args.Get(0).(*entity.Permission)

	return permission, args.Error(1)
}

func (m *MockRoleUsecase) ListPermissions(ctx context.Context) ([]*entity.Permission, error) {
	args := m.Called(ctx)
	permissions, _ := args.Get(0).([]*entity.Permission)

	return permissions, args.Error(1)
}

func (m *MockRoleUsecase) SetPermissionStatus(ctx context.Context, permissionID uuid.UUID, status entity.Status) (*entity.Permission, error) {
	args := m.Called(ctx, permissionID, status)
	permission, _ := args.Get(0).(*entity.Permission)

	return permission, args.Error(1)
}

func (m *MockRoleUsecase) AddPermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, roleID, permissionID)

	return args.Bool(0), args.Error(1)
}

func (m *MockRoleUsecase) RemovePermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, roleID, permissionID)

	return args.Bool(0), args.Error(1)
}

func (m *MockRoleUsecase) HasPermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, roleID, permissionID)

	return args.Bool(0), args.Error(1)
}

func (m *MockRoleUsecase) RolePermissions(ctx context.Context, roleID uuid.UUID) ([]entity.Permission, error) {
	args := m.Called(ctx, roleID)
	permissions, _ := args.Get(0).([]entity.Permission)

	return permissions, args.Error(1)
}
