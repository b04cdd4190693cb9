package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"winespa/internal/domain/entity"
	"winespa/internal/domain/repository"
)

// MockRoleRepository is a mock of repository.RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

var _ repository.RoleRepository = (*MockRoleRepository)(nil)

// NewMockRoleRepository creates a mock and asserts its expectations on cleanup.
func NewMockRoleRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRoleRepository {
	m := &MockRoleRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	args := m.Called(ctx, id)
	role, _ := args.Get(0).(*entity.Role)

	return role, args.Error(1)
}

func (m *MockRoleRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	args := m.Called(ctx, id)
	role, _ := args.Get(0).(*entity.Role)

	return role, args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	role, _ := args.Get(0).(*entity.Role)

	return role, args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]*entity.Role)

	return roles, args.Error(1)
}

func (m *MockRoleRepository) Create(ctx context.Context, role *entity.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *MockRoleRepository) Update(ctx context.Context, role *entity.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *MockRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRoleRepository) AddPermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, roleID, permissionID)

	return args.Bool(0), args.Error(1)
}

func (m *MockRoleRepository) RemovePermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, roleID, permissionID)

	return args.Bool(0), args.Error(1)
}

func (m *MockRoleRepository) HasPermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, roleID, permissionID)

	return args.Bool(0), args.Error(1)
}

func (m *MockRoleRepository) ListPermissions(ctx context.Context, roleID uuid.UUID) ([]entity.Permission, error) {
	args := m.Called(ctx, roleID)
	permissions, _ := args.Get(0).([]entity.Permission)

	return permissions, args.Error(1)
}

// MockPermissionRepository is a mock of repository.PermissionRepository.
type MockPermissionRepository struct {
	mock.Mock
}

var _ repository.PermissionRepository = (*MockPermissionRepository)(nil)

// NewMockPermissionRepository creates a mock and asserts its expectations on cleanup.
func NewMockPermissionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPermissionRepository {
	m := &MockPermissionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPermissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Permission, error) {
	args := m.Called(ctx, id)
	permission, _ := args.Get(0).(*entity.Permission)

	return permission, args.Error(1)
}

func (m *MockPermissionRepository) FindByName(ctx context.Context, name string) (*entity.Permission, error) {
	args := m.Called(ctx, name)
	permission, _ := args.Get(0).(*entity.Permission)

	return permission, args.Error(1)
}

func (m *MockPermissionRepository) List(ctx context.Context) ([]*entity.Permission, error) {
	args := m.Called(ctx)
	permissions, _ := args.Get(0).([]*entity.Permission)

	return permissions, args.Error(1)
}

func (m *MockPermissionRepository) Create(ctx context.Context, permission *entity.Permission) error {
	return m.Called(ctx, permission).Error(0)
}

func (m *MockPermissionRepository) Update(ctx context.Context, permission *entity.Permission) error {
	return m.Called(ctx, permission).Error(0)
}
