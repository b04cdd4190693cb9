package usecase

import (
	"context"

	"github.com/google/uuid"

	"winespa/internal/domain/entity"
)

// RoleUsecase manages roles, permissions and their memberships.
type RoleUsecase interface {
	CreateRole(ctx context.Context, name string) (*entity.Role, error)
	GetRole(ctx context.Context, roleID uuid.UUID) (*entity.Role, error)
	ListRoles(ctx context.Context) ([]*entity.Role, error)
	SetRoleStatus(ctx context.Context, roleID uuid.UUID, status entity.Status) (*entity.Role, error)

	// DeleteRole removes the role and its memberships; shared permissions survive.
	DeleteRole(ctx context.Context, roleID uuid.UUID) error

	CreatePermission(ctx context.Context, name string) (*entity.Permission, error)
	ListPermissions(ctx context.Context) ([]*entity.Permission, error)
	SetPermissionStatus(ctx context.Context, permissionID uuid.UUID, status entity.Status) (*entity.Permission, error)

	// AddPermission and RemovePermission are idempotent; the bool reports whether anything changed.
	AddPermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error)
	RemovePermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error)
	HasPermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error)
	RolePermissions(ctx context.Context, roleID uuid.UUID) ([]entity.Permission, error)
}
