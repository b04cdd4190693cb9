package repository

import (
	"context"

	"github.com/google/uuid"

	"winespa/internal/domain/entity"
)

// RoleRepository defines persistence for roles and their permission memberships.
type RoleRepository interface {
	// FindByID retrieves a role with its permissions preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error)

	// FindByIDForUpdate is FindByID holding a row lock on the role until the
	// surrounding transaction ends. Accounts cannot be pointed at the role, nor the
	// role deleted, by a concurrent transaction in the meantime.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Role, error)

	// FindByName retrieves a role with its permissions preloaded.
	FindByName(ctx context.Context, name string) (*entity.Role, error)

	// List returns every role with its permissions, ordered by name.
	List(ctx context.Context) ([]*entity.Role, error)

	// Create persists a new role. Its permissions slice is ignored.
	Create(ctx context.Context, role *entity.Role) error

	// Update writes the role's name and status. Memberships are untouched.
	Update(ctx context.Context, role *entity.Role) error

	// Delete removes the role and its membership records. Permissions themselves are kept.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddPermission records the membership; an existing pair is left as is.
	// It reports whether a new record was inserted.
	AddPermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error)

	// RemovePermission deletes the membership of this role only.
	// It reports whether a record was deleted.
	RemovePermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error)

	// HasPermission is a membership test on the association table.
	HasPermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error)

	// ListPermissions returns the permissions held by the role, ordered by name.
	ListPermissions(ctx context.Context, roleID uuid.UUID) ([]entity.Permission, error)
}

// PermissionRepository defines persistence for permissions.
type PermissionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Permission, error)
	FindByName(ctx context.Context, name string) (*entity.Permission, error)
	List(ctx context.Context) ([]*entity.Permission, error)
	Create(ctx context.Context, permission *entity.Permission) error

	// Update writes the permission's name and status.
	Update(ctx context.Context, permission *entity.Permission) error
}
