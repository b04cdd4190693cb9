package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;unique"`
	Status    string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// PermissionModel mirrors the 'permissions' table.
type PermissionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;unique"`
	Status    string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PermissionModel) TableName() string {
	return "permissions"
}

// RoleHasPermissionModel mirrors the 'role_has_permissions' association table.
// The (role_id, permission_id) pair is the primary key, so a membership exists at most once.
// Deleting a role cascades to its memberships only; permissions are restricted from deletion while referenced.
type RoleHasPermissionModel struct {
	RoleID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt    time.Time

	Role       *RoleModel       `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	Permission *PermissionModel `gorm:"foreignKey:PermissionID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (RoleHasPermissionModel) TableName() string {
	return "role_has_permissions"
}

// RolePermissionRow is the scan target of the role/permission join.
type RolePermissionRow struct {
	RoleID    uuid.UUID
	ID        uuid.UUID
	Name      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
