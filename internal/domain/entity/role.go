package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	domainerrors "winespa/internal/domain/errors"
)

// Status is the active/inactive flag shared by accounts, roles and permissions.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// Permission is a named capability, e.g. "Ver Dashboard".
type Permission struct {
	ID        uuid.UUID
	Name      string // Unique.
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPermission returns an active permission.
func NewPermission(name string) (*Permission, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("permission name is required")
	}

	now := time.Now().UTC()

	return &Permission{
		ID:        uuid.New(),
		Name:      name,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsActive reports whether the permission currently grants anything.
func (p *Permission) IsActive() bool {
	return p.Status == StatusActive
}

// SetStatus changes the permission's status. Roles holding it are not modified.
func (p *Permission) SetStatus(status Status) error {
	if !status.IsValid() {
		return domainerrors.ErrInvalidInput.WithDetails("unknown status: " + string(status))
	}

	p.Status = status
	p.UpdatedAt = time.Now().UTC()

	return nil
}

// Role groups permissions. A permission may belong to many roles.
type Role struct {
	ID          uuid.UUID
	Name        string // Unique.
	Status      Status
	Permissions []Permission
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RoleHasPermission is one membership record; the pair is unique.
type RoleHasPermission struct {
	RoleID       uuid.UUID
	PermissionID uuid.UUID
	CreatedAt    time.Time
}

// NewRole returns an active role with no permissions.
func NewRole(name string) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("role name is required")
	}

	now := time.Now().UTC()

	return &Role{
		ID:        uuid.New(),
		Name:      name,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsActive reports whether the role currently grants anything.
func (r *Role) IsActive() bool {
	return r.Status == StatusActive
}

// SetStatus changes the role's status. Its permissions keep their own status.
func (r *Role) SetStatus(status Status) error {
	if !status.IsValid() {
		return domainerrors.ErrInvalidInput.WithDetails("unknown status: " + string(status))
	}

	r.Status = status
	r.UpdatedAt = time.Now().UTC()

	return nil
}

// AddPermission adds p to the role. Adding a permission already present is a no-op.
// It reports whether the role changed.
func (r *Role) AddPermission(p Permission) bool {
	if r.HasPermission(p.ID) {
		return false
	}

	r.Permissions = append(r.Permissions, p)

	return true
}

// RemovePermission drops the permission from this role only.
// Removing a permission the role does not hold is a no-op.
func (r *Role) RemovePermission(permissionID uuid.UUID) bool {
	before := len(r.Permissions)
	r.Permissions = slices.DeleteFunc(r.Permissions, func(p Permission) bool {
		return p.ID == permissionID
	})

	return len(r.Permissions) != before
}

// HasPermission is a membership test by permission ID.
func (r *Role) HasPermission(permissionID uuid.UUID) bool {
	return slices.ContainsFunc(r.Permissions, func(p Permission) bool {
		return p.ID == permissionID
	})
}

// HasPermissionNamed is a membership test by permission name.
func (r *Role) HasPermissionNamed(name string) bool {
	return slices.ContainsFunc(r.Permissions, func(p Permission) bool {
		return p.Name == name
	})
}

// Grants reports whether the role is active and holds an active permission with the given name.
func (r *Role) Grants(name string) bool {
	if !r.IsActive() {
		return false
	}

	return slices.ContainsFunc(r.Permissions, func(p Permission) bool {
		return p.Name == name && p.IsActive()
	})
}

// PermissionNames lists the names of the role's permissions in insertion order.
func (r *Role) PermissionNames() []string {
	names := make([]string, len(r.Permissions))
	for i, p := range r.Permissions {
		names[i] = p.Name
	}

	return names
}
