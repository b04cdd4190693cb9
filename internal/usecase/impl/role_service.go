package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "winespa/internal/delivery/context"
	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/repository"
	"winespa/internal/domain/service"
	"winespa/internal/errors"
	"winespa/internal/usecase"
)

// roleService implements the RoleUsecase interface.
type roleService struct {
	txManager      repository.TransactionManager
	roleRepo       repository.RoleRepository
	permissionRepo repository.PermissionRepository
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// RoleServiceParams holds dependencies for RoleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RoleRepo       repository.RoleRepository
	PermissionRepo repository.PermissionRepository
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		txManager:      params.TxManager,
		roleRepo:       params.RoleRepo,
		permissionRepo: params.PermissionRepo,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *roleService) CreateRole(ctx context.Context, name string) (*entity.Role, error) {
	role, err := entity.NewRole(name)
	if err != nil {
		return nil, err
	}

	if err := srv.roleRepo.Create(ctx, role); err != nil {
		return nil, errors.Wrap(err, "failed to create role")
	}

	srv.log(ctx).Info("Role created", slog.String("role_id", role.ID.String()), slog.String("name", role.Name))

	return role, nil
}

func (srv *roleService) GetRole(ctx context.Context, roleID uuid.UUID) (*entity.Role, error) {
	role, err := srv.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find role")
	}

	return role, nil
}

func (srv *roleService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.roleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

// SetRoleStatus never cascades to the role's permissions or accounts.
func (srv *roleService) SetRoleStatus(ctx context.Context, roleID uuid.UUID, status entity.Status) (*entity.Role, error) {
	var role *entity.Role
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		found, err := roleRepo.FindByID(ctx, roleID)
		if err != nil {
			return err
		}
		if err := found.SetStatus(status); err != nil {
			return err
		}
		if err := roleRepo.Update(ctx, found); err != nil {
			return err
		}

		role = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change role status")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), newRoleEvent(ctx, role))

	return role, nil
}

// DeleteRole refuses to delete a role still assigned to an account.
func (srv *roleService) DeleteRole(ctx context.Context, roleID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		// The lock keeps concurrent assignments out until the role is gone.
		if _, err := roleRepo.FindByIDForUpdate(ctx, roleID); err != nil {
			return err
		}

		holders, err := repoFactory.NewAccountRepository().List(ctx, repository.AccountFilter{RoleID: &roleID, Limit: 1})
		if err != nil {
			return err
		}
		if len(holders) > 0 {
			return domainerrors.ErrInvalidInput.WithDetails("role is still assigned to accounts")
		}

		return roleRepo.Delete(ctx, roleID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete role")
	}

	srv.log(ctx).Info("Role deleted", slog.String("role_id", roleID.String()))

	return nil
}

func (srv *roleService) CreatePermission(ctx context.Context, name string) (*entity.Permission, error) {
	permission, err := entity.NewPermission(name)
	if err != nil {
		return nil, err
	}

	if err := srv.permissionRepo.Create(ctx, permission); err != nil {
		return nil, errors.Wrap(err, "failed to create permission")
	}

	srv.log(ctx).Info("Permission created", slog.String("permission_id", permission.ID.String()), slog.String("name", permission.Name))

	return permission, nil
}

func (srv *roleService) ListPermissions(ctx context.Context) ([]*entity.Permission, error) {
	permissions, err := srv.permissionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list permissions")
	}

	return permissions, nil
}

// SetPermissionStatus leaves every role holding the permission untouched.
func (srv *roleService) SetPermissionStatus(ctx context.Context, permissionID uuid.UUID, status entity.Status) (*entity.Permission, error) {
	var permission *entity.Permission
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		permissionRepo := repoFactory.NewPermissionRepository()

		found, err := permissionRepo.FindByID(ctx, permissionID)
		if err != nil {
			return err
		}
		if err := found.SetStatus(status); err != nil {
			return err
		}
		if err := permissionRepo.Update(ctx, found); err != nil {
			return err
		}

		permission = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change permission status")
	}

	return permission, nil
}

// AddPermission is idempotent: adding a held permission reports false and changes nothing.
func (srv *roleService) AddPermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	var (
		role  *entity.Role
		added bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		found, err := roleRepo.FindByID(ctx, roleID)
		if err != nil {
			return err
		}
		permission, err := repoFactory.NewPermissionRepository().FindByID(ctx, permissionID)
		if err != nil {
			return err
		}

		if !found.AddPermission(*permission) {
			return nil
		}

		added, err = roleRepo.AddPermission(ctx, roleID, permissionID)
		role = found

		return err
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to add permission to role")
	}

	if added {
		srv.log(ctx).Info("Permission added to role", slog.String("role_id", roleID.String()), slog.String("permission_id", permissionID.String()))
		publishEvent(ctx, srv.publisher, srv.log(ctx), newRoleEvent(ctx, role))
	}

	return added, nil
}

// RemovePermission affects this role only; the permission and its other memberships survive.
func (srv *roleService) RemovePermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	var (
		role    *entity.Role
		removed bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		found, err := roleRepo.FindByID(ctx, roleID)
		if err != nil {
			return err
		}
		if !found.RemovePermission(permissionID) {
			return nil
		}

		removed, err = roleRepo.RemovePermission(ctx, roleID, permissionID)
		role = found

		return err
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to remove permission from role")
	}

	if removed {
		srv.log(ctx).Info("Permission removed from role", slog.String("role_id", roleID.String()), slog.String("permission_id", permissionID.String()))
		publishEvent(ctx, srv.publisher, srv.log(ctx), newRoleEvent(ctx, role))
	}

	return removed, nil
}

func (srv *roleService) HasPermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	has, err := srv.roleRepo.HasPermission(ctx, roleID, permissionID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check role permission")
	}

	return has, nil
}

func (srv *roleService) RolePermissions(ctx context.Context, roleID uuid.UUID) ([]entity.Permission, error) {
	if _, err := srv.roleRepo.FindByID(ctx, roleID); err != nil {
		return nil, errors.Wrap(err, "failed to find role")
	}

	permissions, err := srv.roleRepo.ListPermissions(ctx, roleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list role permissions")
	}

	return permissions, nil
}
