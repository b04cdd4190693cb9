package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "winespa/internal/delivery/context"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/repository"
	"winespa/internal/errors"
	"winespa/internal/usecase"
)

// authorizationService implements the AuthorizationUsecase interface.
type authorizationService struct {
	accountRepo repository.AccountRepository
	roleRepo    repository.RoleRepository
	logger      *slog.Logger
}

// AuthorizationServiceParams holds dependencies for AuthorizationService, injected by Fx.
type AuthorizationServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	RoleRepo    repository.RoleRepository
	Logger      *slog.Logger
}

// NewAuthorizationService is the constructor for authorizationService.
func NewAuthorizationService(params AuthorizationServiceParams) usecase.AuthorizationUsecase {
	return &authorizationService{
		accountRepo: params.AccountRepo,
		roleRepo:    params.RoleRepo,
		logger:      params.Logger,
	}
}

// AccountHasPermission grants nothing to inactive accounts, inactive roles or inactive permissions.
// Active superusers hold every permission.
func (srv *authorizationService) AccountHasPermission(ctx context.Context, accountID uuid.UUID, permission string) (bool, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return false, errors.Wrap(err, "failed to find account")
	}
	if !account.IsActive() {
		return false, nil
	}
	if account.IsSuperuser {
		return true, nil
	}
	if account.RoleID == nil {
		return false, nil
	}

	role, err := srv.roleRepo.FindByID(ctx, *account.RoleID)
	if errors.Is(err, domainerrors.ErrRoleNotFound) {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Account references a missing role",
			slog.String("account_id", accountID.String()),
			slog.String("role_id", account.RoleID.String()),
		)

		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to find role")
	}

	return role.Grants(permission), nil
}

// AccountIsSuperuser reports whether the account is an active superuser.
func (srv *authorizationService) AccountIsSuperuser(ctx context.Context, accountID uuid.UUID) (bool, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return false, errors.Wrap(err, "failed to find account")
	}

	return account.IsActive() && account.IsSuperuser, nil
}

// MustChangePassword reports whether the account currently holds a temporary password.
func (srv *authorizationService) MustChangePassword(ctx context.Context, accountID uuid.UUID) (bool, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return false, errors.Wrap(err, "failed to find account")
	}

	return account.MustChangePassword(), nil
}
