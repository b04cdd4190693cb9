package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AuthorizationUsecase answers permission checks for authenticated accounts.
type AuthorizationUsecase interface {
	// AccountHasPermission reports whether the account's role is active and holds
	// an active permission with the given name.
	AccountHasPermission(ctx context.Context, accountID uuid.UUID, permission string) (bool, error)

	// AccountIsSuperuser reports whether the account is an active superuser.
	AccountIsSuperuser(ctx context.Context, accountID uuid.UUID) (bool, error)

	// MustChangePassword reads the stored change-required flag, which outlives the tokens issued before it.
	MustChangePassword(ctx context.Context, accountID uuid.UUID) (bool, error)
}
