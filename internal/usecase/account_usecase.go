// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"winespa/internal/domain/entity"
	"winespa/internal/domain/repository"
)

// --- Input DTOs ---

// RegisterAccountInput opens an account with a password chosen by its holder.
type RegisterAccountInput struct {
	entity.AccountParams
	Password string
}

// CreateAccountInput opens an account on behalf of its holder; a temporary password is mailed.
type CreateAccountInput struct {
	entity.AccountParams
}

// ChangePasswordInput replaces the current password of an account.
type ChangePasswordInput struct {
	AccountID       uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// UpdateProfileInput carries the editable identity fields of one account.
type UpdateProfileInput struct {
	AccountID uuid.UUID
	entity.ProfileChanges
}

// --- Output DTOs ---

// AccountOutput returns an account after a write.
type AccountOutput struct {
	Account *entity.Account
}

// TemporaryPasswordOutput reports the outcome of issuing a temporary password.
// The plaintext itself only ever leaves the service through the mailer.
type TemporaryPasswordOutput struct {
	Account   *entity.Account
	Delivered bool
}

// AccountUsecase defines account lifecycle and credential operations.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterAccountInput) (*AccountOutput, error)
	CreateWithTemporaryPassword(ctx context.Context, input *CreateAccountInput) (*TemporaryPasswordOutput, error)

	// IssueTemporaryPassword replaces the credential under an exclusive lock. It is never retried.
	IssueTemporaryPassword(ctx context.Context, accountID uuid.UUID) (*TemporaryPasswordOutput, error)
	VerifyPassword(ctx context.Context, accountID uuid.UUID, candidate string) (bool, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	Get(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	List(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*AccountOutput, error)
	SetStatus(ctx context.Context, accountID uuid.UUID, status entity.Status) (*AccountOutput, error)
	AssignRole(ctx context.Context, accountID uuid.UUID, roleID *uuid.UUID) (*AccountOutput, error)
}
