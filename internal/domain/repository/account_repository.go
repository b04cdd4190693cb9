// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/google/uuid"

	"winespa/internal/domain/entity"
)

// UniqueScope controls which accounts take part in an email/document uniqueness check.
type UniqueScope struct {
	// Kind restricts the check to accounts of this kind; empty means every kind.
	Kind entity.AccountKind
	// ExcludeID leaves one account out, used when updating it.
	ExcludeID uuid.UUID
}

// AccountFilter narrows List results. Zero values match everything.
type AccountFilter struct {
	Kind   entity.AccountKind
	Status entity.Status
	RoleID *uuid.UUID
	Limit  int
	Offset int
}

// AccountRepository defines the standard operations for account persistence.
// Accounts are never deleted; Update toggles the status instead.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	// Returns ErrAccountNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIDForUpdate retrieves an account and holds an exclusive row lock on the primary
	// until the surrounding transaction ends. Only meaningful inside TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account of the given kind by its email address.
	FindByEmail(ctx context.Context, kind entity.AccountKind, email string) (*entity.Account, error)

	// ExistsByEmail reports whether an account within scope already uses the email.
	ExistsByEmail(ctx context.Context, email string, scope UniqueScope) (bool, error)

	// ExistsByDocument reports whether an account within scope already uses the document.
	ExistsByDocument(ctx context.Context, documentType entity.DocumentType, number string, scope UniqueScope) (bool, error)

	// Create persists a new account, including its credential.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies identity, status, role and profile fields. The credential is left untouched.
	Update(ctx context.Context, account *entity.Account) error

	// UpdateCredential writes only the credential columns of the account.
	UpdateCredential(ctx context.Context, account *entity.Account) error

	// List returns accounts matching the filter ordered by full name.
	List(ctx context.Context, filter AccountFilter) ([]*entity.Account, error)
}
