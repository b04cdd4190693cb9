// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/repository"
	"winespa/internal/errors"
	"winespa/internal/infra/persistence/model"
	"winespa/internal/infra/persistence/postgres/query"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	q *query.Query
}

// NewAccountRepository is the constructor for accountRepository.
// It initializes the repository with a database connection and the GORM Gen query builder.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	accountM, err := repo.q.AccountModel.WithContext(ctx).
		Where(repo.q.AccountModel.ID.Eq(id)).
		First()
	if err != nil {
		return nil, repo.lookupError(err, "failed to find account by id")
	}

	return toAccountDomain(accountM), nil
}

// FindByIDForUpdate reads the account from the primary with SELECT ... FOR UPDATE.
func (repo *accountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	accountM, err := repo.q.AccountModel.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where(repo.q.AccountModel.ID.Eq(id)).
		First()
	if err != nil {
		return nil, repo.lookupError(err, "failed to lock account")
	}

	return toAccountDomain(accountM), nil
}

// FindByEmail retrieves a single account of the given kind by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, kind entity.AccountKind, email string) (*entity.Account, error) {
	a := &repo.q.AccountModel
	accountM, err := a.WithContext(ctx).
		Where(a.Kind.Eq(string(kind)), a.Email.Eq(entity.NormalizeEmail(email))).
		First()
	if err != nil {
		return nil, repo.lookupError(err, "failed to find account by email")
	}

	return toAccountDomain(accountM), nil
}

// ExistsByEmail reports whether an account within scope already uses the email.
func (repo *accountRepository) ExistsByEmail(ctx context.Context, email string, scope repository.UniqueScope) (bool, error) {
	a := &repo.q.AccountModel

	return repo.exists(ctx, scope, "failed to check email uniqueness",
		a.Email.Eq(entity.NormalizeEmail(email)))
}

// ExistsByDocument reports whether an account within scope already uses the document.
func (repo *accountRepository) ExistsByDocument(ctx context.Context, documentType entity.DocumentType, number string, scope repository.UniqueScope) (bool, error) {
	a := &repo.q.AccountModel

	return repo.exists(ctx, scope, "failed to check document uniqueness",
		a.DocumentType.Eq(string(documentType)), a.DocumentNumber.Eq(strings.TrimSpace(number)))
}

// Create persists a new account, including its credential.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.q.AccountModel.WithContext(ctx).Create(accountM); err != nil {
		return repo.writeError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies identity, status, role and profile fields. The credential is never written here.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	a := &repo.q.AccountModel
	accountM := fromAccountDomain(account)

	result, err := a.WithContext(ctx).
		Select(a.Kind, a.DocumentType, a.DocumentNumber, a.FullName, a.Phone, a.Email, a.Status, a.RoleID,
			a.Address, a.Gender, a.Specialty, a.Available, a.IsStaff, a.IsSuperuser, a.UpdatedAt).
		Updates(accountM)
	if err != nil {
		return repo.writeError(err, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAccountNotFound
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdateCredential writes only the credential columns of the account.
func (repo *accountRepository) UpdateCredential(ctx context.Context, account *entity.Account) error {
	a := &repo.q.AccountModel
	accountM := fromAccountDomain(account)

	result, err := a.WithContext(ctx).
		Select(a.SecretHash, a.MustChangePassword, a.PasswordChangedAt, a.UpdatedAt).
		Updates(accountM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update account credential")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAccountNotFound
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// List returns accounts matching the filter ordered by full name.
func (repo *accountRepository) List(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	a := &repo.q.AccountModel

	var conds []gen.Condition
	if filter.Kind != "" {
		conds = append(conds, a.Kind.Eq(string(filter.Kind)))
	}
	if filter.Status != "" {
		conds = append(conds, a.Status.Eq(string(filter.Status)))
	}
	if filter.RoleID != nil {
		conds = append(conds, a.RoleID.Eq(*filter.RoleID))
	}

	do := a.WithContext(ctx).Where(conds...).Order(a.FullName)
	if filter.Limit > 0 {
		do = do.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		do = do.Offset(filter.Offset)
	}

	accountsM, err := do.Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountsM))
	for _, accountM := range accountsM {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// exists counts the accounts matching conds inside the uniqueness scope.
func (repo *accountRepository) exists(ctx context.Context, scope repository.UniqueScope, details string, conds ...gen.Condition) (bool, error) {
	a := &repo.q.AccountModel

	var where []gen.Condition
	if scope.Kind != "" {
		where = append(where, a.Kind.Eq(string(scope.Kind)))
	}
	if scope.ExcludeID != uuid.Nil {
		where = append(where, a.ID.Neq(scope.ExcludeID))
	}
	where = append(where, conds...)

	count, err := a.WithContext(ctx).Where(where...).Count()
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return count > 0, nil
}

func (repo *accountRepository) lookupError(err error, details string) error {
	// If the error is 'record not found', return a domain-specific error.
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrAccountNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func (repo *accountRepository) writeError(err error, details string) error {
	// Convert PostgreSQL errors to domain errors
	if isUniqueConstraintViolation(err) {
		if strings.Contains(constraintName(err), "email") {
			return domainerrors.ErrAccountAlreadyExists.WithDetails("email already registered")
		}
		if strings.Contains(constraintName(err), "document") {
			return domainerrors.ErrAccountAlreadyExists.WithDetails("document already registered")
		}

		return domainerrors.ErrAccountAlreadyExists
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrRoleNotFound.WithDetails("account references an unknown role")
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("missing or invalid account information")
	}

	// For other database errors, return a generic database error
	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	credential := entity.Credential{
		SecretHash: data.SecretHash,
		MustChange: data.MustChangePassword,
	}
	if data.PasswordChangedAt != nil {
		credential.ChangedAt = *data.PasswordChangedAt
	}

	return &entity.Account{
		ID:             data.ID,
		Kind:           entity.AccountKind(data.Kind),
		DocumentType:   entity.DocumentType(data.DocumentType),
		DocumentNumber: data.DocumentNumber,
		FullName:       data.FullName,
		Phone:          data.Phone,
		Email:          data.Email,
		Status:         entity.Status(data.Status),
		Credential:     credential,
		RoleID:         data.RoleID,
		Address:        data.Address,
		Gender:         data.Gender,
		Specialty:      data.Specialty,
		Available:      data.Available,
		IsStaff:        data.IsStaff,
		IsSuperuser:    data.IsSuperuser,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.AccountModel{
		ID:                 data.ID,
		Kind:               string(data.Kind),
		DocumentType:       string(data.DocumentType),
		DocumentNumber:     data.DocumentNumber,
		FullName:           data.FullName,
		Phone:              data.Phone,
		Email:              data.Email,
		Status:             string(data.Status),
		SecretHash:         data.Credential.SecretHash,
		MustChangePassword: data.Credential.MustChange,
		RoleID:             data.RoleID,
		Address:            data.Address,
		Gender:             data.Gender,
		Specialty:          data.Specialty,
		Available:          data.Available,
		IsStaff:            data.IsStaff,
		IsSuperuser:        data.IsSuperuser,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
	if !data.Credential.ChangedAt.IsZero() {
		changedAt := data.Credential.ChangedAt
		accountM.PasswordChangedAt = &changedAt
	}

	return accountM
}
