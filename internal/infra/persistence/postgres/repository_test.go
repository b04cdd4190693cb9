package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/repository"
	"winespa/internal/errors"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

var accountColumns = []string{
	"id", "kind", "document_type", "document_number", "full_name", "email", "status",
	"secret_hash", "must_change_password", "role_id", "available", "created_at", "updated_at",
}

func TestAccountRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE "accounts"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(
			id, "client", "CC", "1020304050", "Adriana López", "adriana@gmail.com", "active",
			"$2a$04$hash", true, nil, false, now, now,
		))

	account, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	assert.Equal(t, entity.AccountKindClient, account.Kind)
	assert.Equal(t, "adriana@gmail.com", account.Email)
	assert.True(t, account.Credential.MustChange)
	assert.Nil(t, account.RoleID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE "accounts"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByIDForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE "accounts"."id" = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(
			id, "user", "CC", "99", "Ana Ruiz", "ana@gmail.com", "active",
			"$2a$04$hash", false, nil, false, now, now,
		))

	account, err := repo.FindByIDForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entity.AccountKindUser, account.Kind)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_ExistsByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE "accounts"."kind" = \$1 AND "accounts"."email" = \$2`).
		WithArgs("client", "adriana@gmail.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "  Adriana@Gmail.com ", repository.UniqueScope{Kind: entity.AccountKindClient})
	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_ExistsByDocument_GlobalScope(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	self := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE "accounts"."id" <> \$1 AND "accounts"."document_type" = \$2 AND "accounts"."document_number" = \$3`).
		WithArgs(self, "CC", "1020304050").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.ExistsByDocument(context.Background(), entity.DocumentCC, "1020304050", repository.UniqueScope{ExcludeID: self})
	require.NoError(t, err)
	assert.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create_Duplicate(t *testing.T) {
	tests := []struct {
		name       string
		pgErr      *pgconn.PgError
		wantDetail string
		wantErr    error
	}{
		{
			name:       "duplicate email",
			pgErr:      &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_accounts_kind_email"},
			wantDetail: "email already registered",
			wantErr:    domainerrors.ErrAccountAlreadyExists,
		},
		{
			name:       "duplicate document",
			pgErr:      &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_accounts_kind_document"},
			wantDetail: "document already registered",
			wantErr:    domainerrors.ErrAccountAlreadyExists,
		},
		{
			name:    "unknown role",
			pgErr:   &pgconn.PgError{Code: pgForeignKeyViolation},
			wantErr: domainerrors.ErrRoleNotFound,
		},
		{
			name:    "not null",
			pgErr:   &pgconn.PgError{Code: pgNotNullViolation},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewAccountRepository(db)

			mock.ExpectExec(`INSERT INTO "accounts"`).WillReturnError(tt.pgErr)

			err := repo.Create(context.Background(), &entity.Account{
				ID:    uuid.New(),
				Kind:  entity.AccountKindClient,
				Email: "adriana@gmail.com",
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))

			var appErr domainerrors.AppError
			if tt.wantDetail != "" && errors.As(err, &appErr) {
				assert.Equal(t, tt.wantDetail, appErr.Details())
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_UpdateCredential(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	account := &entity.Account{
		ID:         uuid.New(),
		FullName:   "must not be written",
		Credential: entity.Credential{SecretHash: "$2a$04$new", MustChange: false, ChangedAt: time.Now().UTC()},
	}

	mock.ExpectExec(`UPDATE "accounts" SET "secret_hash"=\$1,"must_change_password"=\$2,"password_changed_at"=\$3,"updated_at"=\$4 WHERE "id" = \$5`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateCredential(context.Background(), account))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_UpdateCredential_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(`UPDATE "accounts" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateCredential(context.Background(), &entity.Account{ID: uuid.New()})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleRepository(db)
	roleID := uuid.New()
	viewID, editID := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "roles" WHERE "roles"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status", "created_at", "updated_at"}).
			AddRow(roleID, "Editor", "active", now, now))
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT rhp.role_id, p.id, p.name, p.status, p.created_at, p.updated_at FROM role_has_permissions AS rhp JOIN permissions AS p ON p.id = rhp.permission_id WHERE rhp.role_id IN ($1) ORDER BY p.name`,
	)).WillReturnRows(sqlmock.NewRows([]string{"role_id", "id", "name", "status", "created_at", "updated_at"}).
		AddRow(roleID, editID, "Editar Usuario", "active", now, now).
		AddRow(roleID, viewID, "Ver Dashboard", "active", now, now))

	role, err := repo.FindByID(context.Background(), roleID)
	require.NoError(t, err)
	assert.Equal(t, "Editor", role.Name)
	assert.Equal(t, []string{"Editar Usuario", "Ver Dashboard"}, role.PermissionNames())
	assert.True(t, role.HasPermission(viewID))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_AddPermission(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "new membership", affected: 1, want: true},
		{name: "already a member", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewRoleRepository(db)

			mock.ExpectExec(`INSERT INTO "role_has_permissions" .* ON CONFLICT DO NOTHING`).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			added, err := repo.AddPermission(context.Background(), uuid.New(), uuid.New())
			require.NoError(t, err)
			assert.Equal(t, tt.want, added)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRoleRepository_AddPermission_UnknownPermission(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleRepository(db)

	mock.ExpectExec(`INSERT INTO "role_has_permissions"`).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	_, err := repo.AddPermission(context.Background(), uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_RemovePermission(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleRepository(db)
	roleID, permissionID := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM "role_has_permissions" WHERE role_id = \$1 AND permission_id = \$2`).
		WithArgs(roleID, permissionID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.RemovePermission(context.Background(), roleID, permissionID)
	require.NoError(t, err)
	assert.True(t, removed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleRepository(db)

	mock.ExpectExec(`DELETE FROM "role_has_permissions" WHERE role_id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "roles" WHERE "roles"."id" = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_Delete_StillAssigned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleRepository(db)
	roleID := uuid.New()

	mock.ExpectExec(`DELETE FROM "role_has_permissions" WHERE role_id = \$1`).
		WithArgs(roleID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "roles" WHERE "roles"."id" = \$1`).
		WithArgs(roleID).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_accounts_role"})

	err := repo.Delete(context.Background(), roleID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	assert.False(t, errors.Is(err, domainerrors.ErrRoleNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_FindByIDForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleRepository(db)
	roleID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "roles" WHERE "roles"."id" = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status", "created_at", "updated_at"}).
			AddRow(roleID, "Editor", "active", now, now))
	mock.ExpectQuery(`FROM role_has_permissions AS rhp`).
		WillReturnRows(sqlmock.NewRows([]string{"role_id", "id", "name", "status", "created_at", "updated_at"}))

	role, err := repo.FindByIDForUpdate(context.Background(), roleID)
	require.NoError(t, err)
	assert.Equal(t, roleID, role.ID)
	assert.Empty(t, role.Permissions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create_UnknownRole(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	roleID := uuid.New()

	mock.ExpectExec(`INSERT INTO "accounts"`).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_accounts_role"})

	err := repo.Create(context.Background(), &entity.Account{
		ID:     uuid.New(),
		Kind:   entity.AccountKindUser,
		Email:  "staff@winespa.com",
		Status: entity.StatusActive,
		RoleID: &roleID,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPermissionRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPermissionRepository(db)

	mock.ExpectExec(`INSERT INTO "permissions"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), &entity.Permission{ID: uuid.New(), Name: "Ver Dashboard", Status: entity.StatusActive})
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionAlreadyExists))
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicate))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAbsenceRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAbsenceRepository(db)

	mock.ExpectExec(`INSERT INTO "absences"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), &entity.Absence{
		ID:           uuid.New(),
		ManicuristID: uuid.New(),
		Date:         time.Now().AddDate(0, 0, 1),
		Kind:         entity.AbsenceKindAbsent,
		Type:         entity.AbsenceTypeFull,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrAbsenceAlreadyExists))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Execute(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "accounts" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
			return factory.NewAccountRepository().UpdateCredential(context.Background(), &entity.Account{ID: uuid.New()})
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns the callback error", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)
		cause := domainerrors.ErrInvalidCredentials

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			return cause
		})
		assert.True(t, errors.Is(err, cause))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

		err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error { return nil })
		assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
	})
}

func TestRedactSecrets(t *testing.T) {
	hash := "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"
	sql := `UPDATE "accounts" SET "secret_hash"='` + hash + `' WHERE "id" = 'x'`

	redacted := redactSecrets(sql)
	assert.NotContains(t, redacted, hash)
	assert.Contains(t, redacted, redactedSecret)
	assert.Equal(t, "SELECT 1", redactSecrets("SELECT 1"))
}
