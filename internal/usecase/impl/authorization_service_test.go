package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/errors"
	mockRepo "winespa/internal/mocks/repository"
)

func TestAuthorizationService_AccountHasPermission(t *testing.T) {
	roleID := uuid.New()

	activeRole := func(t *testing.T) *entity.Role {
		role := mustRole(t, "Editor", mustPermission(t, "Ver Dashboard"))
		role.ID = roleID

		return role
	}

	tests := []struct {
		name       string
		account    func() *entity.Account
		role       func(t *testing.T) *entity.Role
		roleErr    error
		permission string
		want       bool
	}{
		{
			name:       "active role with active permission",
			account:    func() *entity.Account { return &entity.Account{Status: entity.StatusActive, RoleID: &roleID} },
			role:       activeRole,
			permission: "Ver Dashboard",
			want:       true,
		},
		{
			name:       "permission not in role",
			account:    func() *entity.Account { return &entity.Account{Status: entity.StatusActive, RoleID: &roleID} },
			role:       activeRole,
			permission: "Eliminar Clientes",
			want:       false,
		},
		{
			name:    "inactive role",
			account: func() *entity.Account { return &entity.Account{Status: entity.StatusActive, RoleID: &roleID} },
			role: func(t *testing.T) *entity.Role {
				role := activeRole(t)
				require.NoError(t, role.SetStatus(entity.StatusInactive))

				return role
			},
			permission: "Ver Dashboard",
			want:       false,
		},
		{
			name:    "inactive permission",
			account: func() *entity.Account { return &entity.Account{Status: entity.StatusActive, RoleID: &roleID} },
			role: func(t *testing.T) *entity.Role {
				role := activeRole(t)
				require.NoError(t, role.Permissions[0].SetStatus(entity.StatusInactive))

				return role
			},
			permission: "Ver Dashboard",
			want:       false,
		},
		{
			name:       "role deleted underneath the account",
			account:    func() *entity.Account { return &entity.Account{Status: entity.StatusActive, RoleID: &roleID} },
			roleErr:    domainerrors.ErrRoleNotFound,
			permission: "Ver Dashboard",
			want:       false,
		},
		{
			name:       "no role",
			account:    func() *entity.Account { return &entity.Account{Status: entity.StatusActive} },
			permission: "Ver Dashboard",
			want:       false,
		},
		{
			name:       "inactive account",
			account:    func() *entity.Account { return &entity.Account{Status: entity.StatusInactive, RoleID: &roleID} },
			permission: "Ver Dashboard",
			want:       false,
		},
		{
			name: "active superuser",
			account: func() *entity.Account {
				return &entity.Account{Status: entity.StatusActive, Kind: entity.AccountKindUser, IsSuperuser: true}
			},
			permission: "Eliminar Clientes",
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountRepo := mockRepo.NewMockAccountRepository(t)
			roleRepo := mockRepo.NewMockRoleRepository(t)
			srv := NewAuthorizationService(AuthorizationServiceParams{
				AccountRepo: accountRepo,
				RoleRepo:    roleRepo,
				Logger:      newDiscardLogger(),
			})
			ctx := context.Background()

			account := tt.account()
			account.ID = uuid.New()
			accountRepo.On("FindByID", ctx, account.ID).Return(account, nil).Once()
			switch {
			case tt.roleErr != nil:
				roleRepo.On("FindByID", ctx, roleID).Return(nil, tt.roleErr).Once()
			case tt.role != nil:
				roleRepo.On("FindByID", ctx, roleID).Return(tt.role(t), nil).Once()
			}

			got, err := srv.AccountHasPermission(ctx, account.ID, tt.permission)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorizationService_UnknownAccount(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	srv := NewAuthorizationService(AuthorizationServiceParams{
		AccountRepo: accountRepo,
		RoleRepo:    mockRepo.NewMockRoleRepository(t),
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()
	id := uuid.New()

	accountRepo.On("FindByID", ctx, id).Return(nil, domainerrors.ErrAccountNotFound).Once()

	_, err := srv.AccountHasPermission(ctx, id, "Ver Dashboard")

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAuthorizationService_AccountIsSuperuser(t *testing.T) {
	tests := []struct {
		name    string
		account *entity.Account
		want    bool
	}{
		{name: "active superuser", account: &entity.Account{Status: entity.StatusActive, IsSuperuser: true}, want: true},
		{name: "inactive superuser", account: &entity.Account{Status: entity.StatusInactive, IsSuperuser: true}, want: false},
		{name: "staff only", account: &entity.Account{Status: entity.StatusActive, IsStaff: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountRepo := mockRepo.NewMockAccountRepository(t)
			srv := NewAuthorizationService(AuthorizationServiceParams{
				AccountRepo: accountRepo,
				RoleRepo:    mockRepo.NewMockRoleRepository(t),
				Logger:      newDiscardLogger(),
			})
			ctx := context.Background()
			tt.account.ID = uuid.New()
			accountRepo.On("FindByID", ctx, tt.account.ID).Return(tt.account, nil).Once()

			got, err := srv.AccountIsSuperuser(ctx, tt.account.ID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorizationService_MustChangePassword(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	srv := NewAuthorizationService(AuthorizationServiceParams{
		AccountRepo: accountRepo,
		RoleRepo:    mockRepo.NewMockRoleRepository(t),
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()

	reset := &entity.Account{ID: uuid.New(), Status: entity.StatusActive, Credential: entity.Credential{MustChange: true}}
	settled := &entity.Account{ID: uuid.New(), Status: entity.StatusActive}
	accountRepo.On("FindByID", ctx, reset.ID).Return(reset, nil).Once()
	accountRepo.On("FindByID", ctx, settled.ID).Return(settled, nil).Once()

	got, err := srv.MustChangePassword(ctx, reset.ID)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = srv.MustChangePassword(ctx, settled.ID)
	require.NoError(t, err)
	assert.False(t, got)
}
