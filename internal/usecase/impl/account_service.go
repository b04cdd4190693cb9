// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"winespa/config"
	deliverycontext "winespa/internal/delivery/context"
	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/repository"
	"winespa/internal/domain/service"
	"winespa/internal/errors"
	"winespa/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	policy      service.PasswordPolicy
	generator   service.SecretGenerator
	notifier    service.CredentialNotifier
	publisher   service.EventPublisher
	uniqueScope string
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Policy      service.PasswordPolicy
	Generator   service.SecretGenerator
	Notifier    service.CredentialNotifier
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		policy:      params.Policy,
		generator:   params.Generator,
		notifier:    params.Notifier,
		publisher:   params.Publisher,
		uniqueScope: params.Config.UniqueScope(),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register opens an account with a password chosen by its holder. The change-required flag starts cleared.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterAccountInput) (*usecase.AccountOutput, error) {
	account, err := entity.NewAccount(input.AccountParams, false)
	if err != nil {
		return nil, err
	}

	// Hash before opening the transaction.
	credential, err := entity.NewPermanentCredential(srv.policy, srv.hasher, input.Password)
	if err != nil {
		return nil, err
	}
	account.ReplaceCredential(credential)

	if err := srv.create(ctx, account); err != nil {
		srv.log(ctx).Warn("Failed to register account", slog.String("kind", account.Kind.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register account")
	}

	srv.log(ctx).Info("Account registered", slog.String("account_id", account.ID.String()), slog.String("kind", account.Kind.String()))
	srv.publish(ctx, service.EventAccountCreated, account)

	return &usecase.AccountOutput{Account: account}, nil
}

// CreateWithTemporaryPassword opens an account with a generated password that must be changed on first use.
// The plaintext is mailed once; a failed delivery is reported, not retried.
func (srv *accountService) CreateWithTemporaryPassword(ctx context.Context, input *usecase.CreateAccountInput) (*usecase.TemporaryPasswordOutput, error) {
	account, err := entity.NewAccount(input.AccountParams, true)
	if err != nil {
		return nil, err
	}

	plaintext, credential, err := entity.NewTemporaryCredential(srv.generator, srv.hasher)
	if err != nil {
		return nil, err
	}
	account.ReplaceCredential(credential)

	if err := srv.create(ctx, account); err != nil {
		srv.log(ctx).Warn("Failed to create account", slog.String("kind", account.Kind.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created with temporary password", slog.String("account_id", account.ID.String()), slog.String("kind", account.Kind.String()))
	srv.publish(ctx, service.EventAccountCreated, account)

	return &usecase.TemporaryPasswordOutput{
		Account:   account,
		Delivered: srv.deliverTemporaryPassword(ctx, account, plaintext),
	}, nil
}

func (srv *accountService) create(ctx context.Context, account *entity.Account) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		if err := srv.ensureUnique(ctx, accountRepo, account); err != nil {
			return err
		}
		if account.RoleID != nil {
			if _, err := repoFactory.NewRoleRepository().FindByIDForUpdate(ctx, *account.RoleID); err != nil {
				return err
			}
		}

		return accountRepo.Create(ctx, account)
	})
}

// ensureUnique checks email and document against the configured uniqueness scope.
// The database enforces per-kind uniqueness as well; this check adds the global scope and friendlier errors.
func (srv *accountService) ensureUnique(ctx context.Context, accountRepo repository.AccountRepository, account *entity.Account) error {
	scope := repository.UniqueScope{ExcludeID: account.ID}
	if srv.uniqueScope == config.UniqueScopeKind {
		scope.Kind = account.Kind
	}

	exists, err := accountRepo.ExistsByEmail(ctx, account.Email, scope)
	if err != nil {
		return err
	}
	if exists {
		return domainerrors.ErrAccountAlreadyExists.WithDetails("email already registered")
	}

	exists, err = accountRepo.ExistsByDocument(ctx, account.DocumentType, account.DocumentNumber, scope)
	if err != nil {
		return err
	}
	if exists {
		return domainerrors.ErrAccountAlreadyExists.WithDetails("document already registered")
	}

	return nil
}

// IssueTemporaryPassword replaces the account's credential with a fresh temporary one and mails it.
// The secret is hashed before the row lock is taken; the lock only covers the read-modify-write.
func (srv *accountService) IssueTemporaryPassword(ctx context.Context, accountID uuid.UUID) (*usecase.TemporaryPasswordOutput, error) {
	plaintext, credential, err := entity.NewTemporaryCredential(srv.generator, srv.hasher)
	if err != nil {
		return nil, err
	}

	var account *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		locked, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if !locked.IsActive() {
			return domainerrors.ErrAccountInactive
		}

		locked.ReplaceCredential(credential)
		if err := accountRepo.UpdateCredential(ctx, locked); err != nil {
			return err
		}

		account = locked

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to issue temporary password", slog.String("account_id", accountID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue temporary password")
	}

	srv.log(ctx).Info("Temporary password issued", slog.String("account_id", account.ID.String()))
	srv.publish(ctx, service.EventTemporaryPasswordIssued, account)

	return &usecase.TemporaryPasswordOutput{
		Account:   account,
		Delivered: srv.deliverTemporaryPassword(ctx, account, plaintext),
	}, nil
}

// deliverTemporaryPassword makes exactly one delivery attempt.
func (srv *accountService) deliverTemporaryPassword(ctx context.Context, account *entity.Account, plaintext string) bool {
	if err := srv.notifier.SendTemporaryPassword(ctx, account.Email, account.FullName, plaintext); err != nil {
		srv.log(ctx).Error("Temporary password not delivered; issue a new one to retry",
			slog.String("account_id", account.ID.String()),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// VerifyPassword checks a candidate against the account's current password.
func (srv *accountService) VerifyPassword(ctx context.Context, accountID uuid.UUID, candidate string) (bool, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return false, errors.Wrap(err, "failed to find account")
	}

	return account.VerifyPermanentPassword(srv.hasher, candidate), nil
}

// ChangePassword verifies the current password and installs a permanent one, clearing the change-required flag.
func (srv *accountService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	account, err := srv.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return errors.Wrap(err, "failed to find account")
	}
	if !account.VerifyPermanentPassword(srv.hasher, input.CurrentPassword) {
		return domainerrors.ErrInvalidCredentials
	}
	if input.NewPassword == input.CurrentPassword {
		return domainerrors.ErrWeakSecret.WithDetails("new password must differ from the current one")
	}

	credential, err := entity.NewPermanentCredential(srv.policy, srv.hasher, input.NewPassword)
	if err != nil {
		return err
	}

	var changed *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		locked, err := accountRepo.FindByIDForUpdate(ctx, input.AccountID)
		if err != nil {
			return err
		}
		// The current password was verified against this hash; anything else means a concurrent change won.
		if locked.Credential.SecretHash != account.Credential.SecretHash {
			return domainerrors.ErrInvalidCredentials.WithDetails("password changed concurrently")
		}

		locked.ReplaceCredential(credential)
		if err := accountRepo.UpdateCredential(ctx, locked); err != nil {
			return err
		}

		changed = locked

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to change password", slog.String("account_id", input.AccountID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to change password")
	}

	srv.log(ctx).Info("Password changed", slog.String("account_id", changed.ID.String()))
	srv.publish(ctx, service.EventPasswordChanged, changed)

	return nil
}

// Get returns one account.
func (srv *accountService) Get(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// List returns accounts matching the filter.
func (srv *accountService) List(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	if filter.Kind != "" && !filter.Kind.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown account kind: " + filter.Kind.String())
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown status: " + filter.Status.String())
	}

	accounts, err := srv.accountRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// UpdateProfile edits identity and profile fields. The credential is never touched here.
func (srv *accountService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.AccountOutput, error) {
	account, err := srv.modify(ctx, input.AccountID, func(repoFactory repository.RepositoryFactory, account *entity.Account) error {
		if err := account.ApplyProfile(input.ProfileChanges); err != nil {
			return err
		}

		return srv.ensureUnique(ctx, repoFactory.NewAccountRepository(), account)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update account profile")
	}

	return &usecase.AccountOutput{Account: account}, nil
}

// SetStatus activates or deactivates the account. Accounts are never deleted.
func (srv *accountService) SetStatus(ctx context.Context, accountID uuid.UUID, status entity.Status) (*usecase.AccountOutput, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown status: " + status.String())
	}

	account, err := srv.modify(ctx, accountID, func(_ repository.RepositoryFactory, account *entity.Account) error {
		if status == entity.StatusActive {
			account.Activate()
		} else {
			account.Deactivate()
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change account status")
	}

	srv.log(ctx).Info("Account status changed", slog.String("account_id", accountID.String()), slog.String("status", status.String()))
	srv.publish(ctx, service.EventAccountStatusChanged, account)

	return &usecase.AccountOutput{Account: account}, nil
}

// AssignRole sets the account's role; a nil roleID removes it.
func (srv *accountService) AssignRole(ctx context.Context, accountID uuid.UUID, roleID *uuid.UUID) (*usecase.AccountOutput, error) {
	account, err := srv.modify(ctx, accountID, func(repoFactory repository.RepositoryFactory, account *entity.Account) error {
		if roleID != nil {
			if _, err := repoFactory.NewRoleRepository().FindByIDForUpdate(ctx, *roleID); err != nil {
				return err
			}
		}
		account.AssignRole(roleID)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to assign role")
	}

	return &usecase.AccountOutput{Account: account}, nil
}

// modify loads the account inside a transaction, applies fn and writes the non-credential fields back.
func (srv *accountService) modify(
	ctx context.Context,
	accountID uuid.UUID,
	fn func(repoFactory repository.RepositoryFactory, account *entity.Account) error,
) (*entity.Account, error) {
	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		found, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if err := fn(repoFactory, found); err != nil {
			return err
		}
		if err := accountRepo.Update(ctx, found); err != nil {
			return err
		}

		account = found

		return nil
	})

	return account, err
}

func (srv *accountService) publish(ctx context.Context, eventType service.AccountEventType, account *entity.Account) {
	publishEvent(ctx, srv.publisher, srv.log(ctx), newAccountEvent(ctx, eventType, account))
}
