package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "winespa/internal/delivery/context"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/repository"
	"winespa/internal/domain/service"
	"winespa/internal/errors"
	"winespa/internal/usecase"
)

// unknownAccountHash is a well-formed bcrypt hash at the default cost that matches no password.
// Checking against it makes a login for an unknown email cost as much as one with a wrong password.
const unknownAccountHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates with the temporary or permanent password, whichever is in force.
// Unknown emails and wrong passwords fail identically.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown account kind: " + input.Kind.String())
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Kind, input.Email)
	if errors.Is(err, domainerrors.ErrAccountNotFound) {
		srv.hasher.Check(input.Password, unknownAccountHash)
		srv.log(ctx).Info("Login rejected", slog.String("kind", input.Kind.String()), slog.String("reason", "unknown email"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	if !account.VerifyPermanentPassword(srv.hasher, input.Password) {
		srv.log(ctx).Info("Login rejected", slog.String("account_id", account.ID.String()), slog.String("reason", "wrong password"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !account.IsActive() {
		return nil, domainerrors.ErrAccountInactive
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(service.TokenSubject{
		AccountID:  account.ID,
		Kind:       account.Kind.String(),
		RoleID:     account.RoleID,
		MustChange: account.MustChangePassword(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Login succeeded",
		slog.String("account_id", account.ID.String()),
		slog.Bool("must_change_password", account.MustChangePassword()),
	)

	return &usecase.LoginOutput{
		AccessToken:        token,
		ExpiresAt:          expiresAt,
		MustChangePassword: account.MustChangePassword(),
		Account:            account,
	}, nil
}
