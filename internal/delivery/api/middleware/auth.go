package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	deliverycontext "winespa/internal/delivery/context"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/service"
	"winespa/internal/usecase"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates access tokens and enforces permissions.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authzUC  usecase.AuthorizationUsecase
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	AuthzUC      usecase.AuthorizationUsecase
	Logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		authzUC:  params.AuthzUC,
		logger:   params.Logger,
	}
}

// Authenticate validates the bearer access token and stores its claims in the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return err
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequirePasswordChanged blocks holders of a temporary password until they set a permanent one.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequirePasswordChanged(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := deliverycontext.GetClaims(c)
		if !ok {
			return domainerrors.ErrTokenInvalid
		}
		if claims.MustChange {
			return domainerrors.ErrPasswordChangeRequired
		}

		// A temporary password issued after this token was signed still applies.
		mustChange, err := m.authzUC.MustChangePassword(c.Request().Context(), claims.AccountID)
		if err != nil {
			return err
		}
		if mustChange {
			return domainerrors.ErrPasswordChangeRequired
		}

		return next(c)
	}
}

// RequirePermission checks the account's role against the named permission on every request,
// so role and permission status changes apply without waiting for token expiry.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := deliverycontext.GetClaims(c)
			if !ok {
				return domainerrors.ErrTokenInvalid
			}

			ctx := c.Request().Context()
			allowed, err := m.authzUC.AccountHasPermission(ctx, claims.AccountID, permission)
			if err != nil {
				return err
			}
			if !allowed {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Permission denied",
					slog.String("account_id", claims.AccountID.String()),
					slog.String("permission", permission),
				)

				return domainerrors.ErrForbidden.WithDetails("missing permission: " + permission)
			}

			return next(c)
		}
	}
}
