package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"winespa/internal/delivery/api/response"
	deliverycontext "winespa/internal/delivery/context"
	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/usecase"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// SessionHandler serves login, self-registration and the holder's own credential.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Kind     string `json:"kind" validate:"required,account_kind"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the access token and whether the password must be changed first.
type LoginResponse struct {
	AccessToken        string           `json:"access_token"`
	TokenType          string           `json:"token_type"`
	ExpiresAt          string           `json:"expires_at"`
	MustChangePassword bool             `json:"must_change_password"`
	Account            *AccountResponse `json:"account"`
}

// RegisterClientRequest represents the body of a client self-registration.
type RegisterClientRequest struct {
	DocumentType   string `json:"document_type" validate:"required,document_type"`
	DocumentNumber string `json:"document_number" validate:"required,max=20"`
	FullName       string `json:"full_name" validate:"required,max=150"`
	Phone          string `json:"phone" validate:"required,max=20"`
	Email          string `json:"email" validate:"required,email,max=254"`
	Password       string `json:"password" validate:"required"`
	Address        string `json:"address" validate:"max=255"`
	Gender         string `json:"gender" validate:"max=20"`
}

// ChangePasswordRequest represents the request body for changing the holder's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// Login exchanges email and password for an access token.
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Kind:     entity.AccountKind(req.Kind),
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AccessToken:        out.AccessToken,
		TokenType:          "Bearer",
		ExpiresAt:          out.ExpiresAt.Format(time.RFC3339),
		MustChangePassword: out.MustChangePassword,
		Account:            toAccountResponse(out.Account),
	})
}

// RegisterClient lets a client open an account with a password of their choosing.
func (h *SessionHandler) RegisterClient(c echo.Context) error {
	var req RegisterClientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterAccountInput{
		AccountParams: entity.AccountParams{
			Kind:           entity.AccountKindClient,
			DocumentType:   entity.DocumentType(req.DocumentType),
			DocumentNumber: req.DocumentNumber,
			FullName:       req.FullName,
			Phone:          req.Phone,
			Email:          req.Email,
			Address:        req.Address,
			Gender:         req.Gender,
		},
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(out.Account))
}

// Me returns the authenticated account.
func (h *SessionHandler) Me(c echo.Context) error {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	account, err := h.accountUC.Get(c.Request().Context(), claims.AccountID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// ChangePassword replaces the holder's temporary or permanent password.
// Reachable with a temporary password so the holder can leave the change-required state.
func (h *SessionHandler) ChangePassword(c echo.Context) error {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		AccountID:       claims.AccountID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
