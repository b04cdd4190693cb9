package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"winespa/internal/delivery/api/response"
	deliverycontext "winespa/internal/delivery/context"
	"winespa/internal/domain/constants"
	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/repository"
	"winespa/internal/usecase"
)

const maxListLimit = 100

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	AuthzUC   usecase.AuthorizationUsecase
}

// AccountHandler serves back-office account management.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	authzUC   usecase.AuthorizationUsecase
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		authzUC:   params.AuthzUC,
	}
}

// CreateAccountRequest opens an account of any kind with a mailed temporary password.
type CreateAccountRequest struct {
	Kind           string     `json:"kind" validate:"required,account_kind"`
	DocumentType   string     `json:"document_type" validate:"required,document_type"`
	DocumentNumber string     `json:"document_number" validate:"required,max=20"`
	FullName       string     `json:"full_name" validate:"required,max=150"`
	Phone          string     `json:"phone" validate:"required,max=20"`
	Email          string     `json:"email" validate:"required,email,max=254"`
	RoleID         *uuid.UUID `json:"role_id"`
	Address        string     `json:"address" validate:"max=255"`
	Gender         string     `json:"gender" validate:"max=20"`
	Specialty      string     `json:"specialty" validate:"max=100"`
	IsStaff        bool       `json:"is_staff"`
	IsSuperuser    bool       `json:"is_superuser"`
}

// TemporaryPasswordResponse reports whether the mailed password reached the mail server.
type TemporaryPasswordResponse struct {
	Account   *AccountResponse `json:"account"`
	Delivered bool             `json:"delivered"`
}

// ListAccountsRequest holds the list filters.
type ListAccountsRequest struct {
	Kind   string `query:"kind" validate:"omitempty,account_kind"`
	Status string `query:"status" validate:"omitempty,status"`
	RoleID string `query:"role_id" validate:"omitempty,uuid"`
	Limit  int    `query:"limit" validate:"gte=0,lte=100"`
	Offset int    `query:"offset" validate:"gte=0"`
}

// UpdateProfileRequest edits identity and profile fields; omitted fields stay unchanged.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" validate:"omitempty,max=150"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Email     *string `json:"email" validate:"omitempty,email,max=254"`
	Address   *string `json:"address" validate:"omitempty,max=255"`
	Gender    *string `json:"gender" validate:"omitempty,max=20"`
	Specialty *string `json:"specialty" validate:"omitempty,max=100"`
	Available *bool   `json:"available"`
}

// AssignRoleRequest sets the account's role; a null role_id clears it.
type AssignRoleRequest struct {
	RoleID *uuid.UUID `json:"role_id"`
}

// Create opens an account and mails its temporary password.
func (h *AccountHandler) Create(c echo.Context) error {
	var req CreateAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.authorizeGrants(c, &req); err != nil {
		return err
	}

	out, err := h.accountUC.CreateWithTemporaryPassword(c.Request().Context(), &usecase.CreateAccountInput{
		AccountParams: entity.AccountParams{
			Kind:           entity.AccountKind(req.Kind),
			DocumentType:   entity.DocumentType(req.DocumentType),
			DocumentNumber: req.DocumentNumber,
			FullName:       req.FullName,
			Phone:          req.Phone,
			Email:          req.Email,
			RoleID:         req.RoleID,
			Address:        req.Address,
			Gender:         req.Gender,
			Specialty:      req.Specialty,
			IsStaff:        req.IsStaff,
			IsSuperuser:    req.IsSuperuser,
		},
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, &TemporaryPasswordResponse{
		Account:   toAccountResponse(out.Account),
		Delivered: out.Delivered,
	})
}

// authorizeGrants stops the caller from handing out more than it holds.
// Staff and superuser flags need a superuser; a role needs the role-management permission.
func (h *AccountHandler) authorizeGrants(c echo.Context, req *CreateAccountRequest) error {
	if !req.IsStaff && !req.IsSuperuser && req.RoleID == nil {
		return nil
	}

	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}
	ctx := c.Request().Context()

	if req.IsStaff || req.IsSuperuser {
		superuser, err := h.authzUC.AccountIsSuperuser(ctx, claims.AccountID)
		if err != nil {
			return err
		}
		if !superuser {
			return domainerrors.ErrForbidden.WithDetails("only superusers grant staff or superuser access")
		}
	}

	if req.RoleID != nil {
		allowed, err := h.authzUC.AccountHasPermission(ctx, claims.AccountID, constants.PermissionManageRoles)
		if err != nil {
			return err
		}
		if !allowed {
			return domainerrors.ErrForbidden.WithDetails("missing permission: " + constants.PermissionManageRoles)
		}
	}

	return nil
}

// List returns accounts matching the query filters.
func (h *AccountHandler) List(c echo.Context) error {
	var req ListAccountsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Limit == 0 {
		req.Limit = maxListLimit
	}

	filter := repository.AccountFilter{
		Kind:   entity.AccountKind(req.Kind),
		Status: entity.Status(req.Status),
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if req.RoleID != "" {
		roleID := uuid.MustParse(req.RoleID)
		filter.RoleID = &roleID
	}

	accounts, err := h.accountUC.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toAccountResponses(accounts))
}

// Get returns one account.
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	account, err := h.accountUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// UpdateProfile edits an account's identity and profile fields.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.accountUC.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		AccountID: id,
		ProfileChanges: entity.ProfileChanges{
			FullName:  req.FullName,
			Phone:     req.Phone,
			Email:     req.Email,
			Address:   req.Address,
			Gender:    req.Gender,
			Specialty: req.Specialty,
			Available: req.Available,
		},
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toAccountResponse(out.Account))
}

// SetStatus activates or deactivates an account.
func (h *AccountHandler) SetStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.accountUC.SetStatus(c.Request().Context(), id, entity.Status(req.Status))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toAccountResponse(out.Account))
}

// AssignRole sets or clears the account's role.
func (h *AccountHandler) AssignRole(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req AssignRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.accountUC.AssignRole(c.Request().Context(), id, req.RoleID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toAccountResponse(out.Account))
}

// IssueTemporaryPassword replaces the account's password with a mailed temporary one.
// A failed delivery is reported; the caller issues a new one to retry.
func (h *AccountHandler) IssueTemporaryPassword(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	out, err := h.accountUC.IssueTemporaryPassword(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &TemporaryPasswordResponse{
		Account:   toAccountResponse(out.Account),
		Delivered: out.Delivered,
	})
}
