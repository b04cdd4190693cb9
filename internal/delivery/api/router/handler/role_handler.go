package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"winespa/internal/delivery/api/response"
	"winespa/internal/domain/entity"
	"winespa/internal/usecase"
)

// RoleHandlerParams holds dependencies for RoleHandler, injected by Fx.
type RoleHandlerParams struct {
	fx.In

	RoleUC usecase.RoleUsecase
}

// RoleHandler serves roles, permissions and their memberships.
type RoleHandler struct {
	roleUC usecase.RoleUsecase
}

// NewRoleHandler is the constructor for RoleHandler
func NewRoleHandler(params RoleHandlerParams) *RoleHandler {
	return &RoleHandler{roleUC: params.RoleUC}
}

// NameRequest creates a role or a permission.
type NameRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// MembershipResponse reports whether a membership call changed anything.
type MembershipResponse struct {
	Changed bool `json:"changed"`
}

func (h *RoleHandler) CreateRole(c echo.Context) error {
	var req NameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, err := h.roleUC.CreateRole(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toRoleResponse(role))
}

func (h *RoleHandler) ListRoles(c echo.Context) error {
	roles, err := h.roleUC.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]*RoleResponse, len(roles))
	for i, role := range roles {
		resp[i] = toRoleResponse(role)
	}

	return response.Success(c, http.StatusOK, resp)
}

func (h *RoleHandler) GetRole(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	role, err := h.roleUC.GetRole(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toRoleResponse(role))
}

func (h *RoleHandler) SetRoleStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, err := h.roleUC.SetRoleStatus(c.Request().Context(), id, entity.Status(req.Status))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toRoleResponse(role))
}

func (h *RoleHandler) DeleteRole(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.roleUC.DeleteRole(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *RoleHandler) RolePermissions(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	permissions, err := h.roleUC.RolePermissions(c.Request().Context(), id)
	if err != nil {
		return err
	}

	resp := make([]PermissionResponse, len(permissions))
	for i := range permissions {
		resp[i] = toPermissionResponse(&permissions[i])
	}

	return response.Success(c, http.StatusOK, resp)
}

// AddPermission grants a permission to the role. Repeating the call is harmless.
func (h *RoleHandler) AddPermission(c echo.Context) error {
	return h.changeMembership(c, h.roleUC.AddPermission)
}

// RemovePermission revokes a permission from this role only.
func (h *RoleHandler) RemovePermission(c echo.Context) error {
	return h.changeMembership(c, h.roleUC.RemovePermission)
}

func (h *RoleHandler) changeMembership(c echo.Context, change func(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error)) error {
	roleID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	permissionID, err := pathUUID(c, "permissionId")
	if err != nil {
		return err
	}

	changed, err := change(c.Request().Context(), roleID, permissionID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &MembershipResponse{Changed: changed})
}

func (h *RoleHandler) CreatePermission(c echo.Context) error {
	var req NameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	permission, err := h.roleUC.CreatePermission(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toPermissionResponse(permission))
}

func (h *RoleHandler) ListPermissions(c echo.Context) error {
	permissions, err := h.roleUC.ListPermissions(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]PermissionResponse, len(permissions))
	for i, permission := range permissions {
		resp[i] = toPermissionResponse(permission)
	}

	return response.Success(c, http.StatusOK, resp)
}

func (h *RoleHandler) SetPermissionStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	permission, err := h.roleUC.SetPermissionStatus(c.Request().Context(), id, entity.Status(req.Status))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toPermissionResponse(permission))
}
