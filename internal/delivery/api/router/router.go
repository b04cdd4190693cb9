// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"winespa/internal/delivery/api/middleware"
	"winespa/internal/delivery/api/router/handler"
	"winespa/internal/domain/constants"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	AccountHandler *handler.AccountHandler
	RoleHandler    *handler.RoleHandler
	AbsenceHandler *handler.AbsenceHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	accountHandler *handler.AccountHandler
	roleHandler    *handler.RoleHandler
	absenceHandler *handler.AbsenceHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		accountHandler: params.AccountHandler,
		roleHandler:    params.RoleHandler,
		absenceHandler: params.AbsenceHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/register", r.sessionHandler.RegisterClient)
	}

	// Reachable with a temporary password.
	meGroup := e.Group("/me", r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.sessionHandler.Me)
		meGroup.PUT("/password", r.sessionHandler.ChangePassword)
	}

	apiV1 := e.Group("/api/v1", r.authMiddleware.Authenticate, r.authMiddleware.RequirePasswordChanged)
	require := r.authMiddleware.RequirePermission

	accountsGroup := apiV1.Group("/accounts")
	{
		accountsGroup.POST("", r.accountHandler.Create, require(constants.PermissionCreateAccounts))
		accountsGroup.GET("", r.accountHandler.List, require(constants.PermissionViewAccounts))
		accountsGroup.GET("/:id", r.accountHandler.Get, require(constants.PermissionViewAccounts))
		accountsGroup.PATCH("/:id", r.accountHandler.UpdateProfile, require(constants.PermissionEditAccounts))
		accountsGroup.PUT("/:id/status", r.accountHandler.SetStatus, require(constants.PermissionEditAccounts))
		accountsGroup.PUT("/:id/role", r.accountHandler.AssignRole, require(constants.PermissionManageRoles))
		accountsGroup.POST("/:id/temporary-password", r.accountHandler.IssueTemporaryPassword, require(constants.PermissionResetPasswords))
		accountsGroup.GET("/:id/absences", r.absenceHandler.ListUpcoming, require(constants.PermissionManageAbsences))
	}

	rolesGroup := apiV1.Group("/roles", require(constants.PermissionManageRoles))
	{
		rolesGroup.POST("", r.roleHandler.CreateRole)
		rolesGroup.GET("", r.roleHandler.ListRoles)
		rolesGroup.GET("/:id", r.roleHandler.GetRole)
		rolesGroup.PUT("/:id/status", r.roleHandler.SetRoleStatus)
		rolesGroup.DELETE("/:id", r.roleHandler.DeleteRole)
		rolesGroup.GET("/:id/permissions", r.roleHandler.RolePermissions)
		rolesGroup.PUT("/:id/permissions/:permissionId", r.roleHandler.AddPermission)
		rolesGroup.DELETE("/:id/permissions/:permissionId", r.roleHandler.RemovePermission)
	}

	permissionsGroup := apiV1.Group("/permissions", require(constants.PermissionManageRoles))
	{
		permissionsGroup.POST("", r.roleHandler.CreatePermission)
		permissionsGroup.GET("", r.roleHandler.ListPermissions)
		permissionsGroup.PUT("/:id/status", r.roleHandler.SetPermissionStatus)
	}

	absencesGroup := apiV1.Group("/absences", require(constants.PermissionManageAbsences))
	{
		absencesGroup.POST("", r.absenceHandler.Record)
		absencesGroup.DELETE("/:id", r.absenceHandler.Cancel)
	}
}
