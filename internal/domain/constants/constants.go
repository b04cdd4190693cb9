// Package constants holds values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Headers
const (
	HeaderRequestID = "X-Request-Id"
)

// Permission names checked by the API. They are seeded as rows and granted through roles.
const (
	PermissionViewDashboard  = "Ver Dashboard"
	PermissionViewAccounts   = "Ver Cuentas"
	PermissionCreateAccounts = "Crear Cuentas"
	PermissionEditAccounts   = "Editar Cuentas"
	PermissionResetPasswords = "Restablecer Contraseñas"
	PermissionManageRoles    = "Gestionar Roles"
	PermissionManageAbsences = "Gestionar Novedades"
)
