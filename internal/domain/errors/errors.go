package errors

import (
	"net/http"

	"winespa/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	kind      *BaseError
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// newKindError creates an error that also matches the given category with errors.Is.
func newKindError(kind *BaseError, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  kind.httpCode,
		errorCode: errorCode,
		message:   message,
		kind:      kind,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is lets specific errors match their category, e.g. ErrAccountNotFound matches ErrNotFound.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}
	if e.errorCode == t.errorCode {
		return true
	}

	return e.kind != nil && e.kind.Is(t)
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		kind:      e.kind,
	}
}

// Error categories
var (
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Datos de entrada inválidos",
		"",
	)

	ErrWeakSecret = NewBaseError(
		http.StatusBadRequest,
		"WEAK_SECRET",
		"La contraseña no cumple la política de seguridad",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No se encontró el recurso",
		"",
	)

	ErrDuplicate = NewBaseError(
		http.StatusConflict,
		"DUPLICATE",
		"El recurso ya existe",
		"",
	)
)

// Specific errors
var (
	ErrAccountNotFound    = newKindError(ErrNotFound, "ACCOUNT_NOT_FOUND", "No se encontró la cuenta")
	ErrRoleNotFound       = newKindError(ErrNotFound, "ROLE_NOT_FOUND", "No se encontró el rol")
	ErrPermissionNotFound = newKindError(ErrNotFound, "PERMISSION_NOT_FOUND", "No se encontró el permiso")
	ErrAbsenceNotFound    = newKindError(ErrNotFound, "ABSENCE_NOT_FOUND", "No se encontró la novedad")

	ErrAccountAlreadyExists    = newKindError(ErrDuplicate, "ACCOUNT_ALREADY_EXISTS", "Ya existe una cuenta con ese correo o documento")
	ErrRoleAlreadyExists       = newKindError(ErrDuplicate, "ROLE_ALREADY_EXISTS", "Ya existe un rol con ese nombre")
	ErrPermissionAlreadyExists = newKindError(ErrDuplicate, "PERMISSION_ALREADY_EXISTS", "Ya existe un permiso con ese nombre")
	ErrAbsenceAlreadyExists    = newKindError(ErrDuplicate, "ABSENCE_ALREADY_EXISTS", "La manicurista ya tiene una novedad para esa fecha")

	ErrValidationFailed = newKindError(ErrInvalidInput, "VALIDATION_FAILED", "La validación de los datos falló")

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Correo o contraseña incorrectos",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_INACTIVE",
		"La cuenta está inactiva",
		"",
	)

	ErrPasswordChangeRequired = NewBaseError(
		http.StatusForbidden,
		"PASSWORD_CHANGE_REQUIRED",
		"Debe cambiar la contraseña temporal antes de continuar",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error al procesar la contraseña",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token inválido o expirado",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falló la transacción en la base de datos",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Falló la ejecución en la base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
