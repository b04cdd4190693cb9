package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
)

const dateLayout = time.DateOnly

// AccountResponse is the public view of an account. The credential never leaves the service;
// only the change-required flag does.
type AccountResponse struct {
	ID                 string  `json:"id"`
	Kind               string  `json:"kind"`
	DocumentType       string  `json:"document_type"`
	DocumentNumber     string  `json:"document_number"`
	FullName           string  `json:"full_name"`
	FirstName          string  `json:"first_name"`
	LastNames          string  `json:"last_names"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
	Status             string  `json:"status"`
	RoleID             *string `json:"role_id,omitempty"`
	MustChangePassword bool    `json:"must_change_password"`
	Address            string  `json:"address,omitempty"`
	Gender             string  `json:"gender,omitempty"`
	Specialty          string  `json:"specialty,omitempty"`
	Available          *bool   `json:"available,omitempty"`
	IsStaff            bool    `json:"is_staff,omitempty"`
	IsSuperuser        bool    `json:"is_superuser,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

func toAccountResponse(account *entity.Account) *AccountResponse {
	resp := &AccountResponse{
		ID:                 account.ID.String(),
		Kind:               account.Kind.String(),
		DocumentType:       string(account.DocumentType),
		DocumentNumber:     account.DocumentNumber,
		FullName:           account.FullName,
		FirstName:          account.FirstName(),
		LastNames:          account.LastNames(),
		Phone:              account.Phone,
		Email:              account.Email,
		Status:             account.Status.String(),
		MustChangePassword: account.MustChangePassword(),
		Address:            account.Address,
		Gender:             account.Gender,
		Specialty:          account.Specialty,
		IsStaff:            account.IsStaff,
		IsSuperuser:        account.IsSuperuser,
		CreatedAt:          account.CreatedAt.Format(time.RFC3339),
	}
	if account.RoleID != nil {
		roleID := account.RoleID.String()
		resp.RoleID = &roleID
	}
	if account.Kind == entity.AccountKindManicurist {
		available := account.Available
		resp.Available = &available
	}

	return resp
}

func toAccountResponses(accounts []*entity.Account) []*AccountResponse {
	resp := make([]*AccountResponse, len(accounts))
	for i, account := range accounts {
		resp[i] = toAccountResponse(account)
	}

	return resp
}

// PermissionResponse is the public view of a permission.
type PermissionResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func toPermissionResponse(p *entity.Permission) PermissionResponse {
	return PermissionResponse{ID: p.ID.String(), Name: p.Name, Status: p.Status.String()}
}

// RoleResponse is the public view of a role and its permissions.
type RoleResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Status      string               `json:"status"`
	Permissions []PermissionResponse `json:"permissions"`
}

func toRoleResponse(role *entity.Role) *RoleResponse {
	resp := &RoleResponse{
		ID:          role.ID.String(),
		Name:        role.Name,
		Status:      role.Status.String(),
		Permissions: make([]PermissionResponse, len(role.Permissions)),
	}
	for i := range role.Permissions {
		resp.Permissions[i] = toPermissionResponse(&role.Permissions[i])
	}

	return resp
}

// AbsenceResponse is the public view of an absence.
type AbsenceResponse struct {
	ID           string `json:"id"`
	ManicuristID string `json:"manicurist_id"`
	Date         string `json:"date"`
	Kind         string `json:"kind"`
	Type         string `json:"type,omitempty"`
	ArrivalTime  string `json:"arrival_time,omitempty"`
	AbsenceStart string `json:"absence_start,omitempty"`
	AbsenceEnd   string `json:"absence_end,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func toAbsenceResponse(a *entity.Absence) *AbsenceResponse {
	return &AbsenceResponse{
		ID:           a.ID.String(),
		ManicuristID: a.ManicuristID.String(),
		Date:         a.Date.Format(dateLayout),
		Kind:         string(a.Kind),
		Type:         string(a.Type),
		ArrivalTime:  clockString(a.ArrivalTime),
		AbsenceStart: clockString(a.AbsenceStart),
		AbsenceEnd:   clockString(a.AbsenceEnd),
		Notes:        a.Notes,
	}
}

func clockString(c *entity.ClockTime) string {
	if c == nil {
		return ""
	}

	return c.String()
}

// parseClock parses an optional "HH:MM" request field.
func parseClock(value string) (*entity.ClockTime, error) {
	if value == "" {
		return nil, nil
	}

	c, err := entity.ParseClockTime(value)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// pathUUID reads a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetails("invalid " + name)
	}

	return id, nil
}

// bindAndValidate binds the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request")
	}

	return c.Validate(req)
}

// StatusRequest activates or deactivates an account, role or permission.
type StatusRequest struct {
	Status string `json:"status" validate:"required,status"`
}
