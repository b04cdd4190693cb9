// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/service"
)

// AccountKind distinguishes the three kinds of people holding a credential.
type AccountKind string

const (
	AccountKindClient     AccountKind = "client"
	AccountKindManicurist AccountKind = "manicurist"
	AccountKindUser       AccountKind = "user"
)

// String returns the string representation of the AccountKind.
func (k AccountKind) String() string {
	return string(k)
}

// IsValid checks if the AccountKind is a valid value.
func (k AccountKind) IsValid() bool {
	switch k {
	case AccountKindClient, AccountKindManicurist, AccountKindUser:
		return true
	default:
		return false
	}
}

// DocumentType is the kind of identity document an account is registered with.
type DocumentType string

const (
	DocumentCC  DocumentType = "CC"  // Cédula de ciudadanía
	DocumentCE  DocumentType = "CE"  // Cédula de extranjería
	DocumentTI  DocumentType = "TI"  // Tarjeta de identidad
	DocumentPP  DocumentType = "PP"  // Pasaporte
	DocumentNIT DocumentType = "NIT" // Número de identificación tributaria
)

// IsValid checks if the DocumentType is a valid value.
func (d DocumentType) IsValid() bool {
	switch d {
	case DocumentCC, DocumentCE, DocumentTI, DocumentPP, DocumentNIT:
		return true
	default:
		return false
	}
}

// Account is any person that authenticates against the salon: a client, a manicurist
// or a back-office user. Accounts are never deleted, only deactivated.
type Account struct {
	ID             uuid.UUID    // The Global Unique Identifier (GUID) for the account.
	Kind           AccountKind  // client, manicurist or user.
	DocumentType   DocumentType // CC, CE, TI, PP or NIT.
	DocumentNumber string       // Unique together with the kind (or globally, per configuration).
	FullName       string       // Stored as typed; first name and last names are derived on read.
	Phone          string       // Mobile number.
	Email          string       // Login identifier, stored lower-cased.
	Status         Status       // active or inactive.
	Credential     Credential   // The single password slot.
	RoleID         *uuid.UUID   // Optional role granting permissions.

	Address string // Client only.
	Gender  string // Client only.

	Specialty string // Manicurist only.
	Available bool   // Manicurist only; new manicurists start available.

	IsStaff     bool // User only.
	IsSuperuser bool // User only.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountParams holds the identity data needed to open an account.
type AccountParams struct {
	Kind           AccountKind
	DocumentType   DocumentType
	DocumentNumber string
	FullName       string
	Phone          string
	Email          string
	RoleID         *uuid.UUID
	Address        string
	Gender         string
	Specialty      string
	IsStaff        bool
	IsSuperuser    bool
}

// NewAccount validates the identity data and returns an active account without a password.
// mustChange is the initial value of the change-required flag; callers pick it per flow.
func NewAccount(params AccountParams, mustChange bool) (*Account, error) {
	if !params.Kind.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown account kind: " + string(params.Kind))
	}
	if !params.DocumentType.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown document type: " + string(params.DocumentType))
	}

	documentNumber := strings.TrimSpace(params.DocumentNumber)
	if documentNumber == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("document number is required")
	}

	fullName := strings.Join(strings.Fields(params.FullName), " ")
	if fullName == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("full name is required")
	}

	email := NormalizeEmail(params.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("invalid email: " + params.Email)
	}

	now := time.Now().UTC()
	account := &Account{
		ID:             uuid.New(),
		Kind:           params.Kind,
		DocumentType:   params.DocumentType,
		DocumentNumber: documentNumber,
		FullName:       fullName,
		Phone:          strings.TrimSpace(params.Phone),
		Email:          email,
		Status:         StatusActive,
		Credential:     Credential{MustChange: mustChange},
		RoleID:         params.RoleID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	switch params.Kind {
	case AccountKindClient:
		account.Address = params.Address
		account.Gender = params.Gender
	case AccountKindManicurist:
		account.Specialty = params.Specialty
		account.Available = true
	case AccountKindUser:
		account.IsStaff = params.IsStaff || params.IsSuperuser
		account.IsSuperuser = params.IsSuperuser
	}

	return account, nil
}

// NormalizeEmail trims and lower-cases an email so lookups and uniqueness agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FirstName returns the first word of the full name.
func (a *Account) FirstName() string {
	first, _ := splitFullName(a.FullName)

	return first
}

// LastNames returns everything after the first word of the full name, or "".
func (a *Account) LastNames() string {
	_, rest := splitFullName(a.FullName)

	return rest
}

func splitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}

	return parts[0], strings.Join(parts[1:], " ")
}

// IsActive reports whether the account may log in.
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

// Activate re-enables the account.
func (a *Account) Activate() {
	a.setStatus(StatusActive)
}

// Deactivate disables the account. Deactivated manicurists are no longer available.
func (a *Account) Deactivate() {
	a.setStatus(StatusInactive)
	if a.Kind == AccountKindManicurist {
		a.Available = false
	}
}

func (a *Account) setStatus(status Status) {
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
}

// ProfileChanges lists the editable identity and profile fields. Nil entries are left unchanged.
type ProfileChanges struct {
	FullName  *string
	Phone     *string
	Email     *string
	Address   *string // Client only.
	Gender    *string // Client only.
	Specialty *string // Manicurist only.
	Available *bool   // Manicurist only.
}

// ApplyProfile validates and applies the changes. Kind-specific fields are rejected for other kinds.
func (a *Account) ApplyProfile(changes ProfileChanges) error {
	if (changes.Address != nil || changes.Gender != nil) && a.Kind != AccountKindClient {
		return domainerrors.ErrInvalidInput.WithDetails("address and gender only apply to clients")
	}
	if (changes.Specialty != nil || changes.Available != nil) && a.Kind != AccountKindManicurist {
		return domainerrors.ErrInvalidInput.WithDetails("specialty and availability only apply to manicurists")
	}
	if changes.Available != nil && *changes.Available && !a.IsActive() {
		return domainerrors.ErrInvalidInput.WithDetails("an inactive manicurist cannot be available")
	}

	fullName := a.FullName
	if changes.FullName != nil {
		fullName = strings.Join(strings.Fields(*changes.FullName), " ")
		if fullName == "" {
			return domainerrors.ErrInvalidInput.WithDetails("full name is required")
		}
	}

	email := a.Email
	if changes.Email != nil {
		email = NormalizeEmail(*changes.Email)
		if _, err := mail.ParseAddress(email); err != nil {
			return domainerrors.ErrInvalidInput.WithDetails("invalid email: " + *changes.Email)
		}
	}

	a.FullName = fullName
	a.Email = email
	setTrimmed(&a.Phone, changes.Phone)
	setTrimmed(&a.Address, changes.Address)
	setTrimmed(&a.Gender, changes.Gender)
	setTrimmed(&a.Specialty, changes.Specialty)
	if changes.Available != nil {
		a.Available = *changes.Available
	}

	a.UpdatedAt = time.Now().UTC()

	return nil
}

func setTrimmed(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}

// AssignRole sets or, with nil, clears the account's role.
func (a *Account) AssignRole(roleID *uuid.UUID) {
	a.RoleID = roleID
	a.UpdatedAt = time.Now().UTC()
}

// MustChangePassword reports whether a temporary password is in force.
func (a *Account) MustChangePassword() bool {
	return a.Credential.MustChange
}

// SetPermanentPassword stores the hash of plaintext without touching the change-required flag.
// Used when an account is opened with a password chosen by its holder.
func (a *Account) SetPermanentPassword(hasher service.PasswordHasher, plaintext string) error {
	if plaintext == "" {
		return domainerrors.ErrInvalidInput.WithDetails("password must not be empty")
	}

	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return err
	}

	a.Credential.SecretHash = hash
	a.Credential.ChangedAt = time.Now().UTC()
	a.UpdatedAt = a.Credential.ChangedAt

	return nil
}

// IssueTemporaryPassword replaces the current credential with a fresh temporary one
// and returns its plaintext. The plaintext is not recoverable afterwards.
func (a *Account) IssueTemporaryPassword(generator service.SecretGenerator, hasher service.PasswordHasher) (string, error) {
	plaintext, credential, err := NewTemporaryCredential(generator, hasher)
	if err != nil {
		return "", err
	}

	a.ReplaceCredential(credential)

	return plaintext, nil
}

// ChangePassword replaces the credential with a permanent one and clears the change-required flag.
func (a *Account) ChangePassword(policy service.PasswordPolicy, hasher service.PasswordHasher, plaintext string) error {
	credential, err := NewPermanentCredential(policy, hasher, plaintext)
	if err != nil {
		return err
	}

	a.ReplaceCredential(credential)

	return nil
}

// ReplaceCredential installs a credential prepared ahead of time, e.g. hashed outside a lock.
func (a *Account) ReplaceCredential(credential Credential) {
	a.Credential = credential
	a.UpdatedAt = credential.ChangedAt
}

// VerifyTemporaryPassword checks a candidate against the stored hash without mutating the account.
func (a *Account) VerifyTemporaryPassword(hasher service.PasswordHasher, candidate string) bool {
	return a.Credential.Matches(hasher, candidate)
}

// VerifyPermanentPassword checks a candidate against the stored hash without mutating the account.
func (a *Account) VerifyPermanentPassword(hasher service.PasswordHasher, candidate string) bool {
	return a.Credential.Matches(hasher, candidate)
}
