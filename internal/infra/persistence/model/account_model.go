package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. Clients, manicurists and system users share it;
// kind-specific columns stay empty for the other kinds.
// Email and document are unique per kind at the database level; global uniqueness is
// enforced by the application when configured. A role cannot be deleted while accounts hold it.
type AccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind           string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_accounts_kind_email,priority:1;uniqueIndex:idx_accounts_kind_document,priority:1"`
	DocumentType   string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_accounts_kind_document,priority:2"`
	DocumentNumber string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_accounts_kind_document,priority:3"`
	FullName       string    `gorm:"type:varchar(150);not null"`
	Phone          string    `gorm:"type:varchar(20)"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_kind_email,priority:2"`
	Status         string    `gorm:"type:varchar(10);not null;index"`

	SecretHash         string     `gorm:"type:varchar(255)"`
	MustChangePassword bool       `gorm:"not null"`
	PasswordChangedAt  *time.Time `gorm:"type:timestamptz"`

	RoleID *uuid.UUID `gorm:"type:uuid;index"`
	Role   *RoleModel `gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`

	Address     string `gorm:"type:varchar(255)"`
	Gender      string `gorm:"type:varchar(10)"`
	Specialty   string `gorm:"type:varchar(100)"`
	Available   bool   `gorm:"not null"`
	IsStaff     bool   `gorm:"not null"`
	IsSuperuser bool   `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
