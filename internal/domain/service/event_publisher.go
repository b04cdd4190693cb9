package service

import (
	"context"
	"time"
)

// AccountEventType names an account lifecycle event.
type AccountEventType string

const (
	EventAccountCreated          AccountEventType = "account.created"
	EventTemporaryPasswordIssued AccountEventType = "credential.temporary_issued"
	EventPasswordChanged         AccountEventType = "credential.changed"
	EventAccountStatusChanged    AccountEventType = "account.status_changed"
	EventRolePermissionsChanged  AccountEventType = "role.permissions_changed"
)

// AccountEvent is published after a committed change. It never carries secrets.
type AccountEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       AccountEventType `json:"type"`
	AccountID  string           `json:"account_id,omitempty"`
	Kind       string           `json:"kind,omitempty"`
	Email      string           `json:"email,omitempty"`
	FullName   string           `json:"full_name,omitempty"`
	RoleID     string           `json:"role_id,omitempty"`
	Status     string           `json:"status,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an account event for async processing
	Publish(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// CredentialNotifier delivers credential messages to the account holder out of band.
type CredentialNotifier interface {
	// SendTemporaryPassword delivers a freshly issued temporary password. Callers must not retry it.
	SendTemporaryPassword(ctx context.Context, email, fullName, plaintext string) error

	// SendPasswordChanged notifies the holder that the password was changed.
	SendPasswordChanged(ctx context.Context, email, fullName string) error
}
