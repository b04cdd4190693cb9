package usecase

import (
	"context"
	"time"

	"winespa/internal/domain/entity"
)

// LoginInput identifies an account by kind and email.
type LoginInput struct {
	Kind     entity.AccountKind
	Email    string
	Password string
}

// LoginOutput returns the access token after a successful login.
// MustChangePassword tells the client to route the holder to the password change screen.
type LoginOutput struct {
	AccessToken        string
	ExpiresAt          time.Time
	MustChangePassword bool
	Account            *entity.Account
}

// SessionUsecase defines the interface for authentication.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
