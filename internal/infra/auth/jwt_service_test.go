package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winespa/config"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/service"
	"winespa/internal/errors"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtSvc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	accountID := uuid.New()
	roleID := uuid.New()

	token, expiresAt, err := jwtSvc.GenerateAccessToken(service.TokenSubject{
		AccountID:  accountID,
		Kind:       "user",
		RoleID:     &roleID,
		MustChange: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := jwtSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "user", claims.Kind)
	assert.Equal(t, roleID.String(), claims.RoleID)
	assert.True(t, claims.MustChange)
	assert.Equal(t, accountID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtSvc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtSvc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("first_secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("second_secret"))
	require.NoError(t, err)

	token, _, err := issuer.GenerateAccessToken(service.TokenSubject{AccountID: uuid.New(), Kind: "client"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret"))
	require.NoError(t, err)

	jwtSvc := svc.(*jwtService)
	jwtSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := jwtSvc.GenerateAccessToken(service.TokenSubject{AccountID: uuid.New(), Kind: "client"})
	require.NoError(t, err)

	jwtSvc.now = time.Now
	_, err = jwtSvc.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtSvc, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtSvc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
