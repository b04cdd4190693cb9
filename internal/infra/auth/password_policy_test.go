package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"winespa/config"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/errors"
)

func strictPolicy() *passwordPolicy {
	return NewPasswordPolicy(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        64,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
			ForbiddenWords:   []string{"password", " Admin "},
		},
	}).(*passwordPolicy)
}

func TestPasswordPolicy_ValidPasswords(t *testing.T) {
	policy := strictPolicy()

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
		"Pässphräse123!",
	}

	for _, password := range validPasswords {
		assert.NoError(t, policy.Validate(password), "Expected no error for valid password: %s", password)
	}
}

func TestPasswordPolicy_Rejections(t *testing.T) {
	policy := strictPolicy()

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"Ab1!", "must be at least 8 characters long"},
		{"PASSWORD123!", "must contain at least one lowercase letter"},
		{"secure123!x", "must contain at least one uppercase letter"},
		{"SecureABC!x", "must contain at least one number"},
		{"Secure1234x", "must contain at least one special character"},
		{"Password123!", "contains forbidden words"},
		{"MyAdmin123!", "contains forbidden words"},
		{"Aa1!" + strings.Repeat("x", 70), "must be at most 64 bytes long"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := policy.Validate(tc.password)
			assert.True(t, errors.Is(err, domainerrors.ErrWeakSecret))
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}
}

func TestPasswordPolicy_EmptyIsInvalidInput(t *testing.T) {
	err := strictPolicy().Validate("")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	assert.False(t, errors.Is(err, domainerrors.ErrWeakSecret))
}

func TestPasswordPolicy_DefaultsWithoutConfig(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{})

	assert.NoError(t, policy.Validate("samuel123"))
	assert.NoError(t, policy.Validate("nueva_clave456"))
	assert.True(t, errors.Is(policy.Validate("short"), domainerrors.ErrWeakSecret))
	assert.True(t, errors.Is(policy.Validate(strings.Repeat("a", 73)), domainerrors.ErrWeakSecret))
}

func TestPasswordPolicy_Helpers(t *testing.T) {
	assert.True(t, isSpecial('!'))
	assert.True(t, isSpecial('$'))
	assert.False(t, isSpecial('a'))

	policy := strictPolicy()
	assert.Equal(t, []string{"password", "admin"}, policy.forbiddenWords)
	assert.True(t, policy.containsForbiddenWords("MyPassword123"))
	assert.True(t, policy.containsForbiddenWords("AdminUser"))
	assert.False(t, policy.containsForbiddenWords("SecurePass123"))
}
