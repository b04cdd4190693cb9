package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"winespa/config"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/service"
)

const (
	defaultMinLength = 8
	defaultMaxLength = bcryptMaxLength
)

// passwordPolicy implements service.PasswordPolicy from the passwordStrength config section.
type passwordPolicy struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
	forbiddenWords   []string
}

// NewPasswordPolicy builds the policy from configuration; a missing section yields length-only rules.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	policy := &passwordPolicy{
		minLength: defaultMinLength,
		maxLength: defaultMaxLength,
	}
	if cfg == nil || cfg.PasswordStrength == nil {
		return policy
	}

	strength := cfg.PasswordStrength
	if strength.MinLength > 0 {
		policy.minLength = strength.MinLength
	}
	if strength.MaxLength > 0 && strength.MaxLength < defaultMaxLength {
		policy.maxLength = strength.MaxLength
	}
	policy.requireUppercase = strength.RequireUppercase
	policy.requireLowercase = strength.RequireLowercase
	policy.requireNumbers = strength.RequireNumbers
	policy.requireSpecial = strength.RequireSpecial
	for _, word := range strength.ForbiddenWords {
		if word = strings.ToLower(strings.TrimSpace(word)); word != "" {
			policy.forbiddenWords = append(policy.forbiddenWords, word)
		}
	}

	return policy
}

// Validate checks every configured rule and reports the first one that fails.
func (p *passwordPolicy) Validate(password string) error {
	if password == "" {
		return domainerrors.ErrInvalidInput.WithDetails("password must not be empty")
	}

	if utf8.RuneCountInString(password) < p.minLength {
		return weak("must be at least %d characters long", p.minLength)
	}
	if len(password) > p.maxLength {
		return weak("must be at most %d bytes long", p.maxLength)
	}
	if p.requireLowercase && !hasRune(password, unicode.IsLower) {
		return weak("must contain at least one lowercase letter")
	}
	if p.requireUppercase && !hasRune(password, unicode.IsUpper) {
		return weak("must contain at least one uppercase letter")
	}
	if p.requireNumbers && !hasRune(password, unicode.IsDigit) {
		return weak("must contain at least one number")
	}
	if p.requireSpecial && !hasRune(password, isSpecial) {
		return weak("must contain at least one special character")
	}
	if p.containsForbiddenWords(password) {
		return weak("contains forbidden words")
	}

	return nil
}

func (p *passwordPolicy) containsForbiddenWords(password string) bool {
	lower := strings.ToLower(password)
	for _, word := range p.forbiddenWords {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}

func hasRune(s string, predicate func(rune) bool) bool {
	return strings.IndexFunc(s, predicate) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func weak(format string, args ...any) error {
	return domainerrors.ErrWeakSecret.WithDetails("password " + fmt.Sprintf(format, args...))
}
