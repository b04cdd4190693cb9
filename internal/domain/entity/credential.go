package entity

import (
	"time"

	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/service"
	"winespa/internal/errors"
)

// Credential is the single password slot of an account.
// Only the hash is kept; plaintexts never outlive the call that produced them.
type Credential struct {
	SecretHash string    // bcrypt hash of the current password, temporary or permanent.
	MustChange bool      // Set while a temporary password is in force.
	ChangedAt  time.Time // When the hash was last replaced.
}

// IsSet reports whether a password has ever been stored.
func (c Credential) IsSet() bool {
	return c.SecretHash != ""
}

// Matches checks the candidate against the stored hash.
func (c Credential) Matches(hasher service.PasswordHasher, candidate string) bool {
	if candidate == "" || !c.IsSet() {
		return false
	}

	return hasher.Check(candidate, c.SecretHash)
}

// NewTemporaryCredential generates a random secret and returns its plaintext together with
// a credential that forces a change on next use.
func NewTemporaryCredential(generator service.SecretGenerator, hasher service.PasswordHasher) (string, Credential, error) {
	plaintext, err := generator.Generate()
	if err != nil {
		return "", Credential{}, errors.Wrap(err, "failed to generate temporary password")
	}

	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return "", Credential{}, err
	}

	return plaintext, Credential{
		SecretHash: hash,
		MustChange: true,
		ChangedAt:  time.Now().UTC(),
	}, nil
}

// NewPermanentCredential checks the plaintext against the policy and hashes it.
// A nil policy skips the strength check.
func NewPermanentCredential(policy service.PasswordPolicy, hasher service.PasswordHasher, plaintext string) (Credential, error) {
	if plaintext == "" {
		return Credential{}, domainerrors.ErrInvalidInput.WithDetails("password must not be empty")
	}

	if policy != nil {
		if err := policy.Validate(plaintext); err != nil {
			return Credential{}, err
		}
	}

	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return Credential{}, err
	}

	return Credential{
		SecretHash: hash,
		MustChange: false,
		ChangedAt:  time.Now().UTC(),
	}, nil
}
