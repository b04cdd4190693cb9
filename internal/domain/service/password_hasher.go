// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	// An empty plaintext is rejected with ErrInvalidInput.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash in constant time.
	Check(password, hash string) bool
}

// PasswordPolicy decides whether a plaintext is strong enough to become a permanent password.
type PasswordPolicy interface {
	// Validate returns ErrWeakSecret with the failed rule as details.
	Validate(password string) error
}

// SecretGenerator produces random printable secrets for temporary credentials.
type SecretGenerator interface {
	Generate() (string, error)
}
