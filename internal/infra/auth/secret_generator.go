package auth

import (
	"crypto/rand"
	"math/big"

	"winespa/config"
	"winespa/internal/domain/service"
	"winespa/internal/errors"
)

// Look-alike characters (0/O, 1/l/I) are left out so a mailed password can be retyped.
const (
	lowerAlphabet   = "abcdefghijkmnopqrstuvwxyz"
	upperAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digitAlphabet   = "23456789"
	specialAlphabet = "!@#$%*?-_"
	secretAlphabet  = lowerAlphabet + upperAlphabet + digitAlphabet + specialAlphabet
)

// MinSecretLength is the shortest temporary password the generator produces.
const MinSecretLength = 12

// MaxSecretLength keeps every generated secret hashable without truncation.
const MaxSecretLength = bcryptMaxLength

type randomSecretGenerator struct {
	length int
}

// NewSecretGenerator returns a generator producing secrets of the configured length.
func NewSecretGenerator(cfg *config.Config) service.SecretGenerator {
	return NewSecretGeneratorWithLength(cfg.TemporaryPasswordLength())
}

// NewSecretGeneratorWithLength returns a generator producing secrets of
// MinSecretLength to MaxSecretLength characters.
func NewSecretGeneratorWithLength(length int) service.SecretGenerator {
	length = max(MinSecretLength, min(length, MaxSecretLength))

	return &randomSecretGenerator{length: length}
}

// Generate returns a secret with at least one character of each class, uniformly drawn from crypto/rand.
func (g *randomSecretGenerator) Generate() (string, error) {
	secret := make([]byte, 0, g.length)
	for _, alphabet := range []string{lowerAlphabet, upperAlphabet, digitAlphabet, specialAlphabet} {
		c, err := randomChar(alphabet)
		if err != nil {
			return "", err
		}
		secret = append(secret, c)
	}

	for len(secret) < g.length {
		c, err := randomChar(secretAlphabet)
		if err != nil {
			return "", err
		}
		secret = append(secret, c)
	}

	// Shuffle so the class prefix is not predictable.
	for i := len(secret) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		secret[i], secret[j.Int64()] = secret[j.Int64()], secret[i]
	}

	return string(secret), nil
}

func randomChar(alphabet string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, errors.Wrap(err, "failed to read random source")
	}

	return alphabet[n.Int64()], nil
}
