package auth

import (
	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
)

// KeyVerifier checks API keys presented by callers.
type KeyVerifier interface {
	Verify(key string) error
	Enabled() bool
}

// BcryptVerifier accepts keys matching a stored bcrypt hash.
type BcryptVerifier struct {
	hash []byte
}

// NewBcryptVerifier creates BcryptVerifier for the provided hash.
func NewBcryptVerifier(hash string) *BcryptVerifier {
	return &BcryptVerifier{hash: []byte(hash)}
}

// Verify compares key against the stored hash.
func (v *BcryptVerifier) Verify(key string) error {
	if key == "" {
		return domainErrors.ErrInvalidAPIKey
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(key)); err != nil {
		return domainErrors.ErrInvalidAPIKey
	}
	return nil
}

func (v *BcryptVerifier) Enabled() bool { return true }

// OpenVerifier accepts every request. It is used when no key hash is configured.
type OpenVerifier struct{}

func (OpenVerifier) Verify(string) error { return nil }

func (OpenVerifier) Enabled() bool { return false }

// HashKey returns a bcrypt hash suitable for API_KEY_HASH.
func HashKey(key string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	encoded, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
