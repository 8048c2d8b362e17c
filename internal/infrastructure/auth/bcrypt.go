// Package auth verifies the operator password.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/kiosk/internal/application/port"
	"golang.org/x/crypto/bcrypt"
)

// FactoryPassword is accepted while no password hash has been configured.
const FactoryPassword = "1234"

// MinPasswordLength is enforced when setting a new password.
const MinPasswordLength = 4

// ErrPasswordTooShort is returned by HashPassword.
var ErrPasswordTooShort = errors.New("password too short")

// BcryptVerifier checks secrets against a bcrypt hash.
// The hash can be swapped at runtime when the config file changes.
type BcryptVerifier struct {
	mu   sync.RWMutex
	hash []byte
}

var _ port.PasswordVerifier = (*BcryptVerifier)(nil)

// NewBcryptVerifier creates a verifier. An empty hash selects FactoryPassword.
func NewBcryptVerifier(hash string) *BcryptVerifier {
	v := &BcryptVerifier{}
	v.SetHash(hash)
	return v
}

// SetHash replaces the stored hash.
func (v *BcryptVerifier) SetHash(hash string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.hash = []byte(hash)
}

// UsesFactoryPassword reports whether no hash is configured.
func (v *BcryptVerifier) UsesFactoryPassword() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.hash) == 0
}

// Verify reports whether secret matches.
func (v *BcryptVerifier) Verify(secret string) bool {
	v.mu.RLock()
	hash := v.hash
	v.mu.RUnlock()

	if len(hash) == 0 {
		return subtle.ConstantTimeCompare([]byte(secret), []byte(FactoryPassword)) == 1
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(secret)) == nil
}

// HashPassword returns a bcrypt hash suitable for security.password_hash.
func HashPassword(secret string) (string, error) {
	if len(secret) < MinPasswordLength {
		return "", fmt.Errorf("%w: need at least %d characters", ErrPasswordTooShort, MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
