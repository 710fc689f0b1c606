// Package auth holds the credential primitives: bcrypt password hashing and
// HS256 JWT issuing and verification.
package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/melodia/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// ErrMismatchedHashAndPassword reports a wrong password for a valid hash.
var ErrMismatchedHashAndPassword = fmt.Errorf("%w: password mismatch", common.ErrorUnauthorized)

// HashPassword returns a salted bcrypt hash of password. Costs outside
// bcrypt's range fall back to DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// ComparePasswordAndHash returns nil when password matches hash.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedHashAndPassword
		}
		return err
	}
	return nil
}
