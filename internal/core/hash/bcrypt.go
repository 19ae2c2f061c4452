// Package hash provides one-way password hashing for the identity core.
package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// Bcrypt hashes and compares passwords using the salted, adaptive bcrypt
// function. Comparison is constant-time by construction.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a Bcrypt hasher with the given cost factor.
// Out-of-range costs fall back to DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns the bcrypt digest of plaintext. It fails only on underlying
// resource failure; callers must treat an error as fatal for the request.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Compare reports whether plaintext matches digest. A mismatch is a normal
// false result, never an error.
func (b *Bcrypt) Compare(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
