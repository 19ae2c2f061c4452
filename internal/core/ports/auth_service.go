package ports

import (
	"context"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
	"github.com/Tripno08/innerview-backend/internal/core/token"
)

// PasswordHasher abstracts one-way credential hashing so workflows stay
// testable with injected fakes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Compare never errors for a mismatch; false is the normal result.
	Compare(plaintext, digest string) bool
}

// TokenSigner mints the bearer token for an authenticated user. Login is the
// only place this is called for interactive sessions.
type TokenSigner interface {
	Sign(subject, email, role string, opts ...token.SignOption) (string, error)
}

// RegisterInput carries all data needed to create an account. An empty Role
// defaults to domain.DefaultRole.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// AuthService defines the registration and authentication workflows.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns the authenticated user and a signed token. A missing user
	// and a wrong password both surface as domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

// PermissionService evaluates whether a user may proceed.
type PermissionService interface {
	// Check returns false (not an error) when the role or membership does not
	// satisfy the requirement. A user id that no longer resolves is a hard
	// domain.ErrUserNotFound. An empty institutionID skips the membership
	// requirement.
	Check(ctx context.Context, userID, institutionID string, allowed []domain.Role) (bool, error)
}
