package ports

import (
	"context"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
)

// UserRepository persists the user aggregate. Implementations must enforce a
// unique constraint on email at the storage layer; the service-level duplicate
// pre-check alone is not atomic.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Save inserts a new user; a duplicate email maps to domain.ErrEmailInUse.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
}

// InstitutionMembership answers whether a user belongs to an institution.
// Used only by institution-scoped permission checks.
type InstitutionMembership interface {
	IsMember(ctx context.Context, userID, institutionID string) (bool, error)
}
