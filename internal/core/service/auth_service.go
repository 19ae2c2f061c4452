package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tripno08/innerview-backend/internal/api/metrics"
	"github.com/Tripno08/innerview-backend/internal/core/domain"
	"github.com/Tripno08/innerview-backend/internal/core/ports"
)

type authService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenSigner
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

// NewAuthService returns the registration and authentication workflows.
func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenSigner,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) ports.AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
		log:    log,
	}
}

// Register creates a new account. Validation runs strictly before hashing and
// before any repository access, so a weak password or malformed email costs
// nothing.
func (s *authService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	// Canonical form everywhere: the pre-check, the stored value, and the
	// unique index must all see the same string.
	email := domain.NormalizeEmail(input.Email)
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.DefaultRole
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	// Pre-check for a friendlier conflict error; the storage-layer unique
	// index remains the final authority against concurrent registrations.
	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailInUse
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("register: lookup email: %w", err)
	}

	start := time.Now()
	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())

	user, err := domain.NewUser(input.Name, email, digest, role)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(created.Role)).Inc()
	s.audit.Record(domain.AuditEvent{
		ActorID:  created.ID,
		Action:   domain.AuditUserRegistered,
		Entity:   "user",
		EntityID: created.ID,
		Occurred: time.Now().UTC(),
	})
	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")

	return created, nil
}

// Login verifies credentials and mints the session token. A missing account
// and a wrong password collapse into the same error so the response never
// reveals whether an email is registered.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = domain.NormalizeEmail(email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordLoginFailure(email)
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login: lookup email: %w", err)
	}

	if !s.hasher.Compare(password, user.PasswordHash) {
		s.recordLoginFailure(user.ID)
		return nil, "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Sign(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("login: sign token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.audit.Record(domain.AuditEvent{
		ActorID:  user.ID,
		Action:   domain.AuditLoginSucceeded,
		Entity:   "user",
		EntityID: user.ID,
		Occurred: time.Now().UTC(),
	})

	return user, signed, nil
}

func (s *authService) recordLoginFailure(actor string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	s.audit.Record(domain.AuditEvent{
		ActorID:  actor,
		Action:   domain.AuditLoginFailed,
		Entity:   "user",
		Occurred: time.Now().UTC(),
	})
}
