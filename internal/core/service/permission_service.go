package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Tripno08/innerview-backend/internal/api/metrics"
	"github.com/Tripno08/innerview-backend/internal/core/domain"
	"github.com/Tripno08/innerview-backend/internal/core/ports"
)

type permissionService struct {
	users      ports.UserRepository
	membership ports.InstitutionMembership
	log        zerolog.Logger
}

// NewPermissionService returns the role/membership permission workflow.
func NewPermissionService(
	users ports.UserRepository,
	membership ports.InstitutionMembership,
	log zerolog.Logger,
) ports.PermissionService {
	return &permissionService{users: users, membership: membership, log: log}
}

// Check loads the user and evaluates role membership, then institution
// membership when a scope is given. "Not permitted" is a plain false; the one
// hard failure besides infrastructure is a subject id that no longer resolves
// (the account was deleted after the token was issued).
func (s *permissionService) Check(ctx context.Context, userID, institutionID string, allowed []domain.Role) (bool, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}

	if !roleAllowed(user.Role, allowed) {
		s.deny(userID, "role")
		return false, nil
	}

	if institutionID != "" {
		member, err := s.membership.IsMember(ctx, userID, institutionID)
		if err != nil {
			return false, fmt.Errorf("permission check: membership: %w", err)
		}
		if !member {
			s.deny(userID, "membership")
			return false, nil
		}
	}

	metrics.PermissionChecksTotal.WithLabelValues("allowed").Inc()
	return true, nil
}

func (s *permissionService) deny(userID, reason string) {
	metrics.PermissionChecksTotal.WithLabelValues("denied").Inc()
	s.log.Debug().Str("user_id", userID).Str("reason", reason).Msg("permission denied")
}

func roleAllowed(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
