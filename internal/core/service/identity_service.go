package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gamingroom/gameauth/internal/core/domain"
	"github.com/gamingroom/gameauth/internal/core/ports"
	"github.com/gamingroom/gameauth/internal/metrics"
)

// IdentityService validates input, allocates IDs and builds users.
type IdentityService struct {
	ids      ports.IDAllocator
	validate *validator.Validate
	log      zerolog.Logger
}

var _ ports.IdentityService = (*IdentityService)(nil)

func NewIdentityService(ids ports.IDAllocator, log zerolog.Logger) *IdentityService {
	return &IdentityService{ids: ids, validate: newValidator(), log: log}
}

// Create builds a user with a freshly allocated ID. The input roles are copied.
func (s *IdentityService) Create(ctx context.Context, in ports.CreateIdentityInput) (*domain.User, error) {
	req := createIdentityRequest{Name: in.Name, Roles: in.Roles}
	if err := s.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidIdentity, describe(err, "name"))
	}

	id, err := s.ids.NextID(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("failed to allocate user id")
		return nil, fmt.Errorf("create identity: %w: %w", domain.ErrIDAllocation, err)
	}

	user := domain.NewUserWithRoles(id, in.Name, in.Roles)
	metrics.UsersCreatedTotal.Inc()
	s.log.Info().Object("user", user).Msg("identity created")

	return user, nil
}

// GrantRole adds role to user and reports whether it was newly added.
func (s *IdentityService) GrantRole(_ context.Context, user *domain.User, role string) (bool, error) {
	if err := s.checkTarget(user, role); err != nil {
		return false, err
	}

	added := user.Grant(role)
	result := metrics.ResultAdded
	if !added {
		result = metrics.ResultDuplicate
	}
	metrics.RoleGrantsTotal.WithLabelValues(result).Inc()

	s.log.Debug().
		Int64("user_id", user.ID()).
		Str("role", role).
		Str("result", result).
		Msg("role granted")
	return added, nil
}

// RevokeRole removes role from user and reports whether it was held.
func (s *IdentityService) RevokeRole(_ context.Context, user *domain.User, role string) (bool, error) {
	if err := s.checkTarget(user, role); err != nil {
		return false, err
	}

	removed := user.RemoveRole(role)
	result := metrics.ResultRemoved
	if !removed {
		result = metrics.ResultAbsent
	}
	metrics.RoleRevocationsTotal.WithLabelValues(result).Inc()

	s.log.Info().
		Int64("user_id", user.ID()).
		Str("role", role).
		Str("result", result).
		Msg("role revoked")
	return removed, nil
}

func (s *IdentityService) checkTarget(user *domain.User, role string) error {
	if user == nil {
		return fmt.Errorf("%w: nil user", domain.ErrInvalidIdentity)
	}
	if err := s.validate.Var(role, roleRules); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRole, describe(err, "role"))
	}
	return nil
}
