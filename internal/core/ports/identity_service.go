package ports

import (
	"context"

	"github.com/gamingroom/gameauth/internal/core/domain"
)

// CreateIdentityInput carries everything needed to build a new identity.
type CreateIdentityInput struct {
	Name  string
	Roles []string
}

// IdentityService builds identities and manages their role membership during setup.
type IdentityService interface {
	Create(ctx context.Context, input CreateIdentityInput) (*domain.User, error)
	// GrantRole reports whether the role was newly added.
	GrantRole(ctx context.Context, user *domain.User, role string) (bool, error)
	// RevokeRole reports whether the role was held.
	RevokeRole(ctx context.Context, user *domain.User, role string) (bool, error)
}
