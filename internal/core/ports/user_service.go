package ports

import (
	"context"

	"github.com/diceprojects/auth-system/internal/core/domain"
)

// UserService is the user directory: lookup, registration, role assignment
// and security-token maintenance.
type UserService interface {
	// FindByUsername returns (nil, nil) when no user matches or when the
	// matched user is not Active; a plain miss is not an error.
	FindByUsername(ctx context.Context, username string) (*domain.UserDetails, error)
	Create(ctx context.Context, username, password, status string) (*domain.UserDetails, error)
	// RegisterUser creates the account and assigns the default USER role.
	// Existing usernames short-circuit to the stored details.
	RegisterUser(ctx context.Context, username, password string) (*domain.UserDetails, error)
	FindOrCreate(ctx context.Context, username, password, roleName string) (*domain.UserDetails, error)
	// CreateWithRoles filters the supplied roles down to active ones and
	// fails with domain.ErrInactiveRole when nothing survives the filter.
	CreateWithRoles(ctx context.Context, username, password string, roles []*domain.Role) (*domain.UserDetails, error)
	UpdateToken(ctx context.Context, userID, token string) (*domain.UserDetails, error)
	FindByID(ctx context.Context, userID string) (*domain.UserDetails, error)
	AssignRole(ctx context.Context, username, roleID string) (*domain.UserDetails, error)
}
