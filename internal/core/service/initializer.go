package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/diceprojects/auth-system/internal/core/domain"
	"github.com/diceprojects/auth-system/internal/core/ports"
)

// Initializer seeds the default roles and the bootstrap admin account at
// startup. Every step is idempotent, so restarting the service is safe.
type Initializer struct {
	users  ports.UserService
	roles  ports.RoleService
	logger zerolog.Logger
}

func NewInitializer(users ports.UserService, roles ports.RoleService, logger zerolog.Logger) *Initializer {
	return &Initializer{users: users, roles: roles, logger: logger}
}

// Run creates the ADMIN and USER roles when missing, then the default admin
// account carrying the ADMIN role.
func (i *Initializer) Run(ctx context.Context) error {
	if _, err := i.roles.FindOrCreate(ctx, domain.AdminRole, "Administrator role, full access"); err != nil {
		return fmt.Errorf("initialize roles: %w", err)
	}
	if _, err := i.roles.FindOrCreate(ctx, domain.DefaultUserRole, "Standard user role, limited access"); err != nil {
		return fmt.Errorf("initialize roles: %w", err)
	}

	if _, err := i.users.FindOrCreate(ctx, "admin", "password", domain.AdminRole); err != nil {
		return fmt.Errorf("initialize admin user: %w", err)
	}

	i.logger.Info().Msg("default roles and admin account initialized")
	return nil
}
