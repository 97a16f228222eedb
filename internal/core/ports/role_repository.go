package ports

import (
	"context"

	"github.com/diceprojects/auth-system/internal/core/domain"
)

// RoleRepository defines persistence operations for role documents.
type RoleRepository interface {
	// FindByName performs a case-insensitive exact match.
	// Returns domain.ErrRoleNotFound on a miss.
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	// FindByIDs returns the subset of roles whose ids matched; callers decide
	// how to treat partial misses.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindAll(ctx context.Context) ([]*domain.Role, error)
}
