package ports

import (
	"context"

	"github.com/diceprojects/auth-system/internal/core/domain"
)

// UserRepository defines persistence operations for user documents.
type UserRepository interface {
	// FindByUsername performs a case-insensitive exact match.
	// Returns domain.ErrUserNotFound on a miss.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update replaces the mutable fields of an existing document.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
