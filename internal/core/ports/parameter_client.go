package ports

import (
	"context"

	"github.com/diceprojects/auth-system/internal/core/domain"
)

// ParameterClient talks to the remote configuration service that owns shared
// parameters (entity status labels, the JWT signing secret).
type ParameterClient interface {
	// GetByName returns domain.ErrParameterNotFound when the service has no
	// parameter under that name.
	GetByName(ctx context.Context, name string) (*domain.Parameter, error)
	// Save creates or updates a parameter (upsert by name on the remote side).
	Save(ctx context.Context, p *domain.Parameter) (*domain.Parameter, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Parameter, error)
}
