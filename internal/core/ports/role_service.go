package ports

import (
	"context"

	"github.com/diceprojects/auth-system/internal/core/domain"
)

// ChangeStatusResult reports the outcome of a role status change. When the
// role already carried the requested status the call is a no-op: Changed is
// false, Notice explains why, and the document (updateDate included) is left
// untouched.
type ChangeStatusResult struct {
	Role    *domain.Role `json:"role,omitempty"`
	Changed bool         `json:"changed"`
	Notice  string       `json:"notice,omitempty"`
}

// RoleService is the role directory: CRUD plus status-aware creation and
// activation.
type RoleService interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	// FindOrCreate is idempotent: two calls with the same name yield the same
	// underlying role id.
	FindOrCreate(ctx context.Context, name, description string) (*domain.Role, error)
	Create(ctx context.Context, name, description string) (*domain.Role, error)
	// FindByIDs returns the subset found and fails with domain.ErrRolesNotFound
	// only when the result set is empty.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Role, error)
	Update(ctx context.Context, id, name, description string) (*domain.Role, error)
	ChangeStatus(ctx context.Context, id, status string) (*ChangeStatusResult, error)
	List(ctx context.Context) ([]*domain.Role, error)
	// DefaultUserRole returns the role assigned to self-registered accounts.
	DefaultUserRole(ctx context.Context) (*domain.Role, error)
}

// StatusResolver yields the label that marks an entity as active. The value
// is owned by the remote configuration service and fetched per call.
type StatusResolver interface {
	ActiveStatus(ctx context.Context) (string, error)
}
