package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/diceprojects/auth-system/internal/core/domain"
	"github.com/diceprojects/auth-system/internal/core/ports"
)

// RoleService implements the role directory on top of the role repository and
// the remote status resolver.
type RoleService struct {
	repo   ports.RoleRepository
	status ports.StatusResolver
	logger zerolog.Logger
}

func NewRoleService(repo ports.RoleRepository, status ports.StatusResolver, logger zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, status: status, logger: logger}
}

// FindByName looks a role up by name, case-insensitively.
func (s *RoleService) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	return s.repo.FindByName(ctx, name)
}

// FindOrCreate returns the existing role under that name or creates one with
// the configured active status. Calling it twice with the same name yields
// the same role id.
func (s *RoleService) FindOrCreate(ctx context.Context, name, description string) (*domain.Role, error) {
	role, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, domain.ErrRoleNotFound) {
		return nil, err
	}
	return s.Create(ctx, name, description)
}

// Create persists a new role with status taken from the resolver,
// deleted=false and createDate=now.
func (s *RoleService) Create(ctx context.Context, name, description string) (*domain.Role, error) {
	activeStatus, err := s.status.ActiveStatus(ctx)
	if err != nil {
		return nil, err
	}

	role := &domain.Role{
		Name:        name,
		Description: description,
		Status:      activeStatus,
		Deleted:     false,
		CreateDate:  time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, role)
	if err != nil {
		s.logger.Error().Err(err).Str("role", name).Msg("failed to create role")
		return nil, err
	}

	s.logger.Info().Str("role", created.Name).Str("role_id", created.ID).Msg("role created")
	return created, nil
}

// FindByIDs bulk-loads roles. Partial misses are tolerated; an empty result
// set fails with ErrRolesNotFound.
func (s *RoleService) FindByIDs(ctx context.Context, ids []string) ([]*domain.Role, error) {
	roles, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, domain.ErrRolesNotFound
	}
	return roles, nil
}

// Update renames a role and refreshes its updateDate.
func (s *RoleService) Update(ctx context.Context, id, name, description string) (*domain.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role.Name = name
	role.Description = description
	role.UpdateDate = time.Now().UTC()
	return s.repo.Update(ctx, role)
}

// ChangeStatus moves a role to the given status. Only the configured active
// label is accepted as a target; setting the status a role already carries is
// a no-op that leaves the document (updateDate included) untouched.
func (s *RoleService) ChangeStatus(ctx context.Context, id, status string) (*ports.ChangeStatusResult, error) {
	activeStatus, err := s.status.ActiveStatus(ctx)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(activeStatus, status) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if role.Status == status {
		return &ports.ChangeStatusResult{
			Role:    role,
			Changed: false,
			Notice:  fmt.Sprintf("status is already %s", status),
		}, nil
	}

	role.Status = status
	role.UpdateDate = time.Now().UTC()
	updated, err := s.repo.Update(ctx, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("role_id", id).Str("status", status).Msg("role status changed")
	return &ports.ChangeStatusResult{Role: updated, Changed: true}, nil
}

// List returns every role, no pagination.
func (s *RoleService) List(ctx context.Context) ([]*domain.Role, error) {
	return s.repo.FindAll(ctx)
}

// DefaultUserRole returns the USER role assigned on registration.
func (s *RoleService) DefaultUserRole(ctx context.Context) (*domain.Role, error) {
	return s.repo.FindByName(ctx, domain.DefaultUserRole)
}
