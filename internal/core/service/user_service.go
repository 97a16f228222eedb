package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/diceprojects/auth-system/internal/core/domain"
	"github.com/diceprojects/auth-system/internal/core/ports"
)

// UserService implements the user directory: account lookup and creation,
// default-role registration, role assignment and security-token maintenance.
type UserService struct {
	repo   ports.UserRepository
	roles  ports.RoleService
	status ports.StatusResolver
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, roles ports.RoleService, status ports.StatusResolver, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, roles: roles, status: status, logger: logger}
}

// FindByUsername loads the details view for an Active user. A plain miss and
// a non-Active account both come back as (nil, nil); the caller decides
// whether emptiness is an error. The Active comparison is intentionally
// hardcoded and independent of the configured status label.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*domain.UserDetails, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !strings.EqualFold(user.Status, domain.StatusActive) {
		return nil, nil
	}

	roles, err := s.roles.FindByIDs(ctx, user.RoleIDs)
	if err != nil {
		return nil, err
	}
	return mapToDetails(user, roles), nil
}

// Create persists a bare account with the given status. Role assignment is a
// separate step.
func (s *UserService) Create(ctx context.Context, username, password, status string) (*domain.UserDetails, error) {
	user, err := s.newUser(username, password, status)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to create user")
		return nil, err
	}
	return mapToDetails(created, nil), nil
}

// RegisterUser creates an account with the configured active status and
// assigns the default USER role. An existing username short-circuits to the
// stored details. Registration fails when the default role does not carry the
// active status.
func (s *UserService) RegisterUser(ctx context.Context, username, password string) (*domain.UserDetails, error) {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		roles, rerr := s.roles.FindByIDs(ctx, existing.RoleIDs)
		if rerr != nil && !errors.Is(rerr, domain.ErrRolesNotFound) {
			return nil, rerr
		}
		return mapToDetails(existing, roles), nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	activeStatus, err := s.status.ActiveStatus(ctx)
	if err != nil {
		return nil, err
	}

	defaultRole, err := s.roles.DefaultUserRole(ctx)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(defaultRole.Status, activeStatus) {
		return nil, domain.ErrInactiveRole
	}

	user, err := s.newUser(username, password, activeStatus)
	if err != nil {
		return nil, err
	}
	user.RoleIDs = []string{defaultRole.ID}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to register user")
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("role", defaultRole.Name).Msg("user registered")
	return mapToDetails(created, []*domain.Role{defaultRole}), nil
}

// FindOrCreate returns the existing user or registers a new one carrying the
// named role.
func (s *UserService) FindOrCreate(ctx context.Context, username, password, roleName string) (*domain.UserDetails, error) {
	details, err := s.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if details != nil {
		return details, nil
	}

	role, err := s.roles.FindByName(ctx, roleName)
	if err != nil {
		return nil, err
	}
	return s.CreateWithRoles(ctx, username, password, []*domain.Role{role})
}

// CreateWithRoles is the strict creation path: the supplied roles are
// filtered down to those carrying the active status, and the call fails when
// the filtered set is empty.
func (s *UserService) CreateWithRoles(ctx context.Context, username, password string, roles []*domain.Role) (*domain.UserDetails, error) {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return mapToDetails(existing, roles), nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	activeStatus, err := s.status.ActiveStatus(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*domain.Role, 0, len(roles))
	for _, role := range roles {
		if strings.EqualFold(role.Status, activeStatus) {
			active = append(active, role)
		}
	}
	if len(active) == 0 {
		return nil, domain.ErrInactiveRole
	}

	user, err := s.newUser(username, password, activeStatus)
	if err != nil {
		return nil, err
	}
	for _, role := range active {
		user.RoleIDs = append(user.RoleIDs, role.ID)
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to create user with roles")
		return nil, err
	}
	return mapToDetails(created, active), nil
}

// UpdateToken overwrites the user's stored security token and returns the
// refreshed details view. An empty refreshed view (account gone or no longer
// Active) surfaces as not found, matching the lookup semantics.
func (s *UserService) UpdateToken(ctx context.Context, userID, token string) (*domain.UserDetails, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.SecurityToken = token
	user.UpdateDate = time.Now().UTC()
	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	details, err := s.FindByUsername(ctx, updated.Username)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, domain.ErrUserNotFound
	}
	return details, nil
}

// FindByID loads a user by id. A user whose role id set resolves to nothing
// is structurally broken and rejected.
func (s *UserService) FindByID(ctx context.Context, userID string) (*domain.UserDetails, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	roles, err := s.roles.FindByIDs(ctx, user.RoleIDs)
	if err != nil {
		if errors.Is(err, domain.ErrRolesNotFound) {
			return nil, domain.ErrUserRolesNotFound
		}
		return nil, err
	}
	return mapToDetails(user, roles), nil
}

// AssignRole adds a role id to the user's set. Assigning an id the user
// already carries is a conflict. There is no transaction spanning the role
// existence check and the user save; a role deleted in between goes
// undetected.
func (s *UserService) AssignRole(ctx context.Context, username, roleID string) (*domain.UserDetails, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	role, err := s.roles.FindByIDs(ctx, []string{roleID})
	if err != nil {
		if errors.Is(err, domain.ErrRolesNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}

	if user.HasRole(roleID) {
		return nil, domain.ErrRoleAlreadyAssigned
	}

	user.RoleIDs = append(user.RoleIDs, roleID)
	user.UpdateDate = time.Now().UTC()
	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("role_id", roleID).Msg("role assigned")

	roles, err := s.roles.FindByIDs(ctx, updated.RoleIDs)
	if err != nil && !errors.Is(err, domain.ErrRolesNotFound) {
		return nil, err
	}
	if len(roles) == 0 {
		roles = role
	}
	return mapToDetails(updated, roles), nil
}

func (s *UserService) newUser(username, password, status string) (*domain.User, error) {
	if password == "" {
		return nil, domain.ErrPasswordRequired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		Username:            username,
		PasswordHash:        string(hash),
		Status:              status,
		Deleted:             false,
		CreateDate:          time.Now().UTC(),
		ForcePasswordChange: true,
	}, nil
}

func mapToDetails(user *domain.User, roles []*domain.Role) *domain.UserDetails {
	infos := make([]domain.RoleInfo, 0, len(roles))
	for _, role := range roles {
		infos = append(infos, role.Info())
	}
	return &domain.UserDetails{
		ID:       user.ID,
		Username: user.Username,
		Password: user.PasswordHash,
		Status:   user.Status,
		Roles:    infos,
	}
}
