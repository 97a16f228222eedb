package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/diceprojects/auth-system/internal/core/domain"
)

// In-memory fakes shared by the service tests. They mimic the repository and
// parameter-client contracts closely enough to exercise the directory logic
// without a running MongoDB or configuration service.

type stubParamClient struct {
	params map[string]*domain.Parameter
	saves  int
}

func newStubParamClient() *stubParamClient {
	return &stubParamClient{params: make(map[string]*domain.Parameter)}
}

func (s *stubParamClient) setEntityStatus(value string) {
	s.params[domain.ParamEntityStatus] = &domain.Parameter{
		ID:    "p1",
		Name:  domain.ParamEntityStatus,
		Value: `{"status1":"` + value + `","status2":"Inactive"}`,
	}
}

func (s *stubParamClient) GetByName(_ context.Context, name string) (*domain.Parameter, error) {
	p, ok := s.params[name]
	if !ok {
		return nil, domain.ErrParameterNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *stubParamClient) Save(_ context.Context, p *domain.Parameter) (*domain.Parameter, error) {
	clone := *p
	if clone.ID == "" {
		clone.ID = "p" + strconv.Itoa(len(s.params)+1)
	}
	s.params[clone.Name] = &clone
	s.saves++
	saved := clone
	return &saved, nil
}

func (s *stubParamClient) Delete(_ context.Context, id string) error {
	for name, p := range s.params {
		if p.ID == id {
			delete(s.params, name)
			return nil
		}
	}
	return domain.ErrParameterNotFound
}

func (s *stubParamClient) List(_ context.Context) ([]*domain.Parameter, error) {
	out := make([]*domain.Parameter, 0, len(s.params))
	for _, p := range s.params {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

type stubRoleRepo struct {
	roles map[string]*domain.Role
	seq   int
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[string]*domain.Role)}
}

func cloneRole(r *domain.Role) *domain.Role {
	clone := *r
	return &clone
}

func (s *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for _, r := range s.roles {
		if strings.EqualFold(r.Name, name) {
			return cloneRole(r), nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (s *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	r, ok := s.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return cloneRole(r), nil
}

func (s *stubRoleRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Role, error) {
	var out []*domain.Role
	for _, id := range ids {
		if r, ok := s.roles[id]; ok {
			out = append(out, cloneRole(r))
		}
	}
	return out, nil
}

func (s *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	s.seq++
	created := cloneRole(role)
	created.ID = "r" + strconv.Itoa(s.seq)
	s.roles[created.ID] = cloneRole(created)
	return created, nil
}

func (s *stubRoleRepo) Update(_ context.Context, role *domain.Role) (*domain.Role, error) {
	if _, ok := s.roles[role.ID]; !ok {
		return nil, domain.ErrRoleNotFound
	}
	s.roles[role.ID] = cloneRole(role)
	return cloneRole(role), nil
}

func (s *stubRoleRepo) FindAll(_ context.Context) ([]*domain.Role, error) {
	out := make([]*domain.Role, 0, len(s.roles))
	for _, r := range s.roles {
		out = append(out, cloneRole(r))
	}
	return out, nil
}

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.RoleIDs = append([]string(nil), u.RoleIDs...)
	return &clone
}

func (s *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, user.Username) {
			return nil, domain.ErrUserExists
		}
	}
	s.seq++
	created := cloneUser(user)
	created.ID = "u" + strconv.Itoa(s.seq)
	s.users[created.ID] = cloneUser(created)
	return created, nil
}

func (s *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := s.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	s.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}
