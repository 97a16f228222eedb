package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/diceprojects/auth-system/internal/core/domain"
	"github.com/diceprojects/auth-system/internal/core/ports"
)

type stubRoleService struct {
	role   *domain.Role
	roles  []*domain.Role
	result *ports.ChangeStatusResult
	err    error
}

func (s *stubRoleService) FindByName(context.Context, string) (*domain.Role, error) {
	return s.role, s.err
}

func (s *stubRoleService) FindOrCreate(context.Context, string, string) (*domain.Role, error) {
	return s.role, s.err
}

func (s *stubRoleService) Create(context.Context, string, string) (*domain.Role, error) {
	return s.role, s.err
}

func (s *stubRoleService) FindByIDs(context.Context, []string) ([]*domain.Role, error) {
	return s.roles, s.err
}

func (s *stubRoleService) Update(context.Context, string, string, string) (*domain.Role, error) {
	return s.role, s.err
}

func (s *stubRoleService) ChangeStatus(context.Context, string, string) (*ports.ChangeStatusResult, error) {
	return s.result, s.err
}

func (s *stubRoleService) List(context.Context) ([]*domain.Role, error) {
	return s.roles, s.err
}

func (s *stubRoleService) DefaultUserRole(context.Context) (*domain.Role, error) {
	return s.role, s.err
}

func TestRoleHandler_GetByName(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{role: &domain.Role{ID: "r1", Name: "ADMIN"}})

	c, rec := newPathContext(http.MethodGet, "/api/role/getRoleByName/ADMIN", "roleName", "ADMIN")
	if err := h.GetByName(c); err != nil {
		t.Fatalf("GetByName returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var role domain.Role
	if err := json.Unmarshal(rec.Body.Bytes(), &role); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if role.Name != "ADMIN" {
		t.Fatalf("unexpected role %+v", role)
	}
}

func TestRoleHandler_GetByName_NotFound(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{err: domain.ErrRoleNotFound})

	c, _ := newPathContext(http.MethodGet, "/api/role/getRoleByName/ghost", "roleName", "ghost")
	if err := h.GetByName(c); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRoleHandler_Create(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{role: &domain.Role{ID: "r1", Name: "AUDITOR"}})

	c, rec := newPathContext(http.MethodPost, "/api/role/create?roleName=AUDITOR", "", "")
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestRoleHandler_Create_MissingName(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{})

	c, _ := newPathContext(http.MethodPost, "/api/role/create", "", "")
	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRoleHandler_Update_MissingName(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{})

	c, _ := newPathContext(http.MethodPut, "/api/role/update/r1", "roleId", "r1")
	err := h.Update(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRoleHandler_ChangeStatus(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{result: &ports.ChangeStatusResult{
		Role:    &domain.Role{ID: "r1", Status: "Active"},
		Changed: true,
	}})

	c, rec := newPathContext(http.MethodPut, "/api/role/changeStatus/r1?status=Active", "roleId", "r1")
	if err := h.ChangeStatus(c); err != nil {
		t.Fatalf("ChangeStatus returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var result ports.ChangeStatusResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !result.Changed {
		t.Fatalf("expected changed=true, got %+v", result)
	}
}

func TestRoleHandler_ChangeStatus_MissingStatus(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{})

	c, _ := newPathContext(http.MethodPut, "/api/role/changeStatus/r1", "roleId", "r1")
	err := h.ChangeStatus(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRoleHandler_List(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{roles: []*domain.Role{
		{ID: "r1", Name: "ADMIN"},
		{ID: "r2", Name: "USER"},
	}})

	c, rec := newPathContext(http.MethodGet, "/api/role/listRoles", "", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var roles []domain.Role
	if err := json.Unmarshal(rec.Body.Bytes(), &roles); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(roles))
	}
}
