package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/diceprojects/auth-system/internal/core/domain"
)

func newTestRoleService() (*RoleService, *stubRoleRepo, *stubParamClient) {
	repo := newStubRoleRepo()
	params := newStubParamClient()
	params.setEntityStatus("Active")
	svc := NewRoleService(repo, NewStatusResolver(params), zerolog.Nop())
	return svc, repo, params
}

func TestRoleService_FindOrCreate_Idempotent(t *testing.T) {
	svc, _, _ := newTestRoleService()
	ctx := context.Background()

	first, err := svc.FindOrCreate(ctx, "AUDITOR", "read-only access")
	if err != nil {
		t.Fatalf("first FindOrCreate failed: %v", err)
	}
	if first.Status != "Active" {
		t.Fatalf("expected configured active status, got %q", first.Status)
	}
	if first.CreateDate.IsZero() {
		t.Fatalf("expected createDate to be set")
	}

	second, err := svc.FindOrCreate(ctx, "AUDITOR", "ignored")
	if err != nil {
		t.Fatalf("second FindOrCreate failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same role id, got %q and %q", first.ID, second.ID)
	}
}

func TestRoleService_FindByName_CaseInsensitive(t *testing.T) {
	svc, _, _ := newTestRoleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Manager", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := svc.FindByName(ctx, "mAnAgEr")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected role %q, got %q", created.ID, found.ID)
	}
}

func TestRoleService_FindByName_NotFound(t *testing.T) {
	svc, _, _ := newTestRoleService()

	if _, err := svc.FindByName(context.Background(), "ghost"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRoleService_FindByIDs_EmptyResult(t *testing.T) {
	svc, _, _ := newTestRoleService()

	if _, err := svc.FindByIDs(context.Background(), []string{"r1", "r2"}); !errors.Is(err, domain.ErrRolesNotFound) {
		t.Fatalf("expected ErrRolesNotFound, got %v", err)
	}
}

func TestRoleService_FindByIDs_PartialMiss(t *testing.T) {
	svc, _, _ := newTestRoleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "OPERATOR", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	roles, err := svc.FindByIDs(ctx, []string{created.ID, "missing"})
	if err != nil {
		t.Fatalf("expected partial misses to be tolerated, got %v", err)
	}
	if len(roles) != 1 || roles[0].ID != created.ID {
		t.Fatalf("expected only the matched role, got %+v", roles)
	}
}

func TestRoleService_ChangeStatus_InvalidLabel(t *testing.T) {
	svc, _, _ := newTestRoleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "TEMP", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.ChangeStatus(ctx, created.ID, "Suspended"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestRoleService_ChangeStatus_Noop(t *testing.T) {
	svc, repo, _ := newTestRoleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "TEMP", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	result, err := svc.ChangeStatus(ctx, created.ID, "Active")
	if err != nil {
		t.Fatalf("ChangeStatus failed: %v", err)
	}
	if result.Changed {
		t.Fatalf("expected no-op, got changed=true")
	}
	if result.Notice == "" {
		t.Fatalf("expected a notice on no-op")
	}
	if !repo.roles[created.ID].UpdateDate.IsZero() {
		t.Fatalf("no-op must not touch updateDate")
	}
}

func TestRoleService_ChangeStatus_Applies(t *testing.T) {
	svc, repo, _ := newTestRoleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "TEMP", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	// Force a divergent stored status so the change actually writes.
	repo.roles[created.ID].Status = "Inactive"

	result, err := svc.ChangeStatus(ctx, created.ID, "Active")
	if err != nil {
		t.Fatalf("ChangeStatus failed: %v", err)
	}
	if !result.Changed {
		t.Fatalf("expected changed=true")
	}
	if result.Role.Status != "Active" {
		t.Fatalf("expected status Active, got %q", result.Role.Status)
	}
	if result.Role.UpdateDate.IsZero() {
		t.Fatalf("expected updateDate to be refreshed")
	}
}

func TestRoleService_ChangeStatus_MissingRole(t *testing.T) {
	svc, _, _ := newTestRoleService()

	if _, err := svc.ChangeStatus(context.Background(), "missing", "Active"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRoleService_Update(t *testing.T) {
	svc, _, _ := newTestRoleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "OLD", "old description")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, "NEW", "new description")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "NEW" || updated.Description != "new description" {
		t.Fatalf("unexpected role after update: %+v", updated)
	}
	if updated.UpdateDate.IsZero() {
		t.Fatalf("expected updateDate to be set")
	}

	if _, err := svc.Update(ctx, "missing", "X", ""); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRoleService_Create_ResolverFailure(t *testing.T) {
	repo := newStubRoleRepo()
	params := newStubParamClient() // no EntityStatus parameter
	svc := NewRoleService(repo, NewStatusResolver(params), zerolog.Nop())

	if _, err := svc.Create(context.Background(), "X", ""); err == nil {
		t.Fatalf("expected error when resolver fails")
	}
	if len(repo.roles) != 0 {
		t.Fatalf("no role must be written when the resolver fails")
	}
}

func TestRoleService_List(t *testing.T) {
	svc, _, _ := newTestRoleService()
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		if _, err := svc.Create(ctx, name, ""); err != nil {
			t.Fatalf("create %s failed: %v", name, err)
		}
	}

	roles, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(roles) != 3 {
		t.Fatalf("expected 3 roles, got %d", len(roles))
	}
}

func TestRoleService_DefaultUserRole(t *testing.T) {
	svc, _, _ := newTestRoleService()
	ctx := context.Background()

	if _, err := svc.DefaultUserRole(ctx); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound before seeding, got %v", err)
	}

	created, err := svc.Create(ctx, domain.DefaultUserRole, "standard access")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	role, err := svc.DefaultUserRole(ctx)
	if err != nil {
		t.Fatalf("DefaultUserRole failed: %v", err)
	}
	if role.ID != created.ID {
		t.Fatalf("expected role %q, got %q", created.ID, role.ID)
	}
}
