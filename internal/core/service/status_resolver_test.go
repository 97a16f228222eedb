package service

import (
	"context"
	"testing"

	"github.com/diceprojects/auth-system/internal/core/domain"
)

func TestStatusResolver_ActiveStatus(t *testing.T) {
	params := newStubParamClient()
	params.setEntityStatus("Active")

	status, err := NewStatusResolver(params).ActiveStatus(context.Background())
	if err != nil {
		t.Fatalf("ActiveStatus returned error: %v", err)
	}
	if status != "Active" {
		t.Fatalf("expected Active, got %q", status)
	}
}

func TestStatusResolver_MissingParameter(t *testing.T) {
	params := newStubParamClient()

	if _, err := NewStatusResolver(params).ActiveStatus(context.Background()); err == nil {
		t.Fatalf("expected error for missing parameter")
	}
}

func TestStatusResolver_MalformedValue(t *testing.T) {
	params := newStubParamClient()
	params.params[domain.ParamEntityStatus] = &domain.Parameter{
		Name:  domain.ParamEntityStatus,
		Value: "not json",
	}

	if _, err := NewStatusResolver(params).ActiveStatus(context.Background()); err == nil {
		t.Fatalf("expected error for malformed value")
	}
}

func TestStatusResolver_MissingKey(t *testing.T) {
	params := newStubParamClient()
	params.params[domain.ParamEntityStatus] = &domain.Parameter{
		Name:  domain.ParamEntityStatus,
		Value: `{"status2":"Inactive"}`,
	}

	if _, err := NewStatusResolver(params).ActiveStatus(context.Background()); err == nil {
		t.Fatalf("expected error for missing status1 key")
	}
}
