package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/diceprojects/auth-system/internal/core/domain"
)

type stubLoginLimiter struct {
	allowed  bool
	failures int
	resets   int
}

func (s *stubLoginLimiter) Allow(context.Context, string) (bool, error) { return s.allowed, nil }
func (s *stubLoginLimiter) RecordFailure(context.Context, string) error { s.failures++; return nil }
func (s *stubLoginLimiter) Reset(context.Context, string) error         { s.resets++; return nil }

func newAuthFixture(t *testing.T, limiter *stubLoginLimiter) (*AuthService, *userFixture) {
	t.Helper()
	tokens, f := newTokenFixture(t)

	f.seedRole(t, domain.DefaultUserRole, "")
	if _, err := f.users.RegisterUser(context.Background(), "alice", "secret123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if limiter == nil {
		return NewAuthService(f.userRepo, tokens, nil, zerolog.Nop()), f
	}
	return NewAuthService(f.userRepo, tokens, limiter, zerolog.Nop()), f
}

func TestAuthService_Authenticate(t *testing.T) {
	limiter := &stubLoginLimiter{allowed: true}
	svc, _ := newAuthFixture(t, limiter)

	resp, err := svc.Authenticate(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if resp.Username != "alice" {
		t.Fatalf("unexpected username %q", resp.Username)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token")
	}
	if _, err := time.Parse(time.RFC3339, resp.ExpiryDate); err != nil {
		t.Fatalf("expiry %q is not RFC3339: %v", resp.ExpiryDate, err)
	}
	if limiter.resets != 1 {
		t.Fatalf("expected the failure counter to be reset")
	}
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	svc, _ := newAuthFixture(t, nil)

	if _, err := svc.Authenticate(context.Background(), "ghost", "whatever"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Authenticate_EmptyPassword(t *testing.T) {
	svc, _ := newAuthFixture(t, nil)

	if _, err := svc.Authenticate(context.Background(), "alice", ""); !errors.Is(err, domain.ErrPasswordRequired) {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	limiter := &stubLoginLimiter{allowed: true}
	svc, _ := newAuthFixture(t, limiter)

	if _, err := svc.Authenticate(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected the failure to be recorded")
	}
}

func TestAuthService_Authenticate_Throttled(t *testing.T) {
	svc, _ := newAuthFixture(t, &stubLoginLimiter{allowed: false})

	if _, err := svc.Authenticate(context.Background(), "alice", "secret123"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Authenticate_NilLimiter(t *testing.T) {
	svc, _ := newAuthFixture(t, nil)

	if _, err := svc.Authenticate(context.Background(), "alice", "secret123"); err != nil {
		t.Fatalf("nil limiter must not break logins: %v", err)
	}
}
