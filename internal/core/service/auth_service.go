package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/diceprojects/auth-system/internal/core/domain"
	"github.com/diceprojects/auth-system/internal/core/ports"
)

// AuthService orchestrates the login flow: credential check, throttling,
// token issuance.
type AuthService struct {
	repo    ports.UserRepository
	tokens  ports.TokenService
	limiter ports.LoginLimiter // optional; nil disables throttling
	logger  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, limiter: limiter, logger: logger}
}

// Authenticate verifies the credentials and returns a signed token with its
// expiry. Unknown usernames are not found, empty passwords are a bad request,
// mismatches are unauthorized.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*ports.AuthResponse, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, username)
		if err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("login limiter check failed, allowing attempt")
		} else if !allowed {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if password == "" {
		return nil, domain.ErrPasswordRequired
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if s.limiter != nil {
			if lerr := s.limiter.RecordFailure(ctx, username); lerr != nil {
				s.logger.Warn().Err(lerr).Str("username", username).Msg("failed to record login failure")
			}
		}
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	expiry, err := s.tokens.Expiry(token)
	if err != nil {
		return nil, err
	}

	if s.limiter != nil {
		if lerr := s.limiter.Reset(ctx, username); lerr != nil {
			s.logger.Warn().Err(lerr).Str("username", username).Msg("failed to reset login counter")
		}
	}

	s.logger.Info().Str("username", user.Username).Time("expiry", expiry).Msg("user authenticated")

	return &ports.AuthResponse{
		Username:   user.Username,
		Token:      token,
		ExpiryDate: expiry.UTC().Format(time.RFC3339),
	}, nil
}
