package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/diceprojects/auth-system/internal/core/domain"
	"github.com/diceprojects/auth-system/internal/core/ports"
)

const (
	// defaultTokenTTL applies when the persisted parameter carries no expiry.
	defaultTokenTTL = 3600000 * time.Millisecond
	signingKeyBytes = 32
)

// secretPayload is the JSON value stored under the jwtSecretKey parameter.
type secretPayload struct {
	KeyApplication string `json:"keyApplication"`
	TimeExpire     string `json:"timeExpire"`
}

// TokenService mints and verifies HS256 tokens. The signing key and TTL are
// resolved once inside NewTokenService and never mutated afterwards, so every
// request reads an immutable configuration value instead of racing a lazy
// initializer.
type TokenService struct {
	users  ports.UserService
	key    []byte
	ttl    time.Duration
	logger zerolog.Logger
}

// NewTokenService loads the jwtSecretKey parameter from the configuration
// service, or generates and persists a fresh key when none exists. Concurrent
// first boots both write the parameter; the configuration service's upsert
// keeps that benign.
func NewTokenService(ctx context.Context, users ports.UserService, params ports.ParameterClient, logger zerolog.Logger) (*TokenService, error) {
	key, ttl, err := resolveSigningKey(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("token service init: %w", err)
	}
	logger.Info().Dur("ttl", ttl).Msg("jwt signing key initialized")
	return &TokenService{users: users, key: key, ttl: ttl, logger: logger}, nil
}

func resolveSigningKey(ctx context.Context, params ports.ParameterClient) ([]byte, time.Duration, error) {
	param, err := params.GetByName(ctx, domain.ParamJWTSecretKey)
	if err == nil {
		return parseSecretParameter(param)
	}
	if !errors.Is(err, domain.ErrParameterNotFound) {
		return nil, 0, err
	}

	raw := make([]byte, signingKeyBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, 0, err
	}
	encoded := base64.StdEncoding.EncodeToString(raw)

	payload, err := json.Marshal(secretPayload{
		KeyApplication: encoded,
		TimeExpire:     strconv.FormatInt(defaultTokenTTL.Milliseconds(), 10),
	})
	if err != nil {
		return nil, 0, err
	}

	if _, err := params.Save(ctx, &domain.Parameter{
		Name:        domain.ParamJWTSecretKey,
		Value:       string(payload),
		Description: "JWT secret key and expiration time for signing tokens",
	}); err != nil {
		return nil, 0, err
	}
	return []byte(encoded), defaultTokenTTL, nil
}

// parseSecretParameter accepts either the JSON payload written by this
// service or a legacy raw-string secret with no expiry.
func parseSecretParameter(param *domain.Parameter) ([]byte, time.Duration, error) {
	var payload secretPayload
	if err := json.Unmarshal([]byte(param.Value), &payload); err != nil || payload.KeyApplication == "" {
		if strings.TrimSpace(param.Value) == "" {
			return nil, 0, fmt.Errorf("parameter %q has an empty value", param.Name)
		}
		return []byte(param.Value), defaultTokenTTL, nil
	}

	ttl := defaultTokenTTL
	if payload.TimeExpire != "" {
		ms, err := strconv.ParseInt(payload.TimeExpire, 10, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("parameter %q has a bad timeExpire: %w", param.Name, err)
		}
		ttl = time.Duration(ms) * time.Millisecond
	}
	return []byte(payload.KeyApplication), ttl, nil
}

// Issue signs a token for the username. Role names are loaded through the
// user directory and comma-joined into the roles claim.
func (s *TokenService) Issue(ctx context.Context, username string) (string, error) {
	details, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if details == nil {
		return "", domain.ErrUserNotFound
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   details.Username,
		"roles": strings.Join(details.RoleNames(), ","),
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Claims parses and verifies the token, rejecting any signing method other
// than the one this service issues.
func (s *TokenService) Claims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// Expiry extracts the exp claim from a verified token.
func (s *TokenService) Expiry(token string) (time.Time, error) {
	claims, err := s.Claims(token)
	if err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, domain.ErrInvalidToken
	}
	return exp.Time, nil
}

// Validate reports whether the token parses and verifies. Failures are logged
// and degrade to false; callers never see an error from here.
func (s *TokenService) Validate(token string) bool {
	if _, err := s.Claims(token); err != nil {
		s.logger.Debug().Err(err).Msg("token validation failed")
		return false
	}
	return true
}
