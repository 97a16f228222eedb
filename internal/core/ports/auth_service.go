package ports

import "context"

// AuthResponse is the login result returned to clients. ExpiryDate carries
// the full token expiry timestamp in RFC 3339.
type AuthResponse struct {
	Username   string `json:"username"`
	Token      string `json:"token"`
	ExpiryDate string `json:"expiryDate"`
}

// AuthService orchestrates credential verification and token issuance.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*AuthResponse, error)
}

// LoginLimiter throttles repeated failed logins per username.
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted right now.
	Allow(ctx context.Context, username string) (bool, error)
	// RecordFailure notes a failed attempt.
	RecordFailure(ctx context.Context, username string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, username string) error
}
