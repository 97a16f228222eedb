package ports

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService mints and verifies the bearer tokens carried by API clients.
// The signing key is resolved once at construction time and held immutably.
type TokenService interface {
	// Issue builds a signed token for the username with its role names
	// comma-joined into the roles claim.
	Issue(ctx context.Context, username string) (string, error)
	// Claims parses and verifies the token, returning its claim set.
	Claims(token string) (jwt.MapClaims, error)
	// Expiry extracts the exp claim.
	Expiry(token string) (time.Time, error)
	// Validate reports whether the token parses and verifies. Failures are
	// logged and reported as false; Validate never returns an error.
	Validate(token string) bool
}
