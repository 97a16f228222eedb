package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/diceprojects/auth-system/internal/api/metrics"
	"github.com/diceprojects/auth-system/internal/core/ports"
)

const principalKey = "principal"

// Principal is the authenticated identity reconstructed from a validated
// bearer token.
type Principal struct {
	Username string
	Roles    []string
}

// HasRole reports whether the principal carries the role name.
func (p *Principal) HasRole(name string) bool {
	for _, r := range p.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// CurrentPrincipal returns the principal stored by BearerAuth, or nil when
// the request is anonymous.
func CurrentPrincipal(c echo.Context) *Principal {
	p, _ := c.Get(principalKey).(*Principal)
	return p
}

// BearerAuth extracts and validates the Authorization bearer token. A valid
// token puts the principal into the request context; anything else (missing
// header, wrong scheme, failed validation) is logged and the request proceeds
// anonymously. Enforcement is RequireAuth's job, so a broken token can never
// surface as a 500 from here.
func BearerAuth(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				log.Debug().Str("path", c.Path()).Msg("malformed authorization header")
				return next(c)
			}

			raw := parts[1]
			if !tokens.Validate(raw) {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				log.Debug().Str("path", c.Path()).Msg("bearer token rejected")
				return next(c)
			}
			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()

			claims, err := tokens.Claims(raw)
			if err != nil {
				log.Debug().Err(err).Msg("failed to read token claims")
				return next(c)
			}

			principal := &Principal{}
			if sub, ok := claims["sub"].(string); ok {
				principal.Username = sub
			}
			if roles, ok := claims["roles"].(string); ok && roles != "" {
				principal.Roles = strings.Split(roles, ",")
			}
			c.Set(principalKey, principal)

			return next(c)
		}
	}
}

// RequireAuth rejects anonymous requests with 401 unless the path matches an
// allow-list prefix (swagger assets and the login surface).
func RequireAuth(allowlist ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range allowlist {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}
			if CurrentPrincipal(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid bearer token")
			}
			return next(c)
		}
	}
}
