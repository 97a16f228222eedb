package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/diceprojects/auth-system/internal/api/metrics"
	"github.com/diceprojects/auth-system/internal/core/domain"
	"github.com/diceprojects/auth-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

// Login authenticates a user and returns a JWT with its expiry.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.AuthResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, resp)
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}
