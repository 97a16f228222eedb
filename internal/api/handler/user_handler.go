package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/diceprojects/auth-system/internal/api/metrics"
	"github.com/diceprojects/auth-system/internal/core/domain"
	"github.com/diceprojects/auth-system/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// GetByUsername returns the details of an active user.
//
// @Summary      Get a user by username
// @Tags         user
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  domain.UserDetails
// @Failure      404       {object}  map[string]string
// @Router       /api/user/{username} [get]
func (h *UserHandler) GetByUsername(c echo.Context) error {
	details, err := h.userService.FindByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	if details == nil {
		return domain.ErrUserNotFound
	}
	return c.JSON(http.StatusOK, details)
}

// Create registers a new user and assigns the default USER role.
//
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New user credentials"
// @Success      201   {object}  domain.UserDetails
// @Failure      400   {object}  map[string]string
// @Router       /api/user/create [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	details, err := h.userService.RegisterUser(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registrationOutcome(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, details)
}

// AssignRole adds a role to an existing user.
//
// @Summary      Assign a role to a user
// @Tags         user
// @Produce      json
// @Param        username  query     string  true  "Username"
// @Param        roleId    query     string  true  "Role id"
// @Success      200       {object}  domain.UserDetails
// @Failure      404       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Router       /api/user/assign-role [post]
func (h *UserHandler) AssignRole(c echo.Context) error {
	username := c.QueryParam("username")
	roleID := c.QueryParam("roleId")
	if username == "" || roleID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and roleId are required")
	}

	details, err := h.userService.AssignRole(c.Request().Context(), username, roleID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

// UpdateToken overwrites a user's stored security token.
//
// @Summary      Update a user's security token
// @Tags         user
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Param        token   query     string  true  "New security token"
// @Success      200     {object}  domain.UserDetails
// @Failure      404     {object}  map[string]string
// @Router       /api/user/updateToken/{userId} [put]
func (h *UserHandler) UpdateToken(c echo.Context) error {
	details, err := h.userService.UpdateToken(c.Request().Context(), c.Param("userId"), c.QueryParam("token"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

// GetByID returns the details of a user by id.
//
// @Summary      Get a user by id
// @Tags         user
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  domain.UserDetails
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/user/findById/{userId} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	details, err := h.userService.FindByID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

func registrationOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInactiveRole), errors.Is(err, domain.ErrPasswordRequired):
		return "rejected"
	case errors.Is(err, domain.ErrUserExists):
		return "existing"
	default:
		return "error"
	}
}
