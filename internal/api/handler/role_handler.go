package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/diceprojects/auth-system/internal/core/ports"
)

type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// GetByName returns a role by its name.
//
// @Summary      Get a role by name
// @Tags         role
// @Produce      json
// @Param        roleName  path      string  true  "Role name"
// @Success      200       {object}  domain.Role
// @Failure      404       {object}  map[string]string
// @Router       /api/role/getRoleByName/{roleName} [get]
func (h *RoleHandler) GetByName(c echo.Context) error {
	role, err := h.roleService.FindByName(c.Request().Context(), c.Param("roleName"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Create creates a new role with the configured active status.
//
// @Summary      Create a role
// @Tags         role
// @Produce      json
// @Param        roleName     query     string  true   "Role name"
// @Param        description  query     string  false  "Role description"
// @Success      201          {object}  domain.Role
// @Failure      400          {object}  map[string]string
// @Router       /api/role/create [post]
func (h *RoleHandler) Create(c echo.Context) error {
	name := c.QueryParam("roleName")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "roleName is required")
	}

	role, err := h.roleService.Create(c.Request().Context(), name, c.QueryParam("description"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, role)
}

// Update renames an existing role.
//
// @Summary      Update a role
// @Tags         role
// @Produce      json
// @Param        roleId       path      string  true   "Role id"
// @Param        roleName     query     string  true   "New role name"
// @Param        description  query     string  false  "New description"
// @Success      200          {object}  domain.Role
// @Failure      404          {object}  map[string]string
// @Router       /api/role/update/{roleId} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	name := c.QueryParam("roleName")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "roleName is required")
	}

	role, err := h.roleService.Update(c.Request().Context(), c.Param("roleId"), name, c.QueryParam("description"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// ChangeStatus moves a role to the given status; a role that already carries
// the status yields a notice instead of a write.
//
// @Summary      Change a role's status
// @Tags         role
// @Produce      json
// @Param        roleId  path      string  true  "Role id"
// @Param        status  query     string  true  "Target status"
// @Success      200     {object}  ports.ChangeStatusResult
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/role/changeStatus/{roleId} [put]
func (h *RoleHandler) ChangeStatus(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}

	result, err := h.roleService.ChangeStatus(c.Request().Context(), c.Param("roleId"), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// List returns every role.
//
// @Summary      List roles
// @Tags         role
// @Produce      json
// @Success      200  {array}  domain.Role
// @Router       /api/role/listRoles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}
