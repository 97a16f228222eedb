package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user already exists")
	ErrRoleNotFound      = errors.New("role not found")
	ErrRolesNotFound     = errors.New("roles not found")
	ErrParameterNotFound = errors.New("parameter not found")

	// ErrInvalidStatus rejects a status transition whose target label does
	// not match the configured active-status value.
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrInactiveRole rejects user creation when none of the requested roles
	// carry the active status.
	ErrInactiveRole = errors.New("cannot assign inactive roles")

	// ErrUserRolesNotFound is raised when a user's role id set resolves to
	// nothing; the account is structurally broken rather than missing.
	ErrUserRolesNotFound = errors.New("user roles not found or inactive")

	ErrRoleAlreadyAssigned = errors.New("role already assigned to user")
	ErrPasswordRequired    = errors.New("password must not be empty")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTooManyAttempts     = errors.New("too many login attempts")
)
