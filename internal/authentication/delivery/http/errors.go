package http

import (
	"errors"

	"reportlog-srv/internal/authentication"
	pkgErrors "reportlog-srv/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(400, "Wrong body")
	errUsernameRequired   = pkgErrors.NewHTTPError(400, "Username is required")
	errTokenRequired      = pkgErrors.NewHTTPError(400, "Token is required")
	errInvalidCredentials = pkgErrors.NewHTTPError(401, "Invalid credentials")
	errTokenIssueFailed   = pkgErrors.NewHTTPError(500, "Failed to issue session token")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, authentication.ErrUsernameRequired):
		return errUsernameRequired
	case errors.Is(err, authentication.ErrTokenRequired):
		return errTokenRequired
	case errors.Is(err, authentication.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, authentication.ErrTokenIssueFailed):
		return errTokenIssueFailed
	default:
		return err
	}
}
