package authentication

import "errors"

var (
	ErrUsernameRequired   = errors.New("user_name is required")
	ErrTokenRequired      = errors.New("token is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenIssueFailed   = errors.New("failed to issue session token")
)
