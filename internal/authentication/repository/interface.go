package repository

import (
	"context"

	"reportlog-srv/internal/model"
)

//go:generate mockery --name UserRepository
type UserRepository interface {
	// GetUserByUsername returns the user record for user_name, or
	// ErrUserNotFound when absent.
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	// CreateUser registers a viewer with a pre-hashed token.
	CreateUser(ctx context.Context, opts CreateUserOptions) (model.User, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	UserRepository
}
