package authentication

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Login verifies a user's opaque token against its stored hash and issues
	// a session JWT carrying the user's groups.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
}
