package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"reportlog-srv/internal/authentication"
	"reportlog-srv/internal/authentication/repository"
)

// Login verifies the opaque user token against its bcrypt hash and issues a
// session JWT. An unknown user and a wrong token are indistinguishable to the
// caller.
func (uc *implUseCase) Login(ctx context.Context, input authentication.LoginInput) (authentication.LoginOutput, error) {
	if strings.TrimSpace(input.Username) == "" {
		return authentication.LoginOutput{}, authentication.ErrUsernameRequired
	}
	if input.Token == "" {
		return authentication.LoginOutput{}, authentication.ErrTokenRequired
	}

	user, err := uc.repo.GetUserByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return authentication.LoginOutput{}, authentication.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "authentication.usecase.Login: Failed to get user %s: %v", input.Username, err)
		return authentication.LoginOutput{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.TokenHash), []byte(input.Token)); err != nil {
		return authentication.LoginOutput{}, authentication.ErrInvalidCredentials
	}

	token, err := uc.jwtManager.GenerateToken(user.ID, user.Username, user.Groups)
	if err != nil {
		uc.l.Errorf(ctx, "authentication.usecase.Login: Failed to generate token for %s: %v", user.Username, err)
		return authentication.LoginOutput{}, authentication.ErrTokenIssueFailed
	}

	return authentication.LoginOutput{
		AccessToken: token,
		ExpiresIn:   int64(uc.jwtManager.TTL().Seconds()),
		UserID:      user.ID,
		Username:    user.Username,
		Groups:      user.Groups,
	}, nil
}
