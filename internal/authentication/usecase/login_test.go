package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"reportlog-srv/internal/authentication"
	"reportlog-srv/internal/authentication/repository"
	"reportlog-srv/internal/model"
	"reportlog-srv/pkg/jwt"
	"reportlog-srv/pkg/log"
)

type fakeUserRepo struct {
	users map[string]model.User
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	user, ok := r.users[username]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, opts repository.CreateUserOptions) (model.User, error) {
	user := model.User{
		ID:        "user-new",
		Username:  opts.Username,
		TokenHash: opts.TokenHash,
		Groups:    opts.Groups,
	}
	r.users[opts.Username] = user
	return user, nil
}

func testJWTManager(t *testing.T) *jwt.Manager {
	t.Helper()
	m, err := jwt.New(jwt.Config{
		SecretKey: "0123456789abcdef0123456789abcdef",
		Issuer:    "reportlog-srv",
		Audience:  []string{"reportlog-srv"},
		TTL:       time.Hour,
	})
	if err != nil {
		t.Fatalf("jwt.New failed: %v", err)
	}
	return m
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("alice-token"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}

	repo := &fakeUserRepo{users: map[string]model.User{
		"alice": {
			ID:        "user-1",
			Username:  "alice",
			TokenHash: string(hash),
			Groups:    []int{1, 3},
		},
	}}
	manager := testJWTManager(t)
	uc := New(repo, manager, log.Init(log.ZapConfig{Level: "error", Encoding: "console"}))

	t.Run("valid credentials", func(t *testing.T) {
		out, err := uc.Login(ctx, authentication.LoginInput{Username: "alice", Token: "alice-token"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if out.UserID != "user-1" || out.Username != "alice" {
			t.Errorf("Identity mismatch: %+v", out)
		}
		if out.ExpiresIn != 3600 {
			t.Errorf("ExpiresIn mismatch: got %d, want 3600", out.ExpiresIn)
		}

		claims, err := manager.VerifyToken(out.AccessToken)
		if err != nil {
			t.Fatalf("Issued token does not verify: %v", err)
		}
		if claims.Subject != "user-1" || claims.Username != "alice" {
			t.Errorf("Claims mismatch: %+v", claims)
		}
		if len(claims.Groups) != 2 || claims.Groups[0] != 1 || claims.Groups[1] != 3 {
			t.Errorf("Groups mismatch: %v", claims.Groups)
		}
	})

	t.Run("wrong token", func(t *testing.T) {
		_, err := uc.Login(ctx, authentication.LoginInput{Username: "alice", Token: "wrong"})
		if !errors.Is(err, authentication.ErrInvalidCredentials) {
			t.Errorf("Error mismatch: got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown user is indistinguishable", func(t *testing.T) {
		_, err := uc.Login(ctx, authentication.LoginInput{Username: "mallory", Token: "anything"})
		if !errors.Is(err, authentication.ErrInvalidCredentials) {
			t.Errorf("Error mismatch: got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := uc.Login(ctx, authentication.LoginInput{Username: "  ", Token: "x"})
		if !errors.Is(err, authentication.ErrUsernameRequired) {
			t.Errorf("Error mismatch: got %v, want ErrUsernameRequired", err)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := uc.Login(ctx, authentication.LoginInput{Username: "alice"})
		if !errors.Is(err, authentication.ErrTokenRequired) {
			t.Errorf("Error mismatch: got %v, want ErrTokenRequired", err)
		}
	})
}
