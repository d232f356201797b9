package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"reportlog-srv/internal/authentication/repository"
	"reportlog-srv/internal/model"
)

// GetUserByUsername - Get one user by unique user_name.
func (r *implRepository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	query := `
		SELECT id, user_name, user_token_hash, user_groups, description, created_at
		FROM reportlog.user_data
		WHERE user_name = $1
	`

	var (
		user       model.User
		groupsJSON []byte
	)

	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.TokenHash, &groupsJSON,
		&user.Description, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrUserNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "authentication.repository.postgre.GetUserByUsername: Failed to get user: %v", err)
		return model.User{}, err
	}

	user.Groups = []int{}
	if len(groupsJSON) > 0 {
		if err := json.Unmarshal(groupsJSON, &user.Groups); err != nil {
			r.l.Errorf(ctx, "authentication.repository.postgre.GetUserByUsername: Failed to decode user_groups: %v", err)
			return model.User{}, err
		}
	}

	return user, nil
}

// CreateUser - Register a viewer with a pre-hashed token.
func (r *implRepository) CreateUser(ctx context.Context, opts repository.CreateUserOptions) (model.User, error) {
	id := uuid.New().String()

	groups := opts.Groups
	if groups == nil {
		groups = []int{}
	}
	groupsJSON, err := json.Marshal(groups)
	if err != nil {
		r.l.Errorf(ctx, "authentication.repository.postgre.CreateUser: Failed to encode groups: %v", err)
		return model.User{}, repository.ErrUserCreateFailed
	}

	query := `
		INSERT INTO reportlog.user_data (id, user_name, user_token_hash, user_groups, description, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, user_name, user_token_hash, description, created_at
	`

	var user model.User
	err = r.db.QueryRowContext(ctx, query,
		id, opts.Username, opts.TokenHash, groupsJSON, opts.Description,
	).Scan(&user.ID, &user.Username, &user.TokenHash, &user.Description, &user.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "authentication.repository.postgre.CreateUser: Failed to insert user: %v", err)
		return model.User{}, repository.ErrUserCreateFailed
	}

	user.Groups = groups
	return user, nil
}
