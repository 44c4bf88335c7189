package sqlite

import (
	"context"
	"database/sql"
	"time"

	"ideahub-backend/domain/core/entities"
	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

type userRepository struct {
	q dbtx
}

func (r *userRepository) Save(ctx context.Context, user *entities.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, name, username, email, password_hash, avatar_ref, bio, location, website_ref, joined_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			avatar_ref = excluded.avatar_ref,
			bio = excluded.bio,
			location = excluded.location,
			website_ref = excluded.website_ref`,
		user.ID.String(), user.Name, user.Username, user.Email, user.PasswordHash,
		user.AvatarRef, user.Bio, user.Location, user.WebsiteRef, user.JoinedAt.UnixNano(),
	)
	if err != nil {
		return pkgerrors.NewDatabaseError("save user", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id valueobjects.UserID) (*entities.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, name, username, email, password_hash, avatar_ref, bio, location, website_ref, joined_at
		FROM users WHERE id = ?`, id.String())
	return scanUser(row)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, name, username, email, password_hash, avatar_ref, bio, location, website_ref, joined_at
		FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, name, username, email, password_hash, avatar_ref, bio, location, website_ref, joined_at
		FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*entities.User, error) {
	var (
		user     entities.User
		id       string
		joinedAt int64
	)
	err := row.Scan(&id, &user.Name, &user.Username, &user.Email, &user.PasswordHash,
		&user.AvatarRef, &user.Bio, &user.Location, &user.WebsiteRef, &joinedAt)
	if err == sql.ErrNoRows {
		return nil, pkgerrors.NewNotFoundError("user")
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("scan user", err)
	}

	user.ID, err = valueobjects.NewUserIDFromString(id)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("scan user", err)
	}
	user.JoinedAt = time.Unix(0, joinedAt).UTC()
	return &user, nil
}
