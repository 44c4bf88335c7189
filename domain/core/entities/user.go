package entities

import (
	"strings"
	"time"

	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

// User is a registered member of the platform. The username is immutable
// after creation and serves as the public handle; email is the credential
// lookup key and is never exposed on public profiles.
type User struct {
	ID           valueobjects.UserID
	Name         string
	Username     string
	Email        string
	PasswordHash string
	AvatarRef    string
	Bio          string
	Location     string
	WebsiteRef   string
	JoinedAt     time.Time
}

// NewUser creates a new user with validated required fields. The password
// hash must already be computed by the caller; this entity never sees a
// plaintext password.
func NewUser(name, username, email, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, pkgerrors.NewValidationError("name cannot be empty")
	}
	if username == "" {
		return nil, pkgerrors.NewValidationError("username cannot be empty")
	}
	if email == "" {
		return nil, pkgerrors.NewValidationError("email cannot be empty")
	}
	if passwordHash == "" {
		return nil, pkgerrors.NewValidationError("password hash cannot be empty")
	}

	return &User{
		ID:           valueobjects.NewUserID(),
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		JoinedAt:     time.Now().UTC(),
	}, nil
}
