package auth

import (
	"context"
	"errors"
)

// UserContext carries the authenticated identity through a request
type UserContext struct {
	UserID string
	Email  string
}

type contextKey string

const userContextKey contextKey = "user_context"

// ErrNoUserInContext is returned when no authenticated user is attached to
// the context
var ErrNoUserInContext = errors.New("no user in context")

// SetUserInContext attaches the authenticated user to a context
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext extracts the authenticated user from a context
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, ErrNoUserInContext
	}
	return user, nil
}
