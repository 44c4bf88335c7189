package handlers

import (
	"net/http"

	"ideahub-backend/domain/core/valueobjects"
	"ideahub-backend/pkg/auth"
	pkgerrors "ideahub-backend/pkg/errors"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// currentUserID resolves the authenticated actor from the request context
func currentUserID(r *http.Request) (valueobjects.UserID, error) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		return valueobjects.UserID{}, pkgerrors.NewUnauthenticatedError("")
	}
	userID, err := valueobjects.NewUserIDFromString(userCtx.UserID)
	if err != nil {
		return valueobjects.UserID{}, pkgerrors.NewUnauthenticatedError("invalid user identity")
	}
	return userID, nil
}

// optionalUserID resolves the viewer when authenticated, or returns the zero
// UserID for anonymous requests
func optionalUserID(r *http.Request) valueobjects.UserID {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		return valueobjects.UserID{}
	}
	userID, err := valueobjects.NewUserIDFromString(userCtx.UserID)
	if err != nil {
		return valueobjects.UserID{}
	}
	return userID
}
