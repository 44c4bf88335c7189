package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ideahub-backend/application/services"
	"ideahub-backend/domain/core/valueobjects"
	"ideahub-backend/pkg/common"
	pkgerrors "ideahub-backend/pkg/errors"
)

// UserHandler handles public profile requests
type UserHandler struct {
	identity *services.IdentityService
	feed     *services.FeedService
	logger   *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(identity *services.IdentityService, feed *services.FeedService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		identity: identity,
		feed:     feed,
		logger:   logger,
	}
}

// GetProfile handles GET /users/{username}
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profile, err := h.identity.Profile(r.Context(), username, optionalUserID(r))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, profile)
}

// GetUserIdeas handles GET /users/{username}/ideas
func (h *UserHandler) GetUserIdeas(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profile, err := h.identity.Profile(r.Context(), username, valueobjects.UserID{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	authorID, err := valueobjects.NewUserIDFromString(profile.ID)
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewInternalError("invalid profile identity"))
		return
	}

	ideas, err := h.feed.ListByAuthor(r.Context(), authorID, optionalUserID(r))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, ideas)
}
