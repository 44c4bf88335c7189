package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"ideahub-backend/application/services"
	"ideahub-backend/pkg/common"
)

// FeedHandler handles feed requests
type FeedHandler struct {
	feed   *services.FeedService
	logger *zap.Logger
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feed *services.FeedService, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{
		feed:   feed,
		logger: logger,
	}
}

// GetFeed handles GET /feed?scope=all|following
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	viewerID, err := currentUserID(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	scope, err := services.ParseFeedScope(r.URL.Query().Get("scope"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	ideas, err := h.feed.ComposeFeed(r.Context(), viewerID, scope)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, ideas)
}
