package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ideahub-backend/application/services"
	"ideahub-backend/domain/core/valueobjects"
	"ideahub-backend/pkg/common"
	pkgerrors "ideahub-backend/pkg/errors"
	"ideahub-backend/pkg/utils"
)

// SocialHandler handles follow, like, and bookmark requests
type SocialHandler struct {
	graph  *services.SocialGraphService
	logger *zap.Logger
}

// NewSocialHandler creates a new social handler
func NewSocialHandler(graph *services.SocialGraphService, logger *zap.Logger) *SocialHandler {
	return &SocialHandler{
		graph:  graph,
		logger: logger,
	}
}

// FollowRequest represents the request body for follow and unfollow
type FollowRequest struct {
	TargetID   string `json:"targetId" validate:"required"`
	TargetKind string `json:"targetKind" validate:"required,oneof=user project"`
}

// Follow handles PUT /follows
func (h *SocialHandler) Follow(w http.ResponseWriter, r *http.Request) {
	actorID, req, err := h.parseFollowRequest(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	kind, _ := valueobjects.ParseFollowTargetKind(req.TargetKind)
	if err := h.graph.Follow(r.Context(), actorID, req.TargetID, kind); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]bool{"following": true})
}

// Unfollow handles DELETE /follows
func (h *SocialHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	actorID, req, err := h.parseFollowRequest(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	kind, _ := valueobjects.ParseFollowTargetKind(req.TargetKind)
	if err := h.graph.Unfollow(r.Context(), actorID, req.TargetID, kind); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]bool{"following": false})
}

// ToggleIdeaLike handles POST /ideas/{ideaID}/like
func (h *SocialHandler) ToggleIdeaLike(w http.ResponseWriter, r *http.Request) {
	h.toggleLike(w, r, chi.URLParam(r, "ideaID"), valueobjects.ReactionSubjectIdea)
}

// ToggleCommentLike handles POST /comments/{commentID}/like
func (h *SocialHandler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	h.toggleLike(w, r, chi.URLParam(r, "commentID"), valueobjects.ReactionSubjectComment)
}

// ToggleIdeaBookmark handles POST /ideas/{ideaID}/bookmark
func (h *SocialHandler) ToggleIdeaBookmark(w http.ResponseWriter, r *http.Request) {
	actorID, err := currentUserID(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.graph.ToggleBookmark(r.Context(), actorID, chi.URLParam(r, "ideaID"), valueobjects.ReactionSubjectIdea)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

func (h *SocialHandler) toggleLike(w http.ResponseWriter, r *http.Request, subjectID string, subjectKind valueobjects.ReactionSubjectKind) {
	actorID, err := currentUserID(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.graph.ToggleLike(r.Context(), actorID, subjectID, subjectKind)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

func (h *SocialHandler) parseFollowRequest(r *http.Request) (valueobjects.UserID, *FollowRequest, error) {
	actorID, err := currentUserID(r)
	if err != nil {
		return valueobjects.UserID{}, nil, err
	}

	var req FollowRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		return valueobjects.UserID{}, nil, pkgerrors.NewValidationError("invalid request body: " + err.Error())
	}
	if err := utils.ValidateStruct(req); err != nil {
		return valueobjects.UserID{}, nil, pkgerrors.NewValidationError(err.Error())
	}
	return actorID, &req, nil
}
