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

// IdeaHandler handles idea, roadmap, and comment requests
type IdeaHandler struct {
	ideas  *services.IdeaService
	feed   *services.FeedService
	logger *zap.Logger
}

// NewIdeaHandler creates a new idea handler
func NewIdeaHandler(ideas *services.IdeaService, feed *services.FeedService, logger *zap.Logger) *IdeaHandler {
	return &IdeaHandler{
		ideas:  ideas,
		feed:   feed,
		logger: logger,
	}
}

// CreateIdeaRequest represents the request body for creating an idea
type CreateIdeaRequest struct {
	Title     string   `json:"title" validate:"required,max=200"`
	Body      string   `json:"body" validate:"required,max=10000"`
	Tags      []string `json:"tags,omitempty" validate:"omitempty,max=10,dive,max=50"`
	IsProject bool     `json:"isProject,omitempty"`
}

// PostUpdateRequest represents the request body for a roadmap update
type PostUpdateRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required,max=10000"`
}

// PostCommentRequest represents the request body for a comment
type PostCommentRequest struct {
	Body string `json:"body" validate:"required,max=5000"`
}

// CreateIdea handles POST /ideas
func (h *IdeaHandler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	actorID, err := currentUserID(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	var req CreateIdeaRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	idea, err := h.ideas.CreateIdea(r.Context(), actorID, req.Title, req.Body, req.Tags, req.IsProject)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	view, err := h.feed.ComposeIdeaDetail(r.Context(), idea.ID, actorID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, view)
}

// GetIdea handles GET /ideas/{ideaID}
func (h *IdeaHandler) GetIdea(w http.ResponseWriter, r *http.Request) {
	ideaID, err := ideaIDParam(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	view, err := h.feed.ComposeIdeaDetail(r.Context(), ideaID, optionalUserID(r))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, view)
}

// DeleteIdea handles DELETE /ideas/{ideaID}
func (h *IdeaHandler) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	actorID, err := currentUserID(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	ideaID, err := ideaIDParam(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	if err := h.ideas.DeleteIdea(r.Context(), ideaID, actorID); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "idea deleted"})
}

// Promote handles POST /ideas/{ideaID}/promote
func (h *IdeaHandler) Promote(w http.ResponseWriter, r *http.Request) {
	actorID, err := currentUserID(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	ideaID, err := ideaIDParam(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	idea, err := h.ideas.PromoteToProject(r.Context(), ideaID, actorID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	view, err := h.feed.ComposeIdeaDetail(r.Context(), idea.ID, actorID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, view)
}

// GetRoadmap handles GET /ideas/{ideaID}/roadmap
func (h *IdeaHandler) GetRoadmap(w http.ResponseWriter, r *http.Request) {
	ideaID, err := ideaIDParam(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	updates, err := h.feed.ComposeRoadmap(r.Context(), ideaID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, updates)
}

// PostUpdate handles POST /ideas/{ideaID}/roadmap
func (h *IdeaHandler) PostUpdate(w http.ResponseWriter, r *http.Request) {
	actorID, err := currentUserID(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	ideaID, err := ideaIDParam(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	var req PostUpdateRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	update, err := h.ideas.PostRoadmapUpdate(r.Context(), ideaID, actorID, req.Title, req.Body)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":        update.ID.String(),
		"title":     update.Title,
		"body":      update.Body,
		"isInitial": update.IsInitial,
		"createdAt": update.CreatedAt,
	})
}

// ListComments handles GET /ideas/{ideaID}/comments
func (h *IdeaHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	ideaID, err := ideaIDParam(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	comments, err := h.feed.ListComments(r.Context(), ideaID, optionalUserID(r))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, comments)
}

// PostComment handles POST /ideas/{ideaID}/comments
func (h *IdeaHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	actorID, err := currentUserID(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	ideaID, err := ideaIDParam(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	var req PostCommentRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	comment, err := h.ideas.PostComment(r.Context(), ideaID, actorID, req.Body)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":        comment.ID.String(),
		"body":      comment.Body,
		"createdAt": comment.CreatedAt,
	})
}

// DeleteComment handles DELETE /comments/{commentID}
func (h *IdeaHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	actorID, err := currentUserID(r)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	commentID, err := valueobjects.NewCommentIDFromString(chi.URLParam(r, "commentID"))
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	if err := h.ideas.DeleteComment(r.Context(), commentID, actorID); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}

func ideaIDParam(r *http.Request) (valueobjects.IdeaID, error) {
	ideaID, err := valueobjects.NewIdeaIDFromString(chi.URLParam(r, "ideaID"))
	if err != nil {
		return valueobjects.IdeaID{}, pkgerrors.NewValidationError(err.Error())
	}
	return ideaID, nil
}
