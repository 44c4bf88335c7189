package entities

import (
	"strings"
	"time"

	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

// RoadmapUpdate is a timestamped progress entry on a project. Exactly one
// update per project carries IsInitial=true: the entry synthesized from the
// idea's original post when it was promoted. Its CreatedAt equals the idea's
// creation time, so it always sorts first in the roadmap.
type RoadmapUpdate struct {
	ID        valueobjects.UpdateID
	ProjectID valueobjects.IdeaID
	AuthorID  valueobjects.UserID
	Title     string
	Body      string
	IsInitial bool
	CreatedAt time.Time
}

// NewRoadmapUpdate creates a follow-up roadmap entry authored by the project
// owner. The caller is responsible for checking that the target idea is a
// project and that the author owns it.
func NewRoadmapUpdate(projectID valueobjects.IdeaID, authorID valueobjects.UserID, title, body string) (*RoadmapUpdate, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, pkgerrors.NewValidationError("title cannot be empty")
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, pkgerrors.NewValidationError("body cannot be empty")
	}

	return &RoadmapUpdate{
		ID:        valueobjects.NewUpdateID(),
		ProjectID: projectID,
		AuthorID:  authorID,
		Title:     title,
		Body:      body,
		IsInitial: false,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewInitialRoadmapUpdate synthesizes the roadmap's first entry from the
// idea's original title, body, author, and creation time. It is created
// atomically with the promotion (or with the idea itself when posted as a
// project from the start).
func NewInitialRoadmapUpdate(idea *Idea) *RoadmapUpdate {
	return &RoadmapUpdate{
		ID:        valueobjects.NewUpdateID(),
		ProjectID: idea.ID,
		AuthorID:  idea.AuthorID,
		Title:     idea.Title,
		Body:      idea.Body,
		IsInitial: true,
		CreatedAt: idea.CreatedAt,
	}
}
