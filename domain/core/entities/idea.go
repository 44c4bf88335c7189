package entities

import (
	"strings"
	"time"

	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

// Idea is a user-authored post. An idea may be promoted to a project exactly
// once; the transition is one-directional and a project never reverts to a
// plain idea. Like and comment counts are derived from the edge and comment
// sets at read time and are not part of this entity.
type Idea struct {
	ID        valueobjects.IdeaID
	AuthorID  valueobjects.UserID
	Title     string
	Body      string
	Tags      []string
	IsProject bool
	CreatedAt time.Time
}

// NewIdea creates a new idea with validated content. Title and body must be
// non-empty after trimming; tags are normalized per the tag input contract.
func NewIdea(authorID valueobjects.UserID, title, body string, tags []string, markAsProject bool) (*Idea, error) {
	if authorID.IsZero() {
		return nil, pkgerrors.NewValidationError("author ID cannot be empty")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, pkgerrors.NewValidationError("title cannot be empty")
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, pkgerrors.NewValidationError("body cannot be empty")
	}

	return &Idea{
		ID:        valueobjects.NewIdeaID(),
		AuthorID:  authorID,
		Title:     title,
		Body:      body,
		Tags:      valueobjects.NormalizeTags(tags),
		IsProject: markAsProject,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Promote flips the idea into project state. Fails with AlreadyProject if
// the idea is already a project; the transition happens at most once.
func (i *Idea) Promote() error {
	if i.IsProject {
		return pkgerrors.NewAlreadyProjectError()
	}
	i.IsProject = true
	return nil
}

// IsOwnedBy reports whether the given user authored this idea
func (i *Idea) IsOwnedBy(userID valueobjects.UserID) bool {
	return i.AuthorID.Equals(userID)
}

// AddTag appends a single tag, ignoring empty and duplicate submissions
func (i *Idea) AddTag(raw string) {
	i.Tags = valueobjects.AppendTag(i.Tags, raw)
}
