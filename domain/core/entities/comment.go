package entities

import (
	"strings"
	"time"

	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

// Comment is a user reply on an idea. Like the idea itself, its like count
// is derived from the reaction edge set rather than stored here.
type Comment struct {
	ID        valueobjects.CommentID
	IdeaID    valueobjects.IdeaID
	AuthorID  valueobjects.UserID
	Body      string
	CreatedAt time.Time
}

// NewComment creates a new comment with a validated non-empty body
func NewComment(ideaID valueobjects.IdeaID, authorID valueobjects.UserID, body string) (*Comment, error) {
	if ideaID.IsZero() {
		return nil, pkgerrors.NewValidationError("idea ID cannot be empty")
	}
	if authorID.IsZero() {
		return nil, pkgerrors.NewValidationError("author ID cannot be empty")
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, pkgerrors.NewValidationError("body cannot be empty")
	}

	return &Comment{
		ID:        valueobjects.NewCommentID(),
		IdeaID:    ideaID,
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// IsOwnedBy reports whether the given user authored this comment
func (c *Comment) IsOwnedBy(userID valueobjects.UserID) bool {
	return c.AuthorID.Equals(userID)
}
