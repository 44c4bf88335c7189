package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// UserID is a value object representing a unique user identifier
// Value objects are immutable and have no identity beyond their value
type UserID struct {
	value string
}

// NewUserID creates a new random UserID
func NewUserID() UserID {
	return UserID{value: uuid.New().String()}
}

// NewUserIDFromString creates a UserID from an existing string
func NewUserIDFromString(id string) (UserID, error) {
	if id == "" {
		return UserID{}, errors.New("user ID cannot be empty")
	}
	if !isValidUUID(id) {
		return UserID{}, errors.New("user ID must be a valid UUID")
	}
	return UserID{value: id}, nil
}

// String returns the string representation of the UserID
func (id UserID) String() string {
	return id.value
}

// Equals checks if two UserIDs are equal
func (id UserID) Equals(other UserID) bool {
	return id.value == other.value
}

// IsZero checks if the UserID is the zero value
func (id UserID) IsZero() bool {
	return id.value == ""
}

// IdeaID is a value object representing a unique idea identifier
type IdeaID struct {
	value string
}

// NewIdeaID creates a new random IdeaID
func NewIdeaID() IdeaID {
	return IdeaID{value: uuid.New().String()}
}

// NewIdeaIDFromString creates an IdeaID from an existing string
func NewIdeaIDFromString(id string) (IdeaID, error) {
	if id == "" {
		return IdeaID{}, errors.New("idea ID cannot be empty")
	}
	if !isValidUUID(id) {
		return IdeaID{}, errors.New("idea ID must be a valid UUID")
	}
	return IdeaID{value: id}, nil
}

// String returns the string representation of the IdeaID
func (id IdeaID) String() string {
	return id.value
}

// Equals checks if two IdeaIDs are equal
func (id IdeaID) Equals(other IdeaID) bool {
	return id.value == other.value
}

// IsZero checks if the IdeaID is the zero value
func (id IdeaID) IsZero() bool {
	return id.value == ""
}

// CommentID is a value object representing a unique comment identifier
type CommentID struct {
	value string
}

// NewCommentID creates a new random CommentID
func NewCommentID() CommentID {
	return CommentID{value: uuid.New().String()}
}

// NewCommentIDFromString creates a CommentID from an existing string
func NewCommentIDFromString(id string) (CommentID, error) {
	if id == "" {
		return CommentID{}, errors.New("comment ID cannot be empty")
	}
	if !isValidUUID(id) {
		return CommentID{}, errors.New("comment ID must be a valid UUID")
	}
	return CommentID{value: id}, nil
}

// String returns the string representation of the CommentID
func (id CommentID) String() string {
	return id.value
}

// IsZero checks if the CommentID is the zero value
func (id CommentID) IsZero() bool {
	return id.value == ""
}

// UpdateID is a value object representing a unique roadmap update identifier
type UpdateID struct {
	value string
}

// NewUpdateID creates a new random UpdateID
func NewUpdateID() UpdateID {
	return UpdateID{value: uuid.New().String()}
}

// NewUpdateIDFromString creates an UpdateID from an existing string
func NewUpdateIDFromString(id string) (UpdateID, error) {
	if id == "" {
		return UpdateID{}, errors.New("update ID cannot be empty")
	}
	if !isValidUUID(id) {
		return UpdateID{}, errors.New("update ID must be a valid UUID")
	}
	return UpdateID{value: id}, nil
}

// String returns the string representation of the UpdateID
func (id UpdateID) String() string {
	return id.value
}

// IsZero checks if the UpdateID is the zero value
func (id UpdateID) IsZero() bool {
	return id.value == ""
}

// isValidUUID validates if a string is a valid UUID
func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
