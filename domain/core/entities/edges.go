package entities

import (
	"time"

	"ideahub-backend/domain/core/valueobjects"
)

// FollowEdge records that a user follows another user or a project. Edges
// are unique per (follower, target, kind) triple and are only ever inserted
// or removed, never mutated.
type FollowEdge struct {
	FollowerID valueobjects.UserID
	TargetID   string
	TargetKind valueobjects.FollowTargetKind
	CreatedAt  time.Time
}

// NewFollowEdge creates a follow edge stamped with the current time
func NewFollowEdge(followerID valueobjects.UserID, targetID string, kind valueobjects.FollowTargetKind) FollowEdge {
	return FollowEdge{
		FollowerID: followerID,
		TargetID:   targetID,
		TargetKind: kind,
		CreatedAt:  time.Now().UTC(),
	}
}

// ReactionEdge records a like or bookmark from a user on an idea or comment.
// Presence of the edge is the liked/bookmarked state; counts are cardinality
// queries over the edge set.
type ReactionEdge struct {
	UserID      valueobjects.UserID
	SubjectID   string
	SubjectKind valueobjects.ReactionSubjectKind
	Kind        valueobjects.ReactionKind
	CreatedAt   time.Time
}

// NewReactionEdge creates a reaction edge stamped with the current time
func NewReactionEdge(userID valueobjects.UserID, subjectID string, subjectKind valueobjects.ReactionSubjectKind, kind valueobjects.ReactionKind) ReactionEdge {
	return ReactionEdge{
		UserID:      userID,
		SubjectID:   subjectID,
		SubjectKind: subjectKind,
		Kind:        kind,
		CreatedAt:   time.Now().UTC(),
	}
}
