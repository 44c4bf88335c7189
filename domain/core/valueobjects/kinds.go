package valueobjects

import "fmt"

// FollowTargetKind discriminates what a follow edge points at
type FollowTargetKind string

const (
	FollowTargetUser    FollowTargetKind = "user"
	FollowTargetProject FollowTargetKind = "project"
)

// ParseFollowTargetKind parses a follow target kind from its wire form
func ParseFollowTargetKind(s string) (FollowTargetKind, error) {
	switch FollowTargetKind(s) {
	case FollowTargetUser, FollowTargetProject:
		return FollowTargetKind(s), nil
	default:
		return "", fmt.Errorf("invalid follow target kind: %q", s)
	}
}

// ReactionSubjectKind discriminates what a like or bookmark edge points at
type ReactionSubjectKind string

const (
	ReactionSubjectIdea    ReactionSubjectKind = "idea"
	ReactionSubjectComment ReactionSubjectKind = "comment"
)

// ParseReactionSubjectKind parses a reaction subject kind from its wire form
func ParseReactionSubjectKind(s string) (ReactionSubjectKind, error) {
	switch ReactionSubjectKind(s) {
	case ReactionSubjectIdea, ReactionSubjectComment:
		return ReactionSubjectKind(s), nil
	default:
		return "", fmt.Errorf("invalid reaction subject kind: %q", s)
	}
}

// ReactionKind discriminates like edges from bookmark edges
type ReactionKind string

const (
	ReactionLike     ReactionKind = "like"
	ReactionBookmark ReactionKind = "bookmark"
)
