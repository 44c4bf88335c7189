package services

import (
	"context"

	"go.uber.org/zap"

	"ideahub-backend/application/ports"
	"ideahub-backend/domain/core/entities"
	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

// SocialGraphService manages follow edges (user to user, user to project)
// and like/bookmark edges (user to idea or comment). All toggles are
// idempotent per (actor, subject) pair, and every returned count is computed
// from the edge set inside the same transaction as the mutation, so counts
// can never drift from the edges they summarize.
type SocialGraphService struct {
	uow    ports.UnitOfWork
	repos  ports.Repositories
	logger *zap.Logger
}

// NewSocialGraphService creates a new social graph service
func NewSocialGraphService(uow ports.UnitOfWork, repos ports.Repositories, logger *zap.Logger) *SocialGraphService {
	return &SocialGraphService{
		uow:    uow,
		repos:  repos,
		logger: logger,
	}
}

// ToggleLikeResult reports the state after a like toggle
type ToggleLikeResult struct {
	Liked    bool `json:"liked"`
	NewCount int  `json:"likes"`
}

// ToggleBookmarkResult reports the state after a bookmark toggle
type ToggleBookmarkResult struct {
	Bookmarked bool `json:"bookmarked"`
}

// Follow inserts a follow edge. Inserting an edge that already exists is a
// no-op. Fails with SelfFollow when a user follows themselves and with
// InvalidTarget when the project target is not actually a project.
func (s *SocialGraphService) Follow(ctx context.Context, actorID valueobjects.UserID, targetID string, kind valueobjects.FollowTargetKind) error {
	return s.uow.Execute(ctx, func(repos ports.Repositories) error {
		switch kind {
		case valueobjects.FollowTargetUser:
			if actorID.String() == targetID {
				return pkgerrors.NewSelfFollowError()
			}
			targetUserID, err := valueobjects.NewUserIDFromString(targetID)
			if err != nil {
				return pkgerrors.NewValidationError(err.Error())
			}
			if _, err := repos.Users().GetByID(ctx, targetUserID); err != nil {
				return err
			}

		case valueobjects.FollowTargetProject:
			ideaID, err := valueobjects.NewIdeaIDFromString(targetID)
			if err != nil {
				return pkgerrors.NewValidationError(err.Error())
			}
			idea, err := repos.Ideas().GetByID(ctx, ideaID)
			if err != nil {
				return err
			}
			if !idea.IsProject {
				return pkgerrors.NewInvalidTargetError("cannot follow an idea that is not a project")
			}

		default:
			return pkgerrors.NewValidationError("invalid follow target kind")
		}

		return repos.Graph().InsertFollow(ctx, entities.NewFollowEdge(actorID, targetID, kind))
	})
}

// Unfollow removes a follow edge. Removing an absent edge is a no-op.
func (s *SocialGraphService) Unfollow(ctx context.Context, actorID valueobjects.UserID, targetID string, kind valueobjects.FollowTargetKind) error {
	return s.uow.Execute(ctx, func(repos ports.Repositories) error {
		return repos.Graph().DeleteFollow(ctx, actorID, targetID, kind)
	})
}

// ToggleLike flips the presence of a like edge and returns the resulting
// state together with the count derived from the edge set
func (s *SocialGraphService) ToggleLike(ctx context.Context, actorID valueobjects.UserID, subjectID string, subjectKind valueobjects.ReactionSubjectKind) (*ToggleLikeResult, error) {
	result := &ToggleLikeResult{}
	err := s.uow.Execute(ctx, func(repos ports.Repositories) error {
		if err := s.checkSubjectExists(ctx, repos, subjectID, subjectKind); err != nil {
			return err
		}

		liked, err := repos.Graph().HasReaction(ctx, actorID, subjectID, subjectKind, valueobjects.ReactionLike)
		if err != nil {
			return err
		}

		if liked {
			if err := repos.Graph().DeleteReaction(ctx, actorID, subjectID, subjectKind, valueobjects.ReactionLike); err != nil {
				return err
			}
		} else {
			edge := entities.NewReactionEdge(actorID, subjectID, subjectKind, valueobjects.ReactionLike)
			if err := repos.Graph().InsertReaction(ctx, edge); err != nil {
				return err
			}
		}

		count, err := repos.Graph().CountReactions(ctx, subjectID, subjectKind, valueobjects.ReactionLike)
		if err != nil {
			return err
		}

		result.Liked = !liked
		result.NewCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("like toggled",
		zap.String("actorID", actorID.String()),
		zap.String("subjectID", subjectID),
		zap.Bool("liked", result.Liked),
		zap.Int("count", result.NewCount),
	)
	return result, nil
}

// ToggleBookmark flips the presence of a bookmark edge. Bookmarks have no
// public count.
func (s *SocialGraphService) ToggleBookmark(ctx context.Context, actorID valueobjects.UserID, subjectID string, subjectKind valueobjects.ReactionSubjectKind) (*ToggleBookmarkResult, error) {
	result := &ToggleBookmarkResult{}
	err := s.uow.Execute(ctx, func(repos ports.Repositories) error {
		if err := s.checkSubjectExists(ctx, repos, subjectID, subjectKind); err != nil {
			return err
		}

		bookmarked, err := repos.Graph().HasReaction(ctx, actorID, subjectID, subjectKind, valueobjects.ReactionBookmark)
		if err != nil {
			return err
		}

		if bookmarked {
			if err := repos.Graph().DeleteReaction(ctx, actorID, subjectID, subjectKind, valueobjects.ReactionBookmark); err != nil {
				return err
			}
		} else {
			edge := entities.NewReactionEdge(actorID, subjectID, subjectKind, valueobjects.ReactionBookmark)
			if err := repos.Graph().InsertReaction(ctx, edge); err != nil {
				return err
			}
		}

		result.Bookmarked = !bookmarked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FollowerCount returns the number of followers of a user or project
func (s *SocialGraphService) FollowerCount(ctx context.Context, targetID string, kind valueobjects.FollowTargetKind) (int, error) {
	return s.repos.Graph().CountFollowers(ctx, targetID, kind)
}

// IsFollowing reports whether actor follows the target
func (s *SocialGraphService) IsFollowing(ctx context.Context, actorID valueobjects.UserID, targetID string, kind valueobjects.FollowTargetKind) (bool, error) {
	return s.repos.Graph().HasFollow(ctx, actorID, targetID, kind)
}

// IsLiked reports whether actor has liked the subject
func (s *SocialGraphService) IsLiked(ctx context.Context, actorID valueobjects.UserID, subjectID string, subjectKind valueobjects.ReactionSubjectKind) (bool, error) {
	return s.repos.Graph().HasReaction(ctx, actorID, subjectID, subjectKind, valueobjects.ReactionLike)
}

// IsBookmarked reports whether actor has bookmarked the subject
func (s *SocialGraphService) IsBookmarked(ctx context.Context, actorID valueobjects.UserID, subjectID string, subjectKind valueobjects.ReactionSubjectKind) (bool, error) {
	return s.repos.Graph().HasReaction(ctx, actorID, subjectID, subjectKind, valueobjects.ReactionBookmark)
}

// checkSubjectExists verifies that the reaction subject refers to a live
// idea or comment
func (s *SocialGraphService) checkSubjectExists(ctx context.Context, repos ports.Repositories, subjectID string, subjectKind valueobjects.ReactionSubjectKind) error {
	switch subjectKind {
	case valueobjects.ReactionSubjectIdea:
		ideaID, err := valueobjects.NewIdeaIDFromString(subjectID)
		if err != nil {
			return pkgerrors.NewValidationError(err.Error())
		}
		_, err = repos.Ideas().GetByID(ctx, ideaID)
		return err

	case valueobjects.ReactionSubjectComment:
		commentID, err := valueobjects.NewCommentIDFromString(subjectID)
		if err != nil {
			return pkgerrors.NewValidationError(err.Error())
		}
		_, err = repos.Comments().GetByID(ctx, commentID)
		return err

	default:
		return pkgerrors.NewValidationError("invalid reaction subject kind")
	}
}
