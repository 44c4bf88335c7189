package services

import (
	"context"

	"go.uber.org/zap"

	"ideahub-backend/application/ports"
	"ideahub-backend/domain/core/entities"
	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

// FeedScope selects which ideas a feed contains
type FeedScope string

const (
	// ScopeAll is every idea on the platform
	ScopeAll FeedScope = "all"
	// ScopeFollowingOnly filters to ideas whose author the viewer follows
	// or which the viewer follows as a project
	ScopeFollowingOnly FeedScope = "following"
)

// ParseFeedScope parses a feed scope from its query-string form
func ParseFeedScope(s string) (FeedScope, error) {
	switch FeedScope(s) {
	case ScopeAll, ScopeFollowingOnly:
		return FeedScope(s), nil
	case "":
		return ScopeAll, nil
	default:
		return "", pkgerrors.NewValidationError("scope must be 'all' or 'following'")
	}
}

// FeedService composes read-only projections over the entity store: the
// idea feed, project roadmaps, and comment threads. The store is the single
// source of truth; nothing here is cached.
type FeedService struct {
	repos  ports.Repositories
	logger *zap.Logger
}

// NewFeedService creates a new feed service
func NewFeedService(repos ports.Repositories, logger *zap.Logger) *FeedService {
	return &FeedService{
		repos:  repos,
		logger: logger,
	}
}

// ComposeFeed returns the ordered feed of ideas for a viewer. Ideas are
// ordered by creation time descending with ID ascending as the tie-break.
// FollowingOnly keeps exactly the subset of the full feed whose author the
// viewer follows or whose idea the viewer follows as a project, with order
// preserved.
func (s *FeedService) ComposeFeed(ctx context.Context, viewerID valueobjects.UserID, scope FeedScope) ([]IdeaView, error) {
	ideas, err := s.repos.Ideas().ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if scope == ScopeFollowingOnly {
		followedUsers, err := s.repos.Graph().ListFollowedTargets(ctx, viewerID, valueobjects.FollowTargetUser)
		if err != nil {
			return nil, err
		}
		followedProjects, err := s.repos.Graph().ListFollowedTargets(ctx, viewerID, valueobjects.FollowTargetProject)
		if err != nil {
			return nil, err
		}

		userSet := make(map[string]bool, len(followedUsers))
		for _, id := range followedUsers {
			userSet[id] = true
		}
		projectSet := make(map[string]bool, len(followedProjects))
		for _, id := range followedProjects {
			projectSet[id] = true
		}

		filtered := make([]*entities.Idea, 0, len(ideas))
		for _, idea := range ideas {
			if userSet[idea.AuthorID.String()] || projectSet[idea.ID.String()] {
				filtered = append(filtered, idea)
			}
		}
		ideas = filtered
	}

	views := make([]IdeaView, 0, len(ideas))
	for _, idea := range ideas {
		view, err := s.composeIdeaView(ctx, idea, viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// ComposeIdeaDetail returns the full projection of a single idea for the
// detail page, including the viewer's liked/bookmarked/following state
func (s *FeedService) ComposeIdeaDetail(ctx context.Context, ideaID valueobjects.IdeaID, viewerID valueobjects.UserID) (*IdeaView, error) {
	idea, err := s.repos.Ideas().GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	return s.composeIdeaView(ctx, idea, viewerID)
}

// ComposeRoadmap returns a project's updates ordered ascending by creation
// time with ID ascending as tie-break. The initial entry's timestamp equals
// the project's creation time, so it is always first. Fails with NotAProject
// for an idea that has not been promoted.
func (s *FeedService) ComposeRoadmap(ctx context.Context, projectID valueobjects.IdeaID) ([]RoadmapUpdateView, error) {
	idea, err := s.repos.Ideas().GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !idea.IsProject {
		return nil, pkgerrors.NewNotAProjectError()
	}

	updates, err := s.repos.Roadmap().ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	views := make([]RoadmapUpdateView, 0, len(updates))
	for _, update := range updates {
		author, err := s.authorSummary(ctx, update.AuthorID)
		if err != nil {
			return nil, err
		}
		views = append(views, RoadmapUpdateView{
			ID:        update.ID.String(),
			Author:    author,
			Title:     update.Title,
			Body:      update.Body,
			IsInitial: update.IsInitial,
			CreatedAt: update.CreatedAt,
		})
	}
	return views, nil
}

// ListComments returns an idea's comments oldest first with per-viewer
// liked state
func (s *FeedService) ListComments(ctx context.Context, ideaID valueobjects.IdeaID, viewerID valueobjects.UserID) ([]CommentView, error) {
	if _, err := s.repos.Ideas().GetByID(ctx, ideaID); err != nil {
		return nil, err
	}

	comments, err := s.repos.Comments().ListByIdea(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		author, err := s.authorSummary(ctx, comment.AuthorID)
		if err != nil {
			return nil, err
		}
		likeCount, err := s.repos.Graph().CountReactions(ctx, comment.ID.String(), valueobjects.ReactionSubjectComment, valueobjects.ReactionLike)
		if err != nil {
			return nil, err
		}
		liked := false
		if !viewerID.IsZero() {
			liked, err = s.repos.Graph().HasReaction(ctx, viewerID, comment.ID.String(), valueobjects.ReactionSubjectComment, valueobjects.ReactionLike)
			if err != nil {
				return nil, err
			}
		}
		views = append(views, CommentView{
			ID:        comment.ID.String(),
			Author:    author,
			Body:      comment.Body,
			LikeCount: likeCount,
			Liked:     liked,
			CreatedAt: comment.CreatedAt,
		})
	}
	return views, nil
}

// ListByAuthor returns a user's ideas, newest first, projected for display
func (s *FeedService) ListByAuthor(ctx context.Context, authorID valueobjects.UserID, viewerID valueobjects.UserID) ([]IdeaView, error) {
	ideas, err := s.repos.Ideas().ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	views := make([]IdeaView, 0, len(ideas))
	for _, idea := range ideas {
		view, err := s.composeIdeaView(ctx, idea, viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *FeedService) composeIdeaView(ctx context.Context, idea *entities.Idea, viewerID valueobjects.UserID) (*IdeaView, error) {
	author, err := s.authorSummary(ctx, idea.AuthorID)
	if err != nil {
		return nil, err
	}

	likeCount, err := s.repos.Graph().CountReactions(ctx, idea.ID.String(), valueobjects.ReactionSubjectIdea, valueobjects.ReactionLike)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.repos.Comments().CountByIdea(ctx, idea.ID)
	if err != nil {
		return nil, err
	}

	view := &IdeaView{
		ID:           idea.ID.String(),
		Author:       author,
		Title:        idea.Title,
		Body:         idea.Body,
		Tags:         idea.Tags,
		IsProject:    idea.IsProject,
		LikeCount:    likeCount,
		CommentCount: commentCount,
		CreatedAt:    idea.CreatedAt,
	}

	if !viewerID.IsZero() {
		if view.Liked, err = s.repos.Graph().HasReaction(ctx, viewerID, view.ID, valueobjects.ReactionSubjectIdea, valueobjects.ReactionLike); err != nil {
			return nil, err
		}
		if view.Bookmarked, err = s.repos.Graph().HasReaction(ctx, viewerID, view.ID, valueobjects.ReactionSubjectIdea, valueobjects.ReactionBookmark); err != nil {
			return nil, err
		}
		if idea.IsProject {
			if view.FollowingProject, err = s.repos.Graph().HasFollow(ctx, viewerID, view.ID, valueobjects.FollowTargetProject); err != nil {
				return nil, err
			}
		}
	}
	return view, nil
}

func (s *FeedService) authorSummary(ctx context.Context, authorID valueobjects.UserID) (AuthorSummary, error) {
	user, err := s.repos.Users().GetByID(ctx, authorID)
	if err != nil {
		return AuthorSummary{}, err
	}
	return AuthorSummary{
		ID:        user.ID.String(),
		Name:      user.Name,
		Username:  user.Username,
		AvatarRef: user.AvatarRef,
	}, nil
}
