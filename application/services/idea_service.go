package services

import (
	"context"

	"go.uber.org/zap"

	"ideahub-backend/application/ports"
	"ideahub-backend/domain/core/entities"
	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

// IdeaService creates ideas, promotes them to projects, and manages roadmap
// updates and comments. Every mutation runs as a single unit of work so the
// read-check-write sequences (promotion, roadmap append) are serialized:
// of two concurrent promotions of the same idea exactly one wins and the
// other observes AlreadyProject.
type IdeaService struct {
	uow    ports.UnitOfWork
	repos  ports.Repositories
	logger *zap.Logger
}

// NewIdeaService creates a new idea service
func NewIdeaService(uow ports.UnitOfWork, repos ports.Repositories, logger *zap.Logger) *IdeaService {
	return &IdeaService{
		uow:    uow,
		repos:  repos,
		logger: logger,
	}
}

// CreateIdea creates a new idea. Title and body must be non-empty after
// trimming; tags are trimmed and de-duplicated preserving first-seen order.
// When markAsProject is set the idea is born a project and its initial
// roadmap entry is synthesized in the same transaction.
func (s *IdeaService) CreateIdea(ctx context.Context, authorID valueobjects.UserID, title, body string, tags []string, markAsProject bool) (*entities.Idea, error) {
	idea, err := entities.NewIdea(authorID, title, body, tags, markAsProject)
	if err != nil {
		return nil, err
	}

	err = s.uow.Execute(ctx, func(repos ports.Repositories) error {
		if _, err := repos.Users().GetByID(ctx, authorID); err != nil {
			return err
		}
		if err := repos.Ideas().Save(ctx, idea); err != nil {
			return err
		}
		if idea.IsProject {
			return repos.Roadmap().Save(ctx, entities.NewInitialRoadmapUpdate(idea))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("idea created",
		zap.String("ideaID", idea.ID.String()),
		zap.String("authorID", authorID.String()),
		zap.Bool("isProject", idea.IsProject),
	)
	return idea, nil
}

// PromoteToProject flips an idea into project state and synthesizes the
// initial roadmap entry from the idea's original post. Fails with NotOwner
// for anyone but the author and with AlreadyProject on a second promotion.
func (s *IdeaService) PromoteToProject(ctx context.Context, ideaID valueobjects.IdeaID, actorID valueobjects.UserID) (*entities.Idea, error) {
	var idea *entities.Idea
	err := s.uow.Execute(ctx, func(repos ports.Repositories) error {
		var err error
		idea, err = repos.Ideas().GetByID(ctx, ideaID)
		if err != nil {
			return err
		}
		if !idea.IsOwnedBy(actorID) {
			return pkgerrors.NewNotOwnerError("idea")
		}
		if err := idea.Promote(); err != nil {
			return err
		}
		if err := repos.Ideas().Save(ctx, idea); err != nil {
			return err
		}
		return repos.Roadmap().Save(ctx, entities.NewInitialRoadmapUpdate(idea))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("idea promoted to project", zap.String("ideaID", ideaID.String()))
	return idea, nil
}

// PostRoadmapUpdate appends a progress entry to a project's roadmap. Only
// the project's author may post; the target must already be a project.
func (s *IdeaService) PostRoadmapUpdate(ctx context.Context, projectID valueobjects.IdeaID, actorID valueobjects.UserID, title, body string) (*entities.RoadmapUpdate, error) {
	var update *entities.RoadmapUpdate
	err := s.uow.Execute(ctx, func(repos ports.Repositories) error {
		idea, err := repos.Ideas().GetByID(ctx, projectID)
		if err != nil {
			return err
		}
		if !idea.IsOwnedBy(actorID) {
			return pkgerrors.NewNotOwnerError("project")
		}
		if !idea.IsProject {
			return pkgerrors.NewNotAProjectError()
		}

		update, err = entities.NewRoadmapUpdate(projectID, actorID, title, body)
		if err != nil {
			return err
		}
		return repos.Roadmap().Save(ctx, update)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("roadmap update posted",
		zap.String("projectID", projectID.String()),
		zap.String("updateID", update.ID.String()),
	)
	return update, nil
}

// DeleteIdea removes an idea and cascades to its comments, roadmap updates,
// reaction edges, and project-follow edges. Author-only.
func (s *IdeaService) DeleteIdea(ctx context.Context, ideaID valueobjects.IdeaID, actorID valueobjects.UserID) error {
	err := s.uow.Execute(ctx, func(repos ports.Repositories) error {
		idea, err := repos.Ideas().GetByID(ctx, ideaID)
		if err != nil {
			return err
		}
		if !idea.IsOwnedBy(actorID) {
			return pkgerrors.NewNotOwnerError("idea")
		}
		return repos.Ideas().Delete(ctx, ideaID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("idea deleted", zap.String("ideaID", ideaID.String()))
	return nil
}

// PostComment adds a comment to an idea. The body must be non-empty after
// trimming, same contract as the idea body.
func (s *IdeaService) PostComment(ctx context.Context, ideaID valueobjects.IdeaID, authorID valueobjects.UserID, body string) (*entities.Comment, error) {
	var comment *entities.Comment
	err := s.uow.Execute(ctx, func(repos ports.Repositories) error {
		if _, err := repos.Ideas().GetByID(ctx, ideaID); err != nil {
			return err
		}

		var err error
		comment, err = entities.NewComment(ideaID, authorID, body)
		if err != nil {
			return err
		}
		return repos.Comments().Save(ctx, comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment and its incoming reaction edges. Author-only.
func (s *IdeaService) DeleteComment(ctx context.Context, commentID valueobjects.CommentID, actorID valueobjects.UserID) error {
	return s.uow.Execute(ctx, func(repos ports.Repositories) error {
		comment, err := repos.Comments().GetByID(ctx, commentID)
		if err != nil {
			return err
		}
		if !comment.IsOwnedBy(actorID) {
			return pkgerrors.NewNotOwnerError("comment")
		}
		return repos.Comments().Delete(ctx, commentID)
	})
}

// GetIdea retrieves an idea by ID
func (s *IdeaService) GetIdea(ctx context.Context, ideaID valueobjects.IdeaID) (*entities.Idea, error) {
	return s.repos.Ideas().GetByID(ctx, ideaID)
}
