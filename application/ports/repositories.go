package ports

import (
	"context"

	"ideahub-backend/domain/core/entities"
	"ideahub-backend/domain/core/valueobjects"
)

// UserRepository defines the interface for user persistence
// This is a port in hexagonal architecture - the domain doesn't know about
// the implementation
type UserRepository interface {
	// Save persists a user (create or update)
	Save(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by its ID
	GetByID(ctx context.Context, id valueobjects.UserID) (*entities.User, error)

	// GetByUsername retrieves a user by its unique username
	GetByUsername(ctx context.Context, username string) (*entities.User, error)

	// GetByEmail retrieves a user by its unique email
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

// IdeaRepository defines the interface for idea persistence
type IdeaRepository interface {
	// Save persists an idea (create or update)
	Save(ctx context.Context, idea *entities.Idea) error

	// GetByID retrieves an idea by its ID
	GetByID(ctx context.Context, id valueobjects.IdeaID) (*entities.Idea, error)

	// ListAll retrieves every idea, newest first (ties broken by ID ascending)
	ListAll(ctx context.Context) ([]*entities.Idea, error)

	// ListByAuthor retrieves a user's ideas, newest first
	ListByAuthor(ctx context.Context, authorID valueobjects.UserID) ([]*entities.Idea, error)

	// CountByAuthor returns the number of ideas authored by a user
	CountByAuthor(ctx context.Context, authorID valueobjects.UserID) (int, error)

	// Delete removes an idea and cascades to its comments, roadmap updates,
	// reaction edges, and project-follow edges
	Delete(ctx context.Context, id valueobjects.IdeaID) error
}

// CommentRepository defines the interface for comment persistence
type CommentRepository interface {
	// Save persists a comment
	Save(ctx context.Context, comment *entities.Comment) error

	// GetByID retrieves a comment by its ID
	GetByID(ctx context.Context, id valueobjects.CommentID) (*entities.Comment, error)

	// ListByIdea retrieves an idea's comments, oldest first
	ListByIdea(ctx context.Context, ideaID valueobjects.IdeaID) ([]*entities.Comment, error)

	// CountByIdea returns the number of comments on an idea
	CountByIdea(ctx context.Context, ideaID valueobjects.IdeaID) (int, error)

	// Delete removes a comment and its incoming reaction edges
	Delete(ctx context.Context, id valueobjects.CommentID) error
}

// RoadmapRepository defines the interface for roadmap update persistence
type RoadmapRepository interface {
	// Save persists a roadmap update
	Save(ctx context.Context, update *entities.RoadmapUpdate) error

	// ListByProject retrieves a project's updates ordered ascending by
	// creation time (ties broken by ID ascending), initial entry first
	ListByProject(ctx context.Context, projectID valueobjects.IdeaID) ([]*entities.RoadmapUpdate, error)

	// CountByProject returns the number of updates on a project
	CountByProject(ctx context.Context, projectID valueobjects.IdeaID) (int, error)
}

// GraphRepository defines the interface for follow and reaction edge
// persistence. Inserts are idempotent; deletes of absent edges are no-ops.
type GraphRepository interface {
	// InsertFollow adds a follow edge if absent
	InsertFollow(ctx context.Context, edge entities.FollowEdge) error

	// DeleteFollow removes a follow edge if present
	DeleteFollow(ctx context.Context, followerID valueobjects.UserID, targetID string, kind valueobjects.FollowTargetKind) error

	// HasFollow reports whether a follow edge exists
	HasFollow(ctx context.Context, followerID valueobjects.UserID, targetID string, kind valueobjects.FollowTargetKind) (bool, error)

	// CountFollowers returns the number of followers of a target
	CountFollowers(ctx context.Context, targetID string, kind valueobjects.FollowTargetKind) (int, error)

	// CountFollowing returns the number of targets a user follows
	CountFollowing(ctx context.Context, followerID valueobjects.UserID, kind valueobjects.FollowTargetKind) (int, error)

	// ListFollowedTargets returns the IDs of every target of the given kind
	// the user follows
	ListFollowedTargets(ctx context.Context, followerID valueobjects.UserID, kind valueobjects.FollowTargetKind) ([]string, error)

	// InsertReaction adds a like or bookmark edge if absent
	InsertReaction(ctx context.Context, edge entities.ReactionEdge) error

	// DeleteReaction removes a like or bookmark edge if present
	DeleteReaction(ctx context.Context, userID valueobjects.UserID, subjectID string, subjectKind valueobjects.ReactionSubjectKind, kind valueobjects.ReactionKind) error

	// HasReaction reports whether a reaction edge exists
	HasReaction(ctx context.Context, userID valueobjects.UserID, subjectID string, subjectKind valueobjects.ReactionSubjectKind, kind valueobjects.ReactionKind) (bool, error)

	// CountReactions returns the cardinality of the reaction edge set for a
	// subject; this is the liked count, never a stored counter
	CountReactions(ctx context.Context, subjectID string, subjectKind valueobjects.ReactionSubjectKind, kind valueobjects.ReactionKind) (int, error)
}

// Repositories bundles all repository ports bound to the same storage scope,
// either the shared store or a single open transaction
type Repositories interface {
	Users() UserRepository
	Ideas() IdeaRepository
	Comments() CommentRepository
	Roadmap() RoadmapRepository
	Graph() GraphRepository
}

// UnitOfWork defines a transaction boundary. Execute runs fn against
// transaction-bound repositories; the transaction commits if fn returns nil
// and rolls back otherwise. Read-check-write sequences inside fn are
// serialized against concurrent units of work on the same entities.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}
