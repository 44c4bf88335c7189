package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideahub-backend/application/ports"
	"ideahub-backend/domain/core/entities"
	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func mustUser(t *testing.T, store *Store, username string) *entities.User {
	t.Helper()
	user, err := entities.NewUser("Test "+username, username, username+"@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, store.Users().Save(context.Background(), user))
	return user
}

func mustIdea(t *testing.T, store *Store, author *entities.User, title string, asProject bool) *entities.Idea {
	t.Helper()
	idea, err := entities.NewIdea(author.ID, title, "Body of "+title, nil, asProject)
	require.NoError(t, err)
	require.NoError(t, store.Ideas().Save(context.Background(), idea))
	return idea
}

func TestUserRepository(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := mustUser(t, store, "sarahchen")

	t.Run("round-trips by id, username, and email", func(t *testing.T) {
		byID, err := store.Users().GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Username, byID.Username)

		byName, err := store.Users().GetByUsername(ctx, "sarahchen")
		require.NoError(t, err)
		assert.True(t, byName.ID.Equals(user.ID))

		byEmail, err := store.Users().GetByEmail(ctx, "sarahchen@example.com")
		require.NoError(t, err)
		assert.True(t, byEmail.ID.Equals(user.ID))
	})

	t.Run("missing user is NotFound", func(t *testing.T) {
		_, err := store.Users().GetByID(ctx, valueobjects.NewUserID())
		assert.True(t, pkgerrors.IsNotFound(err))

		_, err = store.Users().GetByUsername(ctx, "ghost")
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("save updates profile fields in place", func(t *testing.T) {
		user.Bio = "Building things."
		user.Location = "Portland"
		require.NoError(t, store.Users().Save(ctx, user))

		got, err := store.Users().GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Building things.", got.Bio)
		assert.Equal(t, "Portland", got.Location)
	})
}

func TestIdeaRepository(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	author := mustUser(t, store, "sarahchen")

	t.Run("round-trips tags and flags", func(t *testing.T) {
		idea, err := entities.NewIdea(author.ID, "Tagged", "Body.", []string{"AI", "Go"}, true)
		require.NoError(t, err)
		require.NoError(t, store.Ideas().Save(ctx, idea))

		got, err := store.Ideas().GetByID(ctx, idea.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"AI", "Go"}, got.Tags)
		assert.True(t, got.IsProject)
		assert.Equal(t, idea.CreatedAt.UnixNano(), got.CreatedAt.UnixNano())
	})

	t.Run("list all is newest first", func(t *testing.T) {
		store := newTestStore(t)
		author := mustUser(t, store, "lister")
		for _, title := range []string{"Old", "Mid", "New"} {
			mustIdea(t, store, author, title, false)
			time.Sleep(2 * time.Millisecond)
		}

		ideas, err := store.Ideas().ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, ideas, 3)
		assert.Equal(t, "New", ideas[0].Title)
		assert.Equal(t, "Old", ideas[2].Title)

		count, err := store.Ideas().CountByAuthor(ctx, author.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("delete cascades to comments, roadmap, and edges", func(t *testing.T) {
		fan := mustUser(t, store, "fan")
		idea := mustIdea(t, store, author, "Doomed", true)

		comment, err := entities.NewComment(idea.ID, fan.ID, "Nice!")
		require.NoError(t, err)
		require.NoError(t, store.Comments().Save(ctx, comment))

		update := entities.NewInitialRoadmapUpdate(idea)
		require.NoError(t, store.Roadmap().Save(ctx, update))

		require.NoError(t, store.Graph().InsertReaction(ctx,
			entities.NewReactionEdge(fan.ID, idea.ID.String(), valueobjects.ReactionSubjectIdea, valueobjects.ReactionLike)))
		require.NoError(t, store.Graph().InsertReaction(ctx,
			entities.NewReactionEdge(fan.ID, comment.ID.String(), valueobjects.ReactionSubjectComment, valueobjects.ReactionLike)))
		require.NoError(t, store.Graph().InsertFollow(ctx,
			entities.NewFollowEdge(fan.ID, idea.ID.String(), valueobjects.FollowTargetProject)))

		require.NoError(t, store.Ideas().Delete(ctx, idea.ID))

		_, err = store.Ideas().GetByID(ctx, idea.ID)
		assert.True(t, pkgerrors.IsNotFound(err))

		comments, err := store.Comments().ListByIdea(ctx, idea.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)

		updates, err := store.Roadmap().ListByProject(ctx, idea.ID)
		require.NoError(t, err)
		assert.Empty(t, updates)

		likes, err := store.Graph().CountReactions(ctx, idea.ID.String(), valueobjects.ReactionSubjectIdea, valueobjects.ReactionLike)
		require.NoError(t, err)
		assert.Zero(t, likes)

		commentLikes, err := store.Graph().CountReactions(ctx, comment.ID.String(), valueobjects.ReactionSubjectComment, valueobjects.ReactionLike)
		require.NoError(t, err)
		assert.Zero(t, commentLikes)

		followers, err := store.Graph().CountFollowers(ctx, idea.ID.String(), valueobjects.FollowTargetProject)
		require.NoError(t, err)
		assert.Zero(t, followers)
	})
}

func TestGraphRepository(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	sarah := mustUser(t, store, "sarahchen")
	marcus := mustUser(t, store, "marcusj")

	t.Run("follow insert is idempotent", func(t *testing.T) {
		edge := entities.NewFollowEdge(marcus.ID, sarah.ID.String(), valueobjects.FollowTargetUser)
		require.NoError(t, store.Graph().InsertFollow(ctx, edge))
		require.NoError(t, store.Graph().InsertFollow(ctx, edge))

		count, err := store.Graph().CountFollowers(ctx, sarah.ID.String(), valueobjects.FollowTargetUser)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		has, err := store.Graph().HasFollow(ctx, marcus.ID, sarah.ID.String(), valueobjects.FollowTargetUser)
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("delete of an absent edge is a no-op", func(t *testing.T) {
		require.NoError(t, store.Graph().DeleteFollow(ctx, sarah.ID, marcus.ID.String(), valueobjects.FollowTargetUser))
	})

	t.Run("like and bookmark edges are distinct", func(t *testing.T) {
		idea := mustIdea(t, store, sarah, "Idea", false)

		require.NoError(t, store.Graph().InsertReaction(ctx,
			entities.NewReactionEdge(marcus.ID, idea.ID.String(), valueobjects.ReactionSubjectIdea, valueobjects.ReactionLike)))

		bookmarked, err := store.Graph().HasReaction(ctx, marcus.ID, idea.ID.String(), valueobjects.ReactionSubjectIdea, valueobjects.ReactionBookmark)
		require.NoError(t, err)
		assert.False(t, bookmarked)

		liked, err := store.Graph().HasReaction(ctx, marcus.ID, idea.ID.String(), valueobjects.ReactionSubjectIdea, valueobjects.ReactionLike)
		require.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("lists followed targets by kind", func(t *testing.T) {
		project := mustIdea(t, store, sarah, "Project", true)
		require.NoError(t, store.Graph().InsertFollow(ctx,
			entities.NewFollowEdge(marcus.ID, project.ID.String(), valueobjects.FollowTargetProject)))

		users, err := store.Graph().ListFollowedTargets(ctx, marcus.ID, valueobjects.FollowTargetUser)
		require.NoError(t, err)
		assert.Equal(t, []string{sarah.ID.String()}, users)

		projects, err := store.Graph().ListFollowedTargets(ctx, marcus.ID, valueobjects.FollowTargetProject)
		require.NoError(t, err)
		assert.Equal(t, []string{project.ID.String()}, projects)
	})
}

func TestUnitOfWorkRollback(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	author := mustUser(t, store, "sarahchen")

	sentinel := pkgerrors.NewConflictError("abort")
	err := store.Execute(ctx, func(repos ports.Repositories) error {
		idea, err := entities.NewIdea(author.ID, "Phantom", "Never committed.", nil, false)
		if err != nil {
			return err
		}
		if err := repos.Ideas().Save(ctx, idea); err != nil {
			return err
		}
		return sentinel
	})
	assert.Equal(t, sentinel, err)

	ideas, err := store.Ideas().ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, ideas, "rolled-back writes must not be visible")
}
