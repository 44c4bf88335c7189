package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

func TestToggleLike(t *testing.T) {
	env := newTestEnv(t)
	author := env.registerUser(t, "Sarah Chen", "sarahchen")
	fanA := env.registerUser(t, "Marcus Johnson", "marcusj")
	fanB := env.registerUser(t, "Alex Rivera", "alexrivera")

	idea, err := env.ideas.CreateIdea(env.ctx, author, "Idea", "Body.", nil, false)
	require.NoError(t, err)

	t.Run("toggle twice returns to the initial state", func(t *testing.T) {
		res, err := env.graph.ToggleLike(env.ctx, fanA, idea.ID.String(), valueobjects.ReactionSubjectIdea)
		require.NoError(t, err)
		assert.True(t, res.Liked)
		assert.Equal(t, 1, res.NewCount)

		res, err = env.graph.ToggleLike(env.ctx, fanA, idea.ID.String(), valueobjects.ReactionSubjectIdea)
		require.NoError(t, err)
		assert.False(t, res.Liked)
		assert.Equal(t, 0, res.NewCount)

		liked, err := env.graph.IsLiked(env.ctx, fanA, idea.ID.String(), valueobjects.ReactionSubjectIdea)
		require.NoError(t, err)
		assert.False(t, liked)
	})

	t.Run("count equals the number of distinct likers", func(t *testing.T) {
		_, err := env.graph.ToggleLike(env.ctx, fanA, idea.ID.String(), valueobjects.ReactionSubjectIdea)
		require.NoError(t, err)
		res, err := env.graph.ToggleLike(env.ctx, fanB, idea.ID.String(), valueobjects.ReactionSubjectIdea)
		require.NoError(t, err)
		assert.Equal(t, 2, res.NewCount)

		view, err := env.feed.ComposeIdeaDetail(env.ctx, idea.ID, fanA)
		require.NoError(t, err)
		assert.Equal(t, 2, view.LikeCount)
		assert.True(t, view.Liked)
	})

	t.Run("rejects unknown subject", func(t *testing.T) {
		_, err := env.graph.ToggleLike(env.ctx, fanA, valueobjects.NewIdeaID().String(), valueobjects.ReactionSubjectIdea)
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("comment likes are tracked independently", func(t *testing.T) {
		comment, err := env.ideas.PostComment(env.ctx, idea.ID, fanB, "Great idea!")
		require.NoError(t, err)

		_, err = env.graph.ToggleLike(env.ctx, fanA, comment.ID.String(), valueobjects.ReactionSubjectComment)
		require.NoError(t, err)

		comments, err := env.feed.ListComments(env.ctx, idea.ID, fanA)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, 1, comments[0].LikeCount)
		assert.True(t, comments[0].Liked)
	})
}

func TestToggleBookmark(t *testing.T) {
	env := newTestEnv(t)
	author := env.registerUser(t, "Sarah Chen", "sarahchen")
	reader := env.registerUser(t, "Marcus Johnson", "marcusj")

	idea, err := env.ideas.CreateIdea(env.ctx, author, "Idea", "Body.", nil, false)
	require.NoError(t, err)

	res, err := env.graph.ToggleBookmark(env.ctx, reader, idea.ID.String(), valueobjects.ReactionSubjectIdea)
	require.NoError(t, err)
	assert.True(t, res.Bookmarked)

	t.Run("bookmark does not affect like state", func(t *testing.T) {
		liked, err := env.graph.IsLiked(env.ctx, reader, idea.ID.String(), valueobjects.ReactionSubjectIdea)
		require.NoError(t, err)
		assert.False(t, liked)
	})

	res, err = env.graph.ToggleBookmark(env.ctx, reader, idea.ID.String(), valueobjects.ReactionSubjectIdea)
	require.NoError(t, err)
	assert.False(t, res.Bookmarked)
}

func TestFollow(t *testing.T) {
	env := newTestEnv(t)
	sarah := env.registerUser(t, "Sarah Chen", "sarahchen")
	marcus := env.registerUser(t, "Marcus Johnson", "marcusj")
	alex := env.registerUser(t, "Alex Rivera", "alexrivera")

	t.Run("self-follow is rejected", func(t *testing.T) {
		err := env.graph.Follow(env.ctx, sarah, sarah.String(), valueobjects.FollowTargetUser)
		assert.True(t, pkgerrors.IsSelfFollow(err))
	})

	t.Run("follow is idempotent", func(t *testing.T) {
		require.NoError(t, env.graph.Follow(env.ctx, marcus, sarah.String(), valueobjects.FollowTargetUser))
		require.NoError(t, env.graph.Follow(env.ctx, marcus, sarah.String(), valueobjects.FollowTargetUser))
		require.NoError(t, env.graph.Follow(env.ctx, alex, sarah.String(), valueobjects.FollowTargetUser))

		count, err := env.graph.FollowerCount(env.ctx, sarah.String(), valueobjects.FollowTargetUser)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("unfollow an absent edge is a no-op", func(t *testing.T) {
		require.NoError(t, env.graph.Unfollow(env.ctx, alex, marcus.String(), valueobjects.FollowTargetUser))
	})

	t.Run("unfollow removes the edge", func(t *testing.T) {
		require.NoError(t, env.graph.Unfollow(env.ctx, alex, sarah.String(), valueobjects.FollowTargetUser))

		following, err := env.graph.IsFollowing(env.ctx, alex, sarah.String(), valueobjects.FollowTargetUser)
		require.NoError(t, err)
		assert.False(t, following)

		count, err := env.graph.FollowerCount(env.ctx, sarah.String(), valueobjects.FollowTargetUser)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("unknown user target is rejected", func(t *testing.T) {
		err := env.graph.Follow(env.ctx, marcus, valueobjects.NewUserID().String(), valueobjects.FollowTargetUser)
		assert.True(t, pkgerrors.IsNotFound(err))
	})
}

func TestFollowProject(t *testing.T) {
	env := newTestEnv(t)
	sarah := env.registerUser(t, "Sarah Chen", "sarahchen")
	marcus := env.registerUser(t, "Marcus Johnson", "marcusj")

	plain, err := env.ideas.CreateIdea(env.ctx, sarah, "Plain Idea", "Not promoted.", nil, false)
	require.NoError(t, err)
	project, err := env.ideas.CreateIdea(env.ctx, sarah, "Project", "Promoted at birth.", nil, true)
	require.NoError(t, err)

	t.Run("non-project idea is not a valid follow target", func(t *testing.T) {
		err := env.graph.Follow(env.ctx, marcus, plain.ID.String(), valueobjects.FollowTargetProject)
		assert.True(t, pkgerrors.IsInvalidTarget(err))
	})

	t.Run("project follow shows in the detail view", func(t *testing.T) {
		require.NoError(t, env.graph.Follow(env.ctx, marcus, project.ID.String(), valueobjects.FollowTargetProject))

		view, err := env.feed.ComposeIdeaDetail(env.ctx, project.ID, marcus)
		require.NoError(t, err)
		assert.True(t, view.FollowingProject)
	})

	t.Run("owner may still follow their own project", func(t *testing.T) {
		require.NoError(t, env.graph.Follow(env.ctx, sarah, project.ID.String(), valueobjects.FollowTargetProject))
	})
}
