package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

func TestParseFeedScope(t *testing.T) {
	tests := []struct {
		input   string
		want    FeedScope
		wantErr bool
	}{
		{"", ScopeAll, false},
		{"all", ScopeAll, false},
		{"following", ScopeFollowingOnly, false},
		{"Following", "", true},
		{"bogus", "", true},
	}
	for _, tt := range tests {
		scope, err := ParseFeedScope(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, scope)
	}
}

func TestComposeFeed(t *testing.T) {
	env := newTestEnv(t)
	sarah := env.registerUser(t, "Sarah Chen", "sarahchen")
	marcus := env.registerUser(t, "Marcus Johnson", "marcusj")
	alex := env.registerUser(t, "Alex Rivera", "alexrivera")
	viewer := env.registerUser(t, "Priya Patel", "priyap")

	mkIdea := func(author valueobjects.UserID, title string, asProject bool) valueobjects.IdeaID {
		t.Helper()
		idea, err := env.ideas.CreateIdea(env.ctx, author, title, "Body of "+title, nil, asProject)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
		return idea.ID
	}

	first := mkIdea(sarah, "First", false)
	second := mkIdea(marcus, "Second", false)
	third := mkIdea(alex, "Third Project", true)
	fourth := mkIdea(sarah, "Fourth", false)

	t.Run("all scope returns every idea newest first", func(t *testing.T) {
		feed, err := env.feed.ComposeFeed(env.ctx, viewer, ScopeAll)
		require.NoError(t, err)
		require.Len(t, feed, 4)

		titles := make([]string, 0, len(feed))
		for _, v := range feed {
			titles = append(titles, v.Title)
		}
		assert.Equal(t, []string{"Fourth", "Third Project", "Second", "First"}, titles)
	})

	t.Run("following scope is an order-preserving subset", func(t *testing.T) {
		require.NoError(t, env.graph.Follow(env.ctx, viewer, sarah.String(), valueobjects.FollowTargetUser))
		require.NoError(t, env.graph.Follow(env.ctx, viewer, third.String(), valueobjects.FollowTargetProject))

		feed, err := env.feed.ComposeFeed(env.ctx, viewer, ScopeFollowingOnly)
		require.NoError(t, err)
		require.Len(t, feed, 3)

		ids := []string{feed[0].ID, feed[1].ID, feed[2].ID}
		assert.Equal(t, []string{fourth.String(), third.String(), first.String()}, ids)
		assert.NotContains(t, ids, second.String())
	})

	t.Run("following scope with no follows is empty", func(t *testing.T) {
		feed, err := env.feed.ComposeFeed(env.ctx, marcus, ScopeFollowingOnly)
		require.NoError(t, err)
		assert.Empty(t, feed)
	})

	t.Run("viewer state is embedded per card", func(t *testing.T) {
		_, err := env.graph.ToggleLike(env.ctx, viewer, second.String(), valueobjects.ReactionSubjectIdea)
		require.NoError(t, err)

		feed, err := env.feed.ComposeFeed(env.ctx, viewer, ScopeAll)
		require.NoError(t, err)

		for _, v := range feed {
			switch v.ID {
			case second.String():
				assert.True(t, v.Liked)
				assert.Equal(t, 1, v.LikeCount)
			case third.String():
				assert.True(t, v.FollowingProject)
			default:
				assert.False(t, v.Liked)
			}
		}
	})
}

func TestComposeRoadmap(t *testing.T) {
	env := newTestEnv(t)
	sarah := env.registerUser(t, "Sarah Chen", "sarahchen")

	t.Run("rejects a non-project idea", func(t *testing.T) {
		idea, err := env.ideas.CreateIdea(env.ctx, sarah, "Plain", "Body.", nil, false)
		require.NoError(t, err)

		_, err = env.feed.ComposeRoadmap(env.ctx, idea.ID)
		assert.True(t, pkgerrors.IsNotAProject(err))
	})

	t.Run("entries come back oldest first", func(t *testing.T) {
		project, err := env.ideas.CreateIdea(env.ctx, sarah, "Project", "Body.", nil, true)
		require.NoError(t, err)

		for _, title := range []string{"Milestone One", "Milestone Two"} {
			time.Sleep(2 * time.Millisecond)
			_, err := env.ideas.PostRoadmapUpdate(env.ctx, project.ID, sarah, title, "Done.")
			require.NoError(t, err)
		}

		roadmap, err := env.feed.ComposeRoadmap(env.ctx, project.ID)
		require.NoError(t, err)
		require.Len(t, roadmap, 3)
		assert.True(t, roadmap[0].IsInitial)
		assert.Equal(t, "Milestone One", roadmap[1].Title)
		assert.Equal(t, "Milestone Two", roadmap[2].Title)
		assert.True(t, roadmap[0].CreatedAt.Before(roadmap[1].CreatedAt))
		assert.True(t, roadmap[1].CreatedAt.Before(roadmap[2].CreatedAt))
	})
}

func TestListComments(t *testing.T) {
	env := newTestEnv(t)
	sarah := env.registerUser(t, "Sarah Chen", "sarahchen")
	marcus := env.registerUser(t, "Marcus Johnson", "marcusj")

	idea, err := env.ideas.CreateIdea(env.ctx, sarah, "Idea", "Body.", nil, false)
	require.NoError(t, err)

	for _, body := range []string{"First comment", "Second comment", "Third comment"} {
		_, err := env.ideas.PostComment(env.ctx, idea.ID, marcus, body)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	comments, err := env.feed.ListComments(env.ctx, idea.ID, sarah)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "First comment", comments[0].Body)
	assert.Equal(t, "Third comment", comments[2].Body)
	assert.Equal(t, "marcusj", comments[0].Author.Username)
}

func TestListByAuthor(t *testing.T) {
	env := newTestEnv(t)
	sarah := env.registerUser(t, "Sarah Chen", "sarahchen")
	marcus := env.registerUser(t, "Marcus Johnson", "marcusj")

	for _, title := range []string{"One", "Two"} {
		_, err := env.ideas.CreateIdea(env.ctx, sarah, title, "Body.", nil, false)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}
	_, err := env.ideas.CreateIdea(env.ctx, marcus, "Other", "Body.", nil, false)
	require.NoError(t, err)

	ideas, err := env.feed.ListByAuthor(env.ctx, sarah, marcus)
	require.NoError(t, err)
	require.Len(t, ideas, 2)
	assert.Equal(t, "Two", ideas[0].Title)
	assert.Equal(t, "One", ideas[1].Title)
}
