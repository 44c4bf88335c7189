package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	session, err := env.identity.Register(env.ctx, "Sarah Chen", "sarahchen", "sarah@example.com", "hunter2secret")
	require.NoError(t, err)
	assert.NotEmpty(t, session.UserID)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "sarahchen", session.Username)

	t.Run("login returns a fresh session", func(t *testing.T) {
		login, err := env.identity.Login(env.ctx, "sarah@example.com", "hunter2secret")
		require.NoError(t, err)
		assert.Equal(t, session.UserID, login.UserID)
		assert.NotEmpty(t, login.Token)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := env.identity.Login(env.ctx, "sarah@example.com", "wrong-password")
		assert.True(t, pkgerrors.IsUnauthenticated(err))
	})

	t.Run("unknown email is rejected the same way", func(t *testing.T) {
		_, err := env.identity.Login(env.ctx, "nobody@example.com", "hunter2secret")
		assert.True(t, pkgerrors.IsUnauthenticated(err))
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		_, err := env.identity.Register(env.ctx, "Impostor", "sarahchen", "other@example.com", "hunter2secret")
		assert.True(t, pkgerrors.IsConflict(err))
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := env.identity.Register(env.ctx, "Impostor", "impostor", "sarah@example.com", "hunter2secret")
		assert.True(t, pkgerrors.IsConflict(err))
	})
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	sarah := env.registerUser(t, "Sarah Chen", "sarahchen")
	marcus := env.registerUser(t, "Marcus Johnson", "marcusj")

	_, err := env.ideas.CreateIdea(env.ctx, sarah, "One", "Body.", nil, false)
	require.NoError(t, err)
	_, err = env.ideas.CreateIdea(env.ctx, sarah, "Two", "Body.", nil, true)
	require.NoError(t, err)

	require.NoError(t, env.graph.Follow(env.ctx, marcus, sarah.String(), valueobjects.FollowTargetUser))
	require.NoError(t, env.graph.Follow(env.ctx, sarah, marcus.String(), valueobjects.FollowTargetUser))

	t.Run("stats are derived from stored rows and edges", func(t *testing.T) {
		profile, err := env.identity.Profile(env.ctx, "sarahchen", marcus)
		require.NoError(t, err)

		assert.Equal(t, "Sarah Chen", profile.Name)
		assert.Equal(t, 2, profile.IdeaCount)
		assert.Equal(t, 1, profile.FollowerCount)
		assert.Equal(t, 1, profile.FollowingCount)
		assert.True(t, profile.Following)
	})

	t.Run("viewer not following sees isFollowing false", func(t *testing.T) {
		other := env.registerUser(t, "Alex Rivera", "alexrivera")
		profile, err := env.identity.Profile(env.ctx, "sarahchen", other)
		require.NoError(t, err)
		assert.False(t, profile.Following)
	})

	t.Run("unknown username is not found", func(t *testing.T) {
		_, err := env.identity.Profile(env.ctx, "ghost", marcus)
		assert.True(t, pkgerrors.IsNotFound(err))
	})
}
