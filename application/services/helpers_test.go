package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ideahub-backend/domain/core/valueobjects"
	"ideahub-backend/infrastructure/persistence/sqlite"
	"ideahub-backend/pkg/auth"
)

// testEnv wires every service against a fresh sqlite store on a temp file
type testEnv struct {
	ctx      context.Context
	identity *IdentityService
	ideas    *IdeaService
	graph    *SocialGraphService
	feed     *FeedService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := zap.NewNop()
	// Minimum bcrypt cost keeps the suite fast
	hasher := auth.NewPasswordHasher(4)
	tokens, err := auth.NewJWTGenerator(auth.JWTConfig{
		SecretKey: "test-secret",
		Issuer:    "ideahub-test",
		Expiry:    time.Hour,
	})
	require.NoError(t, err)

	return &testEnv{
		ctx:      context.Background(),
		identity: NewIdentityService(store, store, hasher, tokens, logger),
		ideas:    NewIdeaService(store, store, logger),
		graph:    NewSocialGraphService(store, store, logger),
		feed:     NewFeedService(store, logger),
	}
}

// registerUser creates an account and returns its ID
func (env *testEnv) registerUser(t *testing.T, name, username string) valueobjects.UserID {
	t.Helper()

	session, err := env.identity.Register(env.ctx, name, username, username+"@example.com", "password123")
	require.NoError(t, err)

	userID, err := valueobjects.NewUserIDFromString(session.UserID)
	require.NoError(t, err)
	return userID
}
