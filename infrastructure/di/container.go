package di

import (
	"go.uber.org/zap"

	"ideahub-backend/application/services"
	"ideahub-backend/infrastructure/config"
	"ideahub-backend/infrastructure/persistence/sqlite"
	"ideahub-backend/pkg/auth"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	Store        *sqlite.Store
	JWTValidator *auth.JWTValidator
	Identity     *services.IdentityService
	Ideas        *services.IdeaService
	Graph        *services.SocialGraphService
	Feed         *services.FeedService
}

// Close releases the container's resources
func (c *Container) Close() error {
	return c.Store.Close()
}
