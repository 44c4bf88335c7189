package di

import (
	"go.uber.org/zap"

	"ideahub-backend/application/ports"
	"ideahub-backend/application/services"
	"ideahub-backend/infrastructure/config"
	"ideahub-backend/infrastructure/persistence/sqlite"
	"ideahub-backend/pkg/auth"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideStore opens the sqlite entity store and runs migrations
func ProvideStore(cfg *config.Config) (*sqlite.Store, error) {
	return sqlite.Open(cfg.DatabasePath)
}

// ProvideRepositories exposes the store's read-side repositories
func ProvideRepositories(store *sqlite.Store) ports.Repositories {
	return store
}

// ProvideUnitOfWork exposes the store's transaction boundary
func ProvideUnitOfWork(store *sqlite.Store) ports.UnitOfWork {
	return store
}

// ProvidePasswordHasher creates the bcrypt password hasher
func ProvidePasswordHasher(cfg *config.Config) *auth.PasswordHasher {
	return auth.NewPasswordHasher(cfg.BcryptCost)
}

// ProvideJWTGenerator creates the session token generator
func ProvideJWTGenerator(cfg *config.Config) (*auth.JWTGenerator, error) {
	return auth.NewJWTGenerator(jwtConfig(cfg))
}

// ProvideJWTValidator creates the session token validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	return auth.NewJWTValidator(jwtConfig(cfg))
}

// ProvideIdentityService creates the identity service
func ProvideIdentityService(
	uow ports.UnitOfWork,
	repos ports.Repositories,
	hasher *auth.PasswordHasher,
	tokens *auth.JWTGenerator,
	logger *zap.Logger,
) *services.IdentityService {
	return services.NewIdentityService(uow, repos, hasher, tokens, logger)
}

// ProvideIdeaService creates the idea service
func ProvideIdeaService(uow ports.UnitOfWork, repos ports.Repositories, logger *zap.Logger) *services.IdeaService {
	return services.NewIdeaService(uow, repos, logger)
}

// ProvideSocialGraphService creates the social graph service
func ProvideSocialGraphService(uow ports.UnitOfWork, repos ports.Repositories, logger *zap.Logger) *services.SocialGraphService {
	return services.NewSocialGraphService(uow, repos, logger)
}

// ProvideFeedService creates the feed service
func ProvideFeedService(repos ports.Repositories, logger *zap.Logger) *services.FeedService {
	return services.NewFeedService(repos, logger)
}

func jwtConfig(cfg *config.Config) auth.JWTConfig {
	secret := cfg.JWTSecret
	if secret == "" && cfg.IsDevelopment() {
		secret = "development-secret-change-in-production"
	}
	return auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
		Expiry:    cfg.JWTExpiry,
	}
}
