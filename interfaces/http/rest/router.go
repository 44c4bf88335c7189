package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"ideahub-backend/application/services"
	"ideahub-backend/infrastructure/config"
	"ideahub-backend/interfaces/http/rest/handlers"
	"ideahub-backend/interfaces/http/rest/middleware"
	"ideahub-backend/pkg/auth"
	"ideahub-backend/pkg/common"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg       *config.Config
	identity  *services.IdentityService
	ideas     *services.IdeaService
	graph     *services.SocialGraphService
	feed      *services.FeedService
	validator *auth.JWTValidator
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	identity *services.IdentityService,
	ideas *services.IdeaService,
	graph *services.SocialGraphService,
	feed *services.FeedService,
	validator *auth.JWTValidator,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:       cfg,
		identity:  identity,
		ideas:     ideas,
		graph:     graph,
		feed:      feed,
		validator: validator,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	authHandler := handlers.NewAuthHandler(rt.identity, rt.logger)
	ideaHandler := handlers.NewIdeaHandler(rt.ideas, rt.feed, rt.logger)
	socialHandler := handlers.NewSocialHandler(rt.graph, rt.logger)
	feedHandler := handlers.NewFeedHandler(rt.feed, rt.logger)
	userHandler := handlers.NewUserHandler(rt.identity, rt.feed, rt.logger)

	router.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Public reads, viewer-aware when a token is present
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuthenticate(rt.validator))
			r.Get("/ideas/{ideaID}", ideaHandler.GetIdea)
			r.Get("/ideas/{ideaID}/roadmap", ideaHandler.GetRoadmap)
			r.Get("/ideas/{ideaID}/comments", ideaHandler.ListComments)
			r.Get("/users/{username}", userHandler.GetProfile)
			r.Get("/users/{username}/ideas", userHandler.GetUserIdeas)
		})

		// Authenticated mutations and the personal feed
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(rt.validator, rt.logger))

			r.Get("/feed", feedHandler.GetFeed)

			r.Post("/ideas", ideaHandler.CreateIdea)
			r.Delete("/ideas/{ideaID}", ideaHandler.DeleteIdea)
			r.Post("/ideas/{ideaID}/promote", ideaHandler.Promote)
			r.Post("/ideas/{ideaID}/roadmap", ideaHandler.PostUpdate)
			r.Post("/ideas/{ideaID}/comments", ideaHandler.PostComment)
			r.Delete("/comments/{commentID}", ideaHandler.DeleteComment)

			r.Post("/ideas/{ideaID}/like", socialHandler.ToggleIdeaLike)
			r.Post("/ideas/{ideaID}/bookmark", socialHandler.ToggleIdeaBookmark)
			r.Post("/comments/{commentID}/like", socialHandler.ToggleCommentLike)

			r.Put("/follows", socialHandler.Follow)
			r.Delete("/follows", socialHandler.Unfollow)
		})
	})

	return router
}

// healthCheck responds to load balancer health probes
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"status":      "healthy",
		"environment": rt.cfg.Environment,
	})
}
