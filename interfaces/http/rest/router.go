package rest

import (
	"net/http"

	"gamewatch-backend/infrastructure/di"
	"gamewatch-backend/interfaces/http/rest/handlers"
	"gamewatch-backend/interfaces/http/rest/middleware"
	"gamewatch-backend/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		logger:    container.Logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() (http.Handler, error) {
	cfg := rt.container.Config

	validator, err := auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
	})
	if err != nil {
		return nil, err
	}

	ipLimiter := auth.NewIPRateLimiter(cfg.IPRequestsPerMinute)
	userLimiter := auth.NewUserRateLimiter(cfg.UserRequestsPerMinute)
	authenticate := middleware.Authenticate(validator, ipLimiter, userLimiter, rt.logger)

	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.gamewatch.app"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	gameHandler := handlers.NewGameHandler(rt.container.GameService, rt.logger)
	reviewHandler := handlers.NewReviewHandler(rt.container.ReviewService, rt.logger)
	watchlistHandler := handlers.NewWatchlistHandler(rt.container.WatchlistService, rt.logger)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authenticate)

		r.Route("/games", func(r chi.Router) {
			r.Get("/", gameHandler.ListGames)
			r.Get("/{gameID}", gameHandler.GetGame)

			// Catalog mutations are restricted to admins
			r.With(middleware.RequireRole("admin")).Post("/", gameHandler.CreateGame)
			r.With(middleware.RequireRole("admin")).Put("/{gameID}", gameHandler.UpdateGame)
			r.With(middleware.RequireRole("admin")).Delete("/{gameID}", gameHandler.DeleteGame)

			r.Route("/{gameID}/reviews", func(r chi.Router) {
				r.Get("/", reviewHandler.ListReviews)
				r.Put("/", reviewHandler.UpsertReview)
				r.Delete("/", reviewHandler.DeleteReview)

				// Moderation: admins may remove any user's review
				r.With(middleware.RequireRole("admin")).Delete("/{userID}", reviewHandler.DeleteReviewForUser)
			})
		})

		r.Route("/watchlist", func(r chi.Router) {
			r.Get("/", watchlistHandler.ListEntries)
			r.Post("/", watchlistHandler.AddEntry)
			r.Put("/{gameID}/status", watchlistHandler.UpdateStatus)
			r.Delete("/{gameID}", watchlistHandler.RemoveEntry)
		})
	})

	return router, nil
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
