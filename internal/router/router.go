package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shramik/admin-backend/internal/config"
	"github.com/shramik/admin-backend/internal/handler"
	"github.com/shramik/admin-backend/internal/middleware"
	"github.com/shramik/admin-backend/internal/response"
	"github.com/shramik/admin-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth   *handler.AuthHandler
	User   *handler.UserHandler
	Worker *handler.WorkerHandler
	Stats  *handler.StatsHandler
	Health *handler.HealthHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// A nil limiter disables rate limiting.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
	limiter middleware.Limiter,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", response.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{response.HeaderRequestID}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(middleware.Brotli())

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	router.GET("/health", handlers.Health.Health)

	// ─── 1. Auth Group (Public) ────────────────────────────────────────
	auth := router.Group("/auth")
	auth.Use(middleware.NoStore())
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/worker-login", handlers.Auth.WorkerLogin)
		auth.POST("/validate", handlers.Auth.Validate)

		// Any authenticated principal.
		auth.GET("/me", middleware.RequireAuth(authService), handlers.Auth.Me)
	}

	// ─── 2. Management Groups (JWT + Admin) ────────────────────────────
	gate := []gin.HandlerFunc{}
	if limiter != nil {
		gate = append(gate, middleware.RateLimit(limiter, log))
	}
	gate = append(gate,
		middleware.NoStore(),
		middleware.RequireAuth(authService),
		middleware.RequireAdmin(),
	)

	users := router.Group("/users")
	users.Use(gate...)
	{
		users.GET("", handlers.User.ListUsers)
		users.POST("", handlers.User.CreateUser)
		users.GET("/stats", handlers.Stats.GetStats)
		users.GET("/:id", handlers.User.GetUser)
		users.PUT("/:id", handlers.User.UpdateUser)
		users.DELETE("/:id", handlers.User.DeleteUser)
	}

	workers := router.Group("/workers")
	workers.Use(gate...)
	{
		workers.GET("", handlers.Worker.ListWorkers)
		workers.POST("", handlers.Worker.CreateWorker)
		workers.GET("/:id", handlers.Worker.GetWorker)
		workers.PUT("/:id", handlers.Worker.UpdateWorker)
		workers.PUT("/:id/toggle-status", handlers.Worker.ToggleWorkerStatus)
		workers.DELETE("/:id", handlers.Worker.DeleteWorker)
	}

	return router
}
