package api

import (
	"github.com/gin-gonic/gin"
	"github.com/timmy/machines-eye/internal/api/handler"
	"github.com/timmy/machines-eye/internal/api/middleware"
	"github.com/timmy/machines-eye/internal/config"
	"github.com/timmy/machines-eye/internal/service"
	"github.com/timmy/machines-eye/internal/storage"
)

// SetupRouter configures the Gin router with all routes.
// Parameters:
//   - registry: snapshot registry every handler reads from.
//   - images: storage used to resolve image URLs; may be nil.
//   - cfg: server configuration (mode, CORS, admin token).
// Returns:
//   - *gin.Engine: configured router.
func SetupRouter(registry *service.Registry, images storage.ObjectStorage, cfg *config.ServerConfig) *gin.Engine {
	// Set Gin mode
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORS(cfg.CORS))

	// Create handlers
	healthHandler := handler.NewHealthHandler(registry)
	exhibitionHandler := handler.NewExhibitionHandler(registry, images)
	workHandler := handler.NewWorkHandler(registry)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Exhibition structure
		v1.GET("/exhibition", exhibitionHandler.GetExhibition)
		v1.GET("/sections", exhibitionHandler.ListSections)
		v1.GET("/sections/:id", exhibitionHandler.GetSection)
		v1.GET("/sections/:id/pairs/:pairId", exhibitionHandler.GetPair)

		// Works
		v1.GET("/works", workHandler.ListWorks)
		v1.GET("/works/:id", workHandler.GetWork)
		v1.GET("/works/:id/lens", workHandler.GetLens)
		v1.GET("/compare", workHandler.Compare)

		// Stats
		v1.GET("/stats", exhibitionHandler.GetStats)

		if cfg.AdminToken != "" {
			adminHandler := handler.NewAdminHandler(registry)
			admin := v1.Group("/admin", middleware.AdminAuth(cfg.AdminToken))
			admin.POST("/reload", adminHandler.Reload)
			admin.GET("/reload/status", adminHandler.GetReloadStatus)
		}
	}

	return r
}
