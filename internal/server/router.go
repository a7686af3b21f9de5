package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/funopi/funopi-backend/internal/handlers"
	"github.com/funopi/funopi-backend/internal/middleware"
	"github.com/funopi/funopi-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log                 *logger.Logger
	CORSAllowOrigins    []string
	AuthMiddleware      *middleware.AuthMiddleware
	GamesHandler        *handlers.GamesHandler
	RatingsHandler      *handlers.RatingsHandler
	AdminAuthHandler    *handlers.AdminAuthHandler
	AdminGamesHandler   *handlers.AdminGamesHandler
	AdminRatingsHandler *handlers.AdminRatingsHandler
	AdminStatsHandler   *handlers.AdminStatsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog(cfg.Log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/games", cfg.GamesHandler.List)
		api.GET("/ratings", cfg.RatingsHandler.Get)
		api.POST("/ratings", cfg.RatingsHandler.Submit)
		api.POST("/admin/login", cfg.AdminAuthHandler.Login)
		api.POST("/admin/logout", cfg.AdminAuthHandler.Logout)
	}

	admin := router.Group("/api/admin")
	admin.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		admin.GET("/games", cfg.AdminGamesHandler.List)
		admin.POST("/games", cfg.AdminGamesHandler.Create)
		admin.POST("/games/preview", cfg.AdminGamesHandler.Preview)
		admin.PUT("/games/:row", cfg.AdminGamesHandler.Update)
		admin.DELETE("/games/:row", cfg.AdminGamesHandler.Delete)
		admin.GET("/stats", cfg.AdminStatsHandler.Get)
		admin.GET("/ratings", cfg.AdminRatingsHandler.Summaries)
		admin.GET("/ratings/details", cfg.AdminRatingsHandler.Details)
		admin.GET("/ratings/export", cfg.AdminRatingsHandler.Export)
	}

	return router
}
