package main

import (
	"context"
	"fmt"
	"os"

	"github.com/funopi/funopi-backend/internal/config"
	"github.com/funopi/funopi-backend/internal/handlers"
	"github.com/funopi/funopi-backend/internal/middleware"
	"github.com/funopi/funopi-backend/internal/platform/logger"
	"github.com/funopi/funopi-backend/internal/platform/sheets"
	"github.com/funopi/funopi-backend/internal/repos"
	"github.com/funopi/funopi-backend/internal/server"
	"github.com/funopi/funopi-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Store
	store, err := sheets.New(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("Could not init sheets store", "error", err)
	}

	// Repos
	catalogRepo := repos.NewCatalogRepo(store, cfg.CatalogSheet, log)
	ratingRepo := repos.NewRatingRepo(store, cfg.RatingsSheet, log)

	// Services
	sessionService := services.NewSessionService(cfg, log)
	catalogService := services.NewCatalogService(log, catalogRepo)
	ratingService := services.NewRatingService(log, ratingRepo)
	statsService := services.NewStatsService(log, catalogRepo, ratingRepo)
	adminRatingsService := services.NewAdminRatingsService(log, ratingRepo)
	previewService := services.NewPreviewService(log, ratingRepo, cfg.ProbeTimeout)

	// Handlers
	gamesHandler := handlers.NewGamesHandler(catalogService)
	ratingsHandler := handlers.NewRatingsHandler(ratingService)
	adminAuthHandler := handlers.NewAdminAuthHandler(sessionService, cfg.CookieSecure)
	adminGamesHandler := handlers.NewAdminGamesHandler(catalogService, previewService)
	adminRatingsHandler := handlers.NewAdminRatingsHandler(adminRatingsService)
	adminStatsHandler := handlers.NewAdminStatsHandler(statsService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, sessionService)

	router := server.NewRouter(server.RouterConfig{
		Log:                 log,
		CORSAllowOrigins:    cfg.CORSAllowOrigins,
		AuthMiddleware:      authMiddleware,
		GamesHandler:        gamesHandler,
		RatingsHandler:      ratingsHandler,
		AdminAuthHandler:    adminAuthHandler,
		AdminGamesHandler:   adminGamesHandler,
		AdminRatingsHandler: adminRatingsHandler,
		AdminStatsHandler:   adminStatsHandler,
	})

	log.Info("Server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
