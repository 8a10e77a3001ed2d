// StreamTracker API server.
//
// @title StreamTracker API
// @version 1.0
// @description Streaming subscription tracker with watchlist-driven insights.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nwatkins/streamtracker/internal/api/handlers"
	"github.com/nwatkins/streamtracker/internal/api/router"
	"github.com/nwatkins/streamtracker/internal/config"
	"github.com/nwatkins/streamtracker/internal/db"
	"github.com/nwatkins/streamtracker/internal/pkg/logger"
	"github.com/nwatkins/streamtracker/internal/pkg/validator"
	"github.com/nwatkins/streamtracker/internal/repository/sqlite"
	"github.com/nwatkins/streamtracker/internal/services"
	"github.com/nwatkins/streamtracker/migrations"

	_ "github.com/nwatkins/streamtracker/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	database, err := db.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, migrations.GetFS()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	userRepo := sqlite.NewUserRepository(database)
	platformRepo := sqlite.NewPlatformRepository(database)
	watchlistRepo := sqlite.NewWatchlistRepository(database)

	// Services
	userService := services.NewUserService(userRepo, cfg.Auth.BCryptCost, log)
	platformService := services.NewPlatformService(platformRepo, log)
	watchlistService := services.NewWatchlistService(watchlistRepo, log)
	discoveryService := services.NewDiscoveryService(platformRepo, watchlistRepo, log)
	insightsService := services.NewInsightsService(platformRepo, watchlistRepo, log)

	// Handlers
	val := validator.New()
	h := &router.Handlers{
		Health:    handlers.NewHealthHandler(database, log),
		Auth:      handlers.NewAuthHandler(userService, cfg, log, val),
		Platform:  handlers.NewPlatformHandler(platformService, val),
		Watchlist: handlers.NewWatchlistHandler(watchlistService, val),
		Discovery: handlers.NewDiscoveryHandler(discoveryService),
		Insights:  handlers.NewInsightsHandler(insightsService),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	log.Info("Server stopped")
}
