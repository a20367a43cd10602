// cmd/farmersdata-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	v1 "github.com/Fransisiw/DA-Dolores-FarmersData/internal/api/rest/v1"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/app"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/folders"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/items"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/infrastructure/persistence"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/config"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database connection: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db            *gorm.DB
	folderService folders.FolderService
	itemService   items.ItemService
}

// initializeDependencies sets up the database, repositories and services
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Ensure the folders and items tables exist; a failure here must
	// abort startup, not be swallowed.
	if err := persistence.MigrateSchema(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	folderRepo, err := persistence.NewGormFolderRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder repository: %w", err)
	}

	itemRepo, err := persistence.NewGormItemRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create item repository: %w", err)
	}

	folderService, err := app.NewFolderService(folderRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder service: %w", err)
	}

	itemService, err := app.NewItemService(itemRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db:            db,
		folderService: folderService,
		itemService:   itemService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()
	r.Use(v1.RequestID())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", v1.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.folderService, deps.itemService)

	// Unmatched routes fall back to static assets
	if cfg.StaticDir != "" {
		r.NoRoute(func(c *gin.Context) {
			c.File(filepath.Join(cfg.StaticDir, "index.html"))
		})
		r.Static("/static", cfg.StaticDir)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
