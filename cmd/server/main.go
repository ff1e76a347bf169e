package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/api"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/config"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository/memory"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository/mongo"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/service"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/storage"
)

// @title FitPlan Hub API
// @version 1.0
// @description Marketplace API: trainers publish plans, users subscribe and follow trainers.
// @BasePath /api/v1
func main() {
	log.Println("Starting FitPlan Hub server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Printf("Configuration loaded (database driver: %s).", cfg.Database.Driver)

	// --- Repositories ---
	var repos repository.Repositories
	switch cfg.Database.Driver {
	case config.DriverMongo:
		dbClient, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			log.Printf("WARN: Failed to create indexes: %v", err)
		}
		if cfg.Database.Seed {
			seeded, err := mongo.Seed(ctx, appDB)
			if err != nil {
				log.Fatalf("FATAL: Could not seed MongoDB: %v", err)
			}
			if seeded {
				log.Println("Loaded sample data into MongoDB.")
			}
		}
		cancel()

		repos = mongo.NewRepositories(appDB)
		log.Println("Database connection established.")
	default:
		store := memory.NewDataStore()
		if cfg.Database.Seed {
			store.Seed()
		}
		repos = store.Repositories()
		log.Println("Using in-memory data store.")
	}

	// --- Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled {
		fileStorage, err = storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Println("S3 disabled; plan image uploads are unavailable.")
	}

	client := service.NewClient(repos, fileStorage, service.LatencyFromConfig(cfg.Latency))

	router := gin.Default() // Includes Logger and Recovery middleware
	api.SetupRoutes(router, client)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("ERROR: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
