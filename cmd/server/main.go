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

	"github.com/officeappout/out-run-app-sub011/internal/api"
	"github.com/officeappout/out-run-app-sub011/internal/cache"
	"github.com/officeappout/out-run-app-sub011/internal/config"
	"github.com/officeappout/out-run-app-sub011/internal/repository/mongo"
	"github.com/officeappout/out-run-app-sub011/internal/service"
	"github.com/officeappout/out-run-app-sub011/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Workout Engine Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
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
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureGearIndexes(ctx, appDB.Collection("gear"))
		mongo.EnsureWorkoutPlanIndexes(ctx, appDB.Collection("workout_plans"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing media storage service...")
	mediaStorage, err := storage.NewS3MediaStorage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	programRepo := mongo.NewMongoProgramRepository(appDB)
	gearRepo := mongo.NewMongoGearRepository(appDB)
	parkRepo := mongo.NewMongoParkRepository(appDB)
	planRepo := mongo.NewMongoWorkoutPlanRepository(appDB)

	// --- Initialize Cache ---
	gearCache := cache.NewGearCache(gearRepo, cfg.Cache.GearTTL)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	plannerService := service.NewPlannerService(userRepo, exerciseRepo, programRepo, parkRepo, planRepo)
	exerciseService := service.NewExerciseService(exerciseRepo, mediaStorage)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, plannerService, exerciseService, gearCache, parkRepo)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
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
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
