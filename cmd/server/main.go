package main

import (
	"context"
	"errors"
	"fitzone/fitzone-api/internal/api"
	"fitzone/fitzone-api/internal/config"
	"fitzone/fitzone-api/internal/repository/mongo"
	"fitzone/fitzone-api/internal/seed"
	"fitzone/fitzone-api/internal/service"
	"fitzone/fitzone-api/internal/storage"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title FITZONE API
// @version 1.0
// @description API for the FITZONE gym: catalog, membership, enrollment, and admin console.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting FITZONE API Server...")

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
	// Indexes must exist before seeding: the unique email and (user, program)
	// indexes are what make the seeder and signup paths race-free.
	log.Println("Ensuring database indexes...")
	indexCtx, indexCancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer indexCancel()
	if err := mongo.EnsureUserIndexes(indexCtx, appDB.Collection("users")); err != nil {
		log.Fatalf("FATAL: Failed to create user indexes: %v", err)
	}
	if err := mongo.EnsureProgramIndexes(indexCtx, appDB.Collection("programs")); err != nil {
		log.Fatalf("FATAL: Failed to create program indexes: %v", err)
	}
	if err := mongo.EnsureTrainerIndexes(indexCtx, appDB.Collection("trainers")); err != nil {
		log.Fatalf("FATAL: Failed to create trainer indexes: %v", err)
	}
	if err := mongo.EnsureEnrollmentIndexes(indexCtx, appDB.Collection("enrollments")); err != nil {
		log.Fatalf("FATAL: Failed to create enrollment indexes: %v", err)
	}
	if err := mongo.EnsureLeadIndexes(indexCtx, appDB.Collection("forms")); err != nil {
		log.Fatalf("FATAL: Failed to create lead indexes: %v", err)
	}
	log.Println("Index creation completed.")

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	programRepo := mongo.NewMongoProgramRepository(appDB)
	trainerRepo := mongo.NewMongoTrainerRepository(appDB)
	enrollmentRepo := mongo.NewMongoEnrollmentRepository(appDB)
	leadRepo := mongo.NewMongoLeadRepository(appDB)

	// --- Seed Reference Data ---
	log.Println("Seeding reference data...")
	seeder := seed.NewSeeder(programRepo, trainerRepo, userRepo, cfg.Admin)
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer seedCancel()
	if err := seeder.Run(seedCtx); err != nil {
		log.Fatalf("FATAL: Failed to seed database: %v", err)
	}

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	catalogService := service.NewCatalogService(programRepo, trainerRepo, userRepo, fileStorage)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, programRepo)
	leadService := service.NewLeadService(leadRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, catalogService, enrollmentService, leadService)

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
