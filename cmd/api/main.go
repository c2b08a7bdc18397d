package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-profile-service/config"
	v1 "go-profile-service/internal/delivery/http/v1"
	"go-profile-service/internal/repository/mongodb"
	"go-profile-service/internal/usecase"
	"go-profile-service/pkg/auth"
	"go-profile-service/pkg/database"
	"go-profile-service/pkg/logger"
	"go-profile-service/pkg/redis"
	"go-profile-service/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Profile Service API
// @version         1.0
// @description     Candidate profile and resume metadata microservice.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting profile service", "port", cfg.Port, "environment", cfg.Environment)

	// 3. Setup Database
	client, db, err := database.NewMongoConnection(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Log.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.EnsureIndexes(ctx, db); err != nil {
			logger.Log.Warn("Failed to create indexes", "error", err)
		}
		cancel()
	}

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}

	// 5. Setup Repositories
	profileRepo := mongodb.NewProfileRepository(db)
	resumeRepo := mongodb.NewResumeRepository(db)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, profileRepo, validate)

	// 7. Setup Token Verifier
	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.JWTIssuer, cfg.JWTAudience)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC: profileUC,
		ResumeUC:  resumeUC,
		Verifier:  verifier,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
