package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scoutlete/internal/authz"
	"scoutlete/internal/cache"
	"scoutlete/internal/config"
	"scoutlete/internal/database"
	"scoutlete/internal/handler"
	"scoutlete/internal/queue"
	"scoutlete/internal/repository"
	"scoutlete/internal/router"
	"scoutlete/internal/service"
	"scoutlete/internal/storage"
	"scoutlete/internal/validator"
	"scoutlete/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Scoutlete API
// @version         1.0
// @description     A REST API for sports team management built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	refreshTokenRepo := repository.NewRefreshTokenRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	teamMemberRepo := repository.NewTeamMemberRepository(mongoDB.Database)
	teamInviteRepo := repository.NewTeamInviteRepository(mongoDB.Database)
	notificationRepo := repository.NewNotificationRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(teamMemberRepo)

	// Notification queue and processor
	notificationQueue := queue.NewMemoryQueue(cfg.NotificationQueueSize)
	notificationProcessor := queue.NewProcessor(notificationQueue, notificationRepo, cfg.NotificationWorkers)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Cache:            redisCache,
		JWTManager:       jwtManager,
		AccessTokenTTL:   cfg.AccessTokenExpiry,
		RefreshTokenTTL:  cfg.RefreshTokenExpiry,
	})
	userService := service.NewUserService(userRepo, redisCache, s3Client)
	notificationService := service.NewNotificationService(notificationRepo, notificationQueue)
	teamService := service.NewTeamService(teamRepo, teamMemberRepo, teamInviteRepo, userRepo, notificationService)
	teamMemberService := service.NewTeamMemberService(teamMemberRepo, teamRepo, userRepo, notificationService)
	teamInviteService := service.NewTeamInviteService(teamInviteRepo, teamMemberRepo, teamRepo, userRepo, notificationService)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	teamHandler := handler.NewTeamHandler(teamService)
	teamMemberHandler := handler.NewTeamMemberHandler(teamMemberService)
	teamInviteHandler := handler.NewTeamInviteHandler(teamInviteService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:         authHandler,
		UserHandler:         userHandler,
		TeamHandler:         teamHandler,
		TeamMemberHandler:   teamMemberHandler,
		TeamInviteHandler:   teamInviteHandler,
		NotificationHandler: notificationHandler,
		JWTManager:          jwtManager,
		Authorizer:          authorizer,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start notification processor
	notificationProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Stop accepting new notifications, then drain the workers
	notificationQueue.Close()
	cancel()

	log.Println("Stopping notification processor...")
	notificationProcessor.Stop()

	log.Println("Server shutdown complete")
}
