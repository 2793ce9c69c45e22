//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"scoutlete/internal/authz"
	"scoutlete/internal/cache"
	"scoutlete/internal/handler"
	"scoutlete/internal/queue"
	"scoutlete/internal/repository"
	"scoutlete/internal/router"
	"scoutlete/internal/service"
	"scoutlete/internal/storage"
	"scoutlete/pkg/auth"
	"scoutlete/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestRefreshTokenExpiry is the refresh token expiry time used in tests.
	TestRefreshTokenExpiry = 7 * 24 * time.Hour
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	TeamRepo         repository.TeamRepository
	TeamMemberRepo   repository.TeamMemberRepository
	TeamInviteRepo   repository.TeamInviteRepository
	NotificationRepo repository.NotificationRepository

	// Services (for direct service access in tests)
	AuthService         service.AuthServicer
	UserService         service.UserServicer
	TeamService         service.TeamServicer
	TeamMemberService   service.TeamMemberServicer
	TeamInviteService   service.TeamInviteServicer
	NotificationService service.NotificationServicer

	// Auth
	JWTManager *auth.JWTManager

	// Queue
	NotificationQueue     *queue.MemoryQueue
	NotificationProcessor *queue.Processor
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Create cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// Create storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)

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
	notificationQueue := queue.NewMemoryQueue(100)
	notificationProcessor := queue.NewProcessor(notificationQueue, notificationRepo, 2)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Cache:            redisCache,
		JWTManager:       jwtManager,
		AccessTokenTTL:   TestAccessTokenExpiry,
		RefreshTokenTTL:  TestRefreshTokenExpiry,
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

	return &TestServer{
		Router:                r,
		MongoDB:               mongoDB,
		Redis:                 redisContainer,
		MinIO:                 minioContainer,
		UserRepo:              userRepo,
		RefreshTokenRepo:      refreshTokenRepo,
		TeamRepo:              teamRepo,
		TeamMemberRepo:        teamMemberRepo,
		TeamInviteRepo:        teamInviteRepo,
		NotificationRepo:      notificationRepo,
		AuthService:           authService,
		UserService:           userService,
		TeamService:           teamService,
		TeamMemberService:     teamMemberService,
		TeamInviteService:     teamInviteService,
		NotificationService:   notificationService,
		JWTManager:            jwtManager,
		NotificationQueue:     notificationQueue,
		NotificationProcessor: notificationProcessor,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// StartNotificationProcessor starts the notification processor.
func (ts *TestServer) StartNotificationProcessor(ctx context.Context) {
	ts.NotificationProcessor.Start(ctx)
}

// StopNotificationProcessor stops the processor and resets the queue.
// This ensures the queue can be used by subsequent tests.
func (ts *TestServer) StopNotificationProcessor() {
	ts.NotificationProcessor.Stop()
	// Reset the queue so it can be used again
	ts.NotificationQueue.Reset()
	// Create a new processor since the old one has shutdown state
	ts.NotificationProcessor = queue.NewProcessor(ts.NotificationQueue, ts.NotificationRepo, 2)
}
