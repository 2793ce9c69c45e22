// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "scoutlete/swagger" // Import generated swagger docs

	"scoutlete/internal/authz"
	"scoutlete/internal/handler"
	"scoutlete/internal/middleware"
	"scoutlete/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	TeamHandler         *handler.TeamHandler
	TeamMemberHandler   *handler.TeamMemberHandler
	TeamInviteHandler   *handler.TeamInviteHandler
	NotificationHandler *handler.NotificationHandler
	JWTManager          *auth.JWTManager
	Authorizer          authz.Authorizer
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/refresh", cfg.AuthHandler.Refresh)
		}

		// Auth routes (protected)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.Auth(cfg.JWTManager))
		{
			authProtected.POST("/logout", cfg.AuthHandler.Logout)
			authProtected.POST("/logout-all", cfg.AuthHandler.LogoutAll)
		}

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(middleware.Auth(cfg.JWTManager))
		{
			users.GET("/me", cfg.UserHandler.GetMe)
			users.PUT("/me", cfg.UserHandler.UpdateMe)
			users.POST("/me/avatar-upload", cfg.UserHandler.RequestAvatarUpload)
		}

		// Team routes (protected)
		teams := v1.Group("/teams")
		teams.Use(middleware.Auth(cfg.JWTManager))
		{
			teams.POST("", cfg.TeamHandler.CreateTeam)
			teams.GET("", cfg.TeamHandler.ListTeams)
			teams.POST("/join", cfg.TeamHandler.JoinTeam)

			teamWithID := teams.Group("/:teamId")
			{
				// Team details - the service decides visibility, so no
				// membership requirement here.
				teamWithID.GET("", cfg.TeamHandler.GetTeam)
				teamWithID.PUT("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionTeamUpdate), cfg.TeamHandler.UpdateTeam)
				teamWithID.DELETE("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionTeamDelete), cfg.TeamHandler.DeleteTeam)

				// Team members
				members := teamWithID.Group("/members")
				{
					members.GET("", middleware.TeamMember(cfg.Authorizer), cfg.TeamMemberHandler.ListMembers)
					members.DELETE("/:memberId", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMemberRemove), cfg.TeamMemberHandler.RemoveMember)
				}
				teamWithID.POST("/leave", middleware.TeamMember(cfg.Authorizer), cfg.TeamMemberHandler.LeaveTeam)
			}
		}

		// Join request / invitation routes (protected). Team-level
		// permission checks live in the service because a join request
		// is created by a non-member.
		invites := v1.Group("/team-invites")
		invites.Use(middleware.Auth(cfg.JWTManager))
		{
			invites.POST("", cfg.TeamInviteHandler.CreateInvite)
			invites.GET("", cfg.TeamInviteHandler.ListInvites)
			invites.PUT("", cfg.TeamInviteHandler.RespondInvite)
		}

		// Notification routes (protected)
		notifications := v1.Group("/notifications")
		notifications.Use(middleware.Auth(cfg.JWTManager))
		{
			notifications.GET("", cfg.NotificationHandler.ListNotifications)
			notifications.PUT("/:notificationId/read", cfg.NotificationHandler.MarkRead)
		}
	}

	return r
}
