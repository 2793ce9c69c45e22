package service

import (
	"context"

	"scoutlete/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier emits notifications without blocking the calling workflow.
type Notifier interface {
	Notify(notification *models.Notification)
}

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	Logout(ctx context.Context, req *models.LogoutRequest) error
	LogoutAll(ctx context.Context, userID primitive.ObjectID) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	RequestAvatarUpload(ctx context.Context, id string, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error)
}

// TeamServicer defines the interface for team operations.
type TeamServicer interface {
	CreateTeam(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamDetail, error)
	ListTeams(ctx context.Context, userID primitive.ObjectID, filter *models.TeamFilter, excludeUserTeams bool, page, limit int) (*models.TeamListResponse, error)
	UpdateTeam(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, teamID primitive.ObjectID) error
	JoinByCode(ctx context.Context, userID primitive.ObjectID, joinCode string) (*models.JoinTeamResponse, error)
}

// TeamMemberServicer defines the interface for team member operations.
type TeamMemberServicer interface {
	ListMembers(ctx context.Context, teamID primitive.ObjectID) (*models.TeamMemberListResponse, error)
	RemoveMember(ctx context.Context, teamID, memberID, actingUserID primitive.ObjectID) error
	LeaveTeam(ctx context.Context, teamID, userID primitive.ObjectID) error
}

// TeamInviteServicer defines the interface for join request and invitation operations.
type TeamInviteServicer interface {
	CreateInvite(ctx context.Context, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error)
	ListInvites(ctx context.Context, userID primitive.ObjectID) (*models.InviteListResponse, error)
	RespondInvite(ctx context.Context, actingUserID primitive.ObjectID, req *models.RespondInviteRequest) (*models.TeamInvite, error)
}

// NotificationServicer defines the interface for notification operations.
type NotificationServicer interface {
	Notify(notification *models.Notification)
	ListNotifications(ctx context.Context, userID primitive.ObjectID, unreadOnly bool, page, limit int) (*models.NotificationListResponse, error)
	MarkRead(ctx context.Context, id string, userID primitive.ObjectID) error
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer         = (*AuthService)(nil)
	_ UserServicer         = (*UserService)(nil)
	_ TeamServicer         = (*TeamService)(nil)
	_ TeamMemberServicer   = (*TeamMemberService)(nil)
	_ TeamInviteServicer   = (*TeamInviteService)(nil)
	_ NotificationServicer = (*NotificationService)(nil)
	_ Notifier             = (*NotificationService)(nil)
)
