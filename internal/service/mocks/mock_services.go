// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"scoutlete/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc  func(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	LoginFunc     func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RefreshFunc   func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	LogoutFunc    func(ctx context.Context, req *models.LogoutRequest) error
	LogoutAllFunc func(ctx context.Context, userID primitive.ObjectID) error
}

func (m *MockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthService) LogoutAll(ctx context.Context, userID primitive.ObjectID) error {
	if m.LogoutAllFunc != nil {
		return m.LogoutAllFunc(ctx, userID)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc             func(ctx context.Context, id string) (*models.User, error)
	UpdateUserFunc          func(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	RequestAvatarUploadFunc func(ctx context.Context, id string, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error)
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) RequestAvatarUpload(ctx context.Context, id string, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error) {
	if m.RequestAvatarUploadFunc != nil {
		return m.RequestAvatarUploadFunc(ctx, id, req)
	}
	return nil, nil
}

// MockTeamService is a mock implementation of TeamServicer.
type MockTeamService struct {
	CreateTeamFunc func(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error)
	GetTeamFunc    func(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamDetail, error)
	ListTeamsFunc  func(ctx context.Context, userID primitive.ObjectID, filter *models.TeamFilter, excludeUserTeams bool, page, limit int) (*models.TeamListResponse, error)
	UpdateTeamFunc func(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeamFunc func(ctx context.Context, teamID primitive.ObjectID) error
	JoinByCodeFunc func(ctx context.Context, userID primitive.ObjectID, joinCode string) (*models.JoinTeamResponse, error)
}

func (m *MockTeamService) CreateTeam(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeam(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamDetail, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, teamID, userID)
	}
	return nil, nil
}

func (m *MockTeamService) ListTeams(ctx context.Context, userID primitive.ObjectID, filter *models.TeamFilter, excludeUserTeams bool, page, limit int) (*models.TeamListResponse, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, userID, filter, excludeUserTeams, page, limit)
	}
	return nil, nil
}

func (m *MockTeamService) UpdateTeam(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	if m.UpdateTeamFunc != nil {
		return m.UpdateTeamFunc(ctx, teamID, req)
	}
	return nil, nil
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, teamID primitive.ObjectID) error {
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, teamID)
	}
	return nil
}

func (m *MockTeamService) JoinByCode(ctx context.Context, userID primitive.ObjectID, joinCode string) (*models.JoinTeamResponse, error) {
	if m.JoinByCodeFunc != nil {
		return m.JoinByCodeFunc(ctx, userID, joinCode)
	}
	return nil, nil
}

// MockTeamMemberService is a mock implementation of TeamMemberServicer.
type MockTeamMemberService struct {
	ListMembersFunc  func(ctx context.Context, teamID primitive.ObjectID) (*models.TeamMemberListResponse, error)
	RemoveMemberFunc func(ctx context.Context, teamID, memberID, actingUserID primitive.ObjectID) error
	LeaveTeamFunc    func(ctx context.Context, teamID, userID primitive.ObjectID) error
}

func (m *MockTeamMemberService) ListMembers(ctx context.Context, teamID primitive.ObjectID) (*models.TeamMemberListResponse, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockTeamMemberService) RemoveMember(ctx context.Context, teamID, memberID, actingUserID primitive.ObjectID) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, teamID, memberID, actingUserID)
	}
	return nil
}

func (m *MockTeamMemberService) LeaveTeam(ctx context.Context, teamID, userID primitive.ObjectID) error {
	if m.LeaveTeamFunc != nil {
		return m.LeaveTeamFunc(ctx, teamID, userID)
	}
	return nil
}

// MockTeamInviteService is a mock implementation of TeamInviteServicer.
type MockTeamInviteService struct {
	CreateInviteFunc  func(ctx context.Context, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error)
	ListInvitesFunc   func(ctx context.Context, userID primitive.ObjectID) (*models.InviteListResponse, error)
	RespondInviteFunc func(ctx context.Context, actingUserID primitive.ObjectID, req *models.RespondInviteRequest) (*models.TeamInvite, error)
}

func (m *MockTeamInviteService) CreateInvite(ctx context.Context, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
	if m.CreateInviteFunc != nil {
		return m.CreateInviteFunc(ctx, actingUserID, req)
	}
	return nil, nil
}

func (m *MockTeamInviteService) ListInvites(ctx context.Context, userID primitive.ObjectID) (*models.InviteListResponse, error) {
	if m.ListInvitesFunc != nil {
		return m.ListInvitesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTeamInviteService) RespondInvite(ctx context.Context, actingUserID primitive.ObjectID, req *models.RespondInviteRequest) (*models.TeamInvite, error) {
	if m.RespondInviteFunc != nil {
		return m.RespondInviteFunc(ctx, actingUserID, req)
	}
	return nil, nil
}

// MockNotificationService is a mock implementation of NotificationServicer.
type MockNotificationService struct {
	NotifyFunc            func(notification *models.Notification)
	ListNotificationsFunc func(ctx context.Context, userID primitive.ObjectID, unreadOnly bool, page, limit int) (*models.NotificationListResponse, error)
	MarkReadFunc          func(ctx context.Context, id string, userID primitive.ObjectID) error
}

func (m *MockNotificationService) Notify(notification *models.Notification) {
	if m.NotifyFunc != nil {
		m.NotifyFunc(notification)
	}
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, userID primitive.ObjectID, unreadOnly bool, page, limit int) (*models.NotificationListResponse, error) {
	if m.ListNotificationsFunc != nil {
		return m.ListNotificationsFunc(ctx, userID, unreadOnly, page, limit)
	}
	return nil, nil
}

func (m *MockNotificationService) MarkRead(ctx context.Context, id string, userID primitive.ObjectID) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id, userID)
	}
	return nil
}
