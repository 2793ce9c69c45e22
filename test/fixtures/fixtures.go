// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"scoutlete/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Name:      "Test User",
			Email:     fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			Sport:     "badminton",
			Location:  "Austin, TX",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

func (b *UserBuilder) WithSport(sport string) *UserBuilder {
	b.user.Sport = sport
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Team Fixtures =====

// TeamBuilder provides fluent API for building test teams.
type TeamBuilder struct {
	team models.Team
}

// NewTeam creates a new TeamBuilder with sensible defaults.
func NewTeam() *TeamBuilder {
	return &TeamBuilder{
		team: models.Team{
			ID:              primitive.NewObjectID(),
			Name:            "Test Team",
			Description:     "A test team",
			Sport:           "badminton",
			Location:        "Austin, TX",
			ExperienceLevel: "intermediate",
			MaxMembers:      6,
			CurrentMembers:  1,
			IsPublic:        true,
			JoinCode:        joinCodeFromHex(primitive.NewObjectID().Hex()),
			Status:          models.TeamStatusActive,
			CreatedBy:       primitive.NewObjectID(),
			Requirements:    []string{},
			RequiredSkills:  []string{},
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		},
	}
}

// joinCodeFromHex derives a unique 8-char uppercase code from an ObjectID hex.
func joinCodeFromHex(hex string) string {
	code := make([]byte, models.JoinCodeLength)
	for i := 0; i < models.JoinCodeLength; i++ {
		ch := hex[i]
		if ch >= 'a' && ch <= 'z' {
			ch = ch - 'a' + 'A'
		}
		code[i] = ch
	}
	return string(code)
}

func (b *TeamBuilder) WithID(id primitive.ObjectID) *TeamBuilder {
	b.team.ID = id
	return b
}

func (b *TeamBuilder) WithName(name string) *TeamBuilder {
	b.team.Name = name
	return b
}

func (b *TeamBuilder) WithSport(sport string) *TeamBuilder {
	b.team.Sport = sport
	return b
}

func (b *TeamBuilder) WithJoinCode(code string) *TeamBuilder {
	b.team.JoinCode = code
	return b
}

func (b *TeamBuilder) WithCreatedBy(userID primitive.ObjectID) *TeamBuilder {
	b.team.CreatedBy = userID
	return b
}

func (b *TeamBuilder) WithMaxMembers(max int) *TeamBuilder {
	b.team.MaxMembers = max
	return b
}

func (b *TeamBuilder) WithCurrentMembers(count int) *TeamBuilder {
	b.team.CurrentMembers = count
	return b
}

func (b *TeamBuilder) Private() *TeamBuilder {
	b.team.IsPublic = false
	return b
}

func (b *TeamBuilder) WithStatus(status models.TeamStatus) *TeamBuilder {
	b.team.Status = status
	return b
}

func (b *TeamBuilder) Disbanded() *TeamBuilder {
	b.team.Status = models.TeamStatusDisbanded
	return b
}

func (b *TeamBuilder) Full() *TeamBuilder {
	b.team.CurrentMembers = b.team.MaxMembers
	return b
}

func (b *TeamBuilder) Build() models.Team {
	return b.team
}

func (b *TeamBuilder) BuildPtr() *models.Team {
	return &b.team
}

// ===== TeamMember Fixtures =====

// TeamMemberBuilder provides fluent API for building test team members.
type TeamMemberBuilder struct {
	member models.TeamMember
}

// NewTeamMember creates a new TeamMemberBuilder with sensible defaults.
func NewTeamMember() *TeamMemberBuilder {
	return &TeamMemberBuilder{
		member: models.TeamMember{
			ID:       primitive.NewObjectID(),
			TeamID:   primitive.NewObjectID(),
			UserID:   primitive.NewObjectID(),
			Role:     models.RoleMember,
			Status:   models.MemberStatusActive,
			JoinedAt: time.Now(),
		},
	}
}

func (b *TeamMemberBuilder) WithID(id primitive.ObjectID) *TeamMemberBuilder {
	b.member.ID = id
	return b
}

func (b *TeamMemberBuilder) WithTeamID(teamID primitive.ObjectID) *TeamMemberBuilder {
	b.member.TeamID = teamID
	return b
}

func (b *TeamMemberBuilder) WithUserID(userID primitive.ObjectID) *TeamMemberBuilder {
	b.member.UserID = userID
	return b
}

func (b *TeamMemberBuilder) WithRole(role string) *TeamMemberBuilder {
	b.member.Role = role
	return b
}

func (b *TeamMemberBuilder) AsCaptain() *TeamMemberBuilder {
	b.member.Role = models.RoleCaptain
	return b
}

func (b *TeamMemberBuilder) AsCoCaptain() *TeamMemberBuilder {
	b.member.Role = models.RoleCoCaptain
	return b
}

func (b *TeamMemberBuilder) AsMember() *TeamMemberBuilder {
	b.member.Role = models.RoleMember
	return b
}

func (b *TeamMemberBuilder) Removed() *TeamMemberBuilder {
	b.member.Status = models.MemberStatusRemoved
	return b
}

func (b *TeamMemberBuilder) Build() models.TeamMember {
	return b.member
}

func (b *TeamMemberBuilder) BuildPtr() *models.TeamMember {
	return &b.member
}

// ===== TeamInvite Fixtures =====

// TeamInviteBuilder provides fluent API for building test invites.
type TeamInviteBuilder struct {
	invite models.TeamInvite
}

// NewTeamInvite creates a new TeamInviteBuilder with sensible defaults.
// The default is a pending join request where inviter and invitee match.
func NewTeamInvite() *TeamInviteBuilder {
	userID := primitive.NewObjectID()
	return &TeamInviteBuilder{
		invite: models.TeamInvite{
			ID:        primitive.NewObjectID(),
			TeamID:    primitive.NewObjectID(),
			InviteeID: userID,
			InviterID: userID,
			Kind:      models.KindJoinRequest,
			Message:   "Looking for a doubles partner",
			Status:    models.InviteStatusPending,
			Role:      models.RoleMember,
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
			CreatedAt: time.Now(),
		},
	}
}

func (b *TeamInviteBuilder) WithID(id primitive.ObjectID) *TeamInviteBuilder {
	b.invite.ID = id
	return b
}

func (b *TeamInviteBuilder) WithTeamID(teamID primitive.ObjectID) *TeamInviteBuilder {
	b.invite.TeamID = teamID
	return b
}

func (b *TeamInviteBuilder) WithInviteeID(userID primitive.ObjectID) *TeamInviteBuilder {
	b.invite.InviteeID = userID
	return b
}

func (b *TeamInviteBuilder) WithInviterID(userID primitive.ObjectID) *TeamInviteBuilder {
	b.invite.InviterID = userID
	return b
}

// AsInvitation marks the invite as team-initiated.
func (b *TeamInviteBuilder) AsInvitation() *TeamInviteBuilder {
	b.invite.Kind = models.KindInvitation
	return b
}

func (b *TeamInviteBuilder) WithRole(role string) *TeamInviteBuilder {
	b.invite.Role = role
	return b
}

func (b *TeamInviteBuilder) WithStatus(status string) *TeamInviteBuilder {
	b.invite.Status = status
	return b
}

func (b *TeamInviteBuilder) Expired() *TeamInviteBuilder {
	b.invite.ExpiresAt = time.Now().Add(-24 * time.Hour) // Expired 1 day ago
	return b
}

func (b *TeamInviteBuilder) Build() models.TeamInvite {
	return b.invite
}

func (b *TeamInviteBuilder) BuildPtr() *models.TeamInvite {
	return &b.invite
}

// ===== Notification Fixtures =====

// NotificationBuilder provides fluent API for building test notifications.
type NotificationBuilder struct {
	notification models.Notification
}

// NewNotification creates a new NotificationBuilder with sensible defaults.
func NewNotification() *NotificationBuilder {
	return &NotificationBuilder{
		notification: models.Notification{
			ID:        primitive.NewObjectID(),
			UserID:    primitive.NewObjectID(),
			Type:      models.NotificationMemberJoined,
			Title:     "Member joined",
			Message:   "A new member joined your team",
			Priority:  models.PriorityNormal,
			Read:      false,
			CreatedAt: time.Now(),
		},
	}
}

func (b *NotificationBuilder) WithID(id primitive.ObjectID) *NotificationBuilder {
	b.notification.ID = id
	return b
}

func (b *NotificationBuilder) WithUserID(userID primitive.ObjectID) *NotificationBuilder {
	b.notification.UserID = userID
	return b
}

func (b *NotificationBuilder) WithType(notificationType string) *NotificationBuilder {
	b.notification.Type = notificationType
	return b
}

func (b *NotificationBuilder) WithPriority(priority string) *NotificationBuilder {
	b.notification.Priority = priority
	return b
}

func (b *NotificationBuilder) Read() *NotificationBuilder {
	b.notification.Read = true
	return b
}

func (b *NotificationBuilder) Build() models.Notification {
	return b.notification
}

func (b *NotificationBuilder) BuildPtr() *models.Notification {
	return &b.notification
}

// ===== RefreshToken Fixtures =====

// RefreshTokenBuilder provides fluent API for building test refresh tokens.
type RefreshTokenBuilder struct {
	token models.RefreshToken
}

// NewRefreshToken creates a new RefreshTokenBuilder with sensible defaults.
func NewRefreshToken() *RefreshTokenBuilder {
	return &RefreshTokenBuilder{
		token: models.RefreshToken{
			ID:        primitive.NewObjectID(),
			Token:     fmt.Sprintf("rf_%s", primitive.NewObjectID().Hex()),
			UserID:    primitive.NewObjectID(),
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour), // 7 days from now
			CreatedAt: time.Now(),
		},
	}
}

func (b *RefreshTokenBuilder) WithID(id primitive.ObjectID) *RefreshTokenBuilder {
	b.token.ID = id
	return b
}

func (b *RefreshTokenBuilder) WithToken(token string) *RefreshTokenBuilder {
	b.token.Token = token
	return b
}

func (b *RefreshTokenBuilder) WithUserID(userID primitive.ObjectID) *RefreshTokenBuilder {
	b.token.UserID = userID
	return b
}

func (b *RefreshTokenBuilder) Expired() *RefreshTokenBuilder {
	b.token.ExpiresAt = time.Now().Add(-24 * time.Hour) // Expired 1 day ago
	return b
}

func (b *RefreshTokenBuilder) Build() models.RefreshToken {
	return b.token
}

func (b *RefreshTokenBuilder) BuildPtr() *models.RefreshToken {
	return &b.token
}
