package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InviteKind distinguishes who initiated the handshake.
type InviteKind string

const (
	// KindJoinRequest is initiated by the prospective member. The row is
	// consumed (deleted) when resolved.
	KindJoinRequest InviteKind = "join_request"
	// KindInvitation is initiated by the team. The row is archived in place
	// when resolved.
	KindInvitation InviteKind = "invitation"
)

// Invite status constants.
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusDeclined = "declined"
)

// TeamInvite is a join request or invitation linking a user to a team.
// For a join request the inviter and invitee are the same user.
type TeamInvite struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID          primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	InviteeID       primitive.ObjectID `json:"inviteeId" bson:"inviteeId" example:"507f1f77bcf86cd799439013"`
	InviterID       primitive.ObjectID `json:"inviterId" bson:"inviterId" example:"507f1f77bcf86cd799439013"`
	Kind            InviteKind         `json:"type" bson:"kind" example:"join_request"`
	Message         string             `json:"message" bson:"message" example:"Alex Morgan wants to join your team"`
	Status          string             `json:"status" bson:"status" example:"pending"`
	Role            string             `json:"role" bson:"role" example:"member"`
	ResponseMessage string             `json:"responseMessage,omitempty" bson:"responseMessage,omitempty"`
	ExpiresAt       time.Time          `json:"expiresAt" bson:"expiresAt" example:"2024-01-22T09:30:00Z"`
	RespondedAt     *time.Time         `json:"respondedAt,omitempty" bson:"respondedAt,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// Expired reports whether the invite can no longer be resolved.
func (i *TeamInvite) Expired() bool {
	return time.Now().After(i.ExpiresAt)
}

// TeamInviteWithTeam is an invite with its team summary expanded.
type TeamInviteWithTeam struct {
	TeamInvite
	Team *TeamSummary `json:"team,omitempty"`
}

// TeamSummary is a minimal team representation for embedding.
type TeamSummary struct {
	ID    primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439012"`
	Name  string             `json:"name" example:"Downtown Smashers"`
	Sport string             `json:"sport" example:"badminton"`
}

// CreateInviteRequest is the payload for creating a join request or invitation.
// A join request targets a team by id or join code; an invitation names the
// user to invite.
type CreateInviteRequest struct {
	Type     string `json:"type" binding:"required,oneof=join_request invitation" example:"join_request"`
	TeamID   string `json:"team_id" binding:"omitempty" example:"507f1f77bcf86cd799439012"`
	TeamCode string `json:"team_code" binding:"omitempty,joincode" example:"K7KQ2B9X"`
	UserID   string `json:"user_id" binding:"omitempty" example:"507f1f77bcf86cd799439013"`
	Role     string `json:"role" binding:"omitempty,oneof=co_captain member" example:"member"`
	Message  string `json:"message" binding:"omitempty,max=500" example:"Looking for a doubles partner"`
}

// RespondInviteRequest is the payload for accepting or declining an invite.
type RespondInviteRequest struct {
	InviteID        string `json:"invite_id" binding:"required" example:"507f1f77bcf86cd799439011"`
	Status          string `json:"status" binding:"required,oneof=accepted declined" example:"accepted"`
	ResponseMessage string `json:"response_message" binding:"omitempty,max=500" example:"Welcome aboard!"`
}

// InviteListResponse is the response for listing a user's invites.
type InviteListResponse struct {
	Items []TeamInviteWithTeam `json:"items"`
}
