package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team role constants.
const (
	RoleCaptain   = "captain"
	RoleCoCaptain = "co_captain"
	RoleMember    = "member"
)

// Membership status constants.
const (
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
	MemberStatusRemoved  = "removed"
)

// TeamMember represents a user's membership in a team.
type TeamMember struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID   primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	UserID   primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	Role     string             `json:"role" bson:"role" example:"member"`
	Status   string             `json:"status" bson:"status" example:"active"`
	JoinedAt time.Time          `json:"joinedAt" bson:"joinedAt" example:"2024-01-15T09:30:00Z"`
}

// TeamMemberWithUser is a team member with expanded user information.
type TeamMemberWithUser struct {
	ID       primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439011"`
	TeamID   primitive.ObjectID `json:"teamId" example:"507f1f77bcf86cd799439012"`
	UserID   primitive.ObjectID `json:"userId" example:"507f1f77bcf86cd799439013"`
	User     *UserSummary       `json:"user,omitempty"`
	Role     string             `json:"role" example:"member"`
	JoinedAt time.Time          `json:"joinedAt" example:"2024-01-15T09:30:00Z"`
}

// UserSummary is a minimal user representation for embedding.
type UserSummary struct {
	ID       primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439013"`
	Email    string             `json:"email" example:"user@example.com"`
	Name     string             `json:"name" example:"Alex Morgan"`
	Sport    string             `json:"sport,omitempty" example:"badminton"`
	Location string             `json:"location,omitempty" example:"Austin, TX"`
}

// TeamMemberListResponse is the response for listing team members.
type TeamMemberListResponse struct {
	Items []TeamMemberWithUser `json:"items"`
}
