package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamStatus represents the lifecycle status of a team.
type TeamStatus string

const (
	// TeamStatusActive indicates the team is recruiting and playing.
	TeamStatusActive TeamStatus = "active"
	// TeamStatusInactive indicates the team is temporarily not accepting members.
	TeamStatusInactive TeamStatus = "inactive"
	// TeamStatusDisbanded indicates the team has been dissolved.
	TeamStatusDisbanded TeamStatus = "disbanded"
	// TeamStatusCompleted indicates the team finished its season or event.
	TeamStatusCompleted TeamStatus = "completed"
)

// JoinCodeLength is the length of a team join code.
const JoinCodeLength = 8

// Team represents a sports team in the system.
type Team struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name            string             `json:"name" bson:"name" example:"Downtown Smashers"`
	Description     string             `json:"description" bson:"description" example:"Competitive badminton doubles team"`
	Sport           string             `json:"sport" bson:"sport" example:"badminton"`
	Location        string             `json:"location" bson:"location" example:"Austin, TX"`
	ExperienceLevel string             `json:"experienceLevel" bson:"experienceLevel" example:"intermediate"`
	MaxMembers      int                `json:"maxMembers" bson:"maxMembers" example:"6"`
	CurrentMembers  int                `json:"currentMembers" bson:"currentMembers" example:"4"`
	IsPublic        bool               `json:"isPublic" bson:"isPublic" example:"true"`
	JoinCode        string             `json:"joinCode,omitempty" bson:"joinCode" example:"K7KQ2B9X"`
	Status          TeamStatus         `json:"status" bson:"status" example:"active"`
	CreatedBy       primitive.ObjectID `json:"createdBy" bson:"createdBy" example:"507f1f77bcf86cd799439012"`
	Requirements    []string           `json:"requirements" bson:"requirements" example:"own racket,weekly availability"`
	RequiredSkills  []string           `json:"requiredSkills" bson:"requiredSkills" example:"serve,net play"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// TeamDetail is a team with its active member roster expanded.
type TeamDetail struct {
	Team
	Members []TeamMemberWithUser `json:"members"`
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name            string   `json:"name" binding:"required,min=2,max=100" example:"Downtown Smashers"`
	Description     string   `json:"description" binding:"omitempty,max=1000" example:"Competitive badminton doubles team"`
	Sport           string   `json:"sport" binding:"required,min=2,max=50" example:"badminton"`
	Location        string   `json:"location" binding:"omitempty,max=100" example:"Austin, TX"`
	ExperienceLevel string   `json:"experience_level" binding:"omitempty,oneof=beginner intermediate advanced professional" example:"intermediate"`
	MaxMembers      int      `json:"max_members" binding:"required,min=2,max=100" example:"6"`
	IsPublic        *bool    `json:"is_public" binding:"omitempty" example:"true"`
	Requirements    []string `json:"requirements" binding:"omitempty,max=20,dive,max=200"`
	RequiredSkills  []string `json:"required_skills" binding:"omitempty,max=20,dive,max=100"`
}

// UpdateTeamRequest is the payload for updating a team.
// Capacity, visibility, and join code are fixed at creation.
type UpdateTeamRequest struct {
	Name           *string   `json:"name" binding:"omitempty,min=2,max=100" example:"Uptown Smashers"`
	Description    *string   `json:"description" binding:"omitempty,max=1000" example:"Updated description"`
	Requirements   *[]string `json:"requirements" binding:"omitempty,max=20,dive,max=200"`
	RequiredSkills *[]string `json:"required_skills" binding:"omitempty,max=20,dive,max=100"`
}

// JoinTeamRequest is the payload for joining a team directly with a join code.
type JoinTeamRequest struct {
	JoinCode string `json:"join_code" binding:"required,joincode" example:"K7KQ2B9X"`
}

// JoinTeamResponse is the response after a successful direct join.
type JoinTeamResponse struct {
	Message string     `json:"message" example:"joined team successfully"`
	Member  TeamMember `json:"member"`
}

// TeamFilter holds the optional filters for listing teams.
type TeamFilter struct {
	Sport           string
	Location        string
	ExperienceLevel string
	ExcludeTeamIDs  []primitive.ObjectID
}

// TeamListResponse is the response for listing teams.
type TeamListResponse struct {
	Items      []Team     `json:"items"`
	Pagination Pagination `json:"pagination"`
}
