package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an athlete account in the system.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email     string             `json:"email" bson:"email" example:"user@example.com"`
	Password  string             `json:"-" bson:"password"` // never included in JSON responses
	Name      string             `json:"name" bson:"name" example:"Alex Morgan"`
	Sport     string             `json:"sport,omitempty" bson:"sport,omitempty" example:"badminton"`
	Location  string             `json:"location,omitempty" bson:"location,omitempty" example:"Austin, TX"`
	AvatarKey string             `json:"-" bson:"avatarKey,omitempty"` // S3 object key
	AvatarURL string             `json:"avatarUrl,omitempty" bson:"-"` // pre-signed, never stored
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	Name     string `json:"name" binding:"required,min=2" example:"Alex Morgan"`
}

// UpdateUserRequest is the payload for updating a user profile.
type UpdateUserRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2" example:"Alex Morgan"`
	Sport     *string `json:"sport" binding:"omitempty,min=2,max=50" example:"badminton"`
	Location  *string `json:"location" binding:"omitempty,max=100" example:"Austin, TX"`
	AvatarKey *string `json:"avatar_key" binding:"omitempty,max=200"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AvatarUploadRequest is the payload for requesting an avatar upload URL.
type AvatarUploadRequest struct {
	ContentType string `json:"content_type" binding:"required,oneof=image/jpeg image/png image/webp" example:"image/png"`
}

// AvatarUploadResponse carries the pre-signed upload URL and the object key
// the client should save back to its profile.
type AvatarUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key" example:"avatars/507f1f77bcf86cd799439011"`
}
