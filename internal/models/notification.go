package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification type tags emitted by the team workflow.
const (
	NotificationJoinRequestReceived = "join_request_received"
	NotificationJoinRequestAccepted = "join_request_accepted"
	NotificationJoinRequestDeclined = "join_request_declined"
	NotificationInviteReceived      = "invite_received"
	NotificationInviteAccepted      = "invite_accepted"
	NotificationInviteDeclined      = "invite_declined"
	NotificationMemberJoined        = "member_joined"
	NotificationMemberLeft          = "member_left"
	NotificationMemberRemoved       = "member_removed"
)

// Notification priority levels.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Notification is a side-effect record describing a workflow event.
// It is written once and never read back by the workflow that emitted it.
type Notification struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	Type      string             `json:"type" bson:"type" example:"join_request_received"`
	Title     string             `json:"title" bson:"title" example:"New join request"`
	Message   string             `json:"message" bson:"message" example:"Alex Morgan wants to join Downtown Smashers"`
	Data      map[string]string  `json:"data,omitempty" bson:"data,omitempty"`
	Priority  string             `json:"priority" bson:"priority" example:"normal"`
	ActionURL string             `json:"actionUrl,omitempty" bson:"actionUrl,omitempty" example:"/teams/507f1f77bcf86cd799439013"`
	Read      bool               `json:"read" bson:"read" example:"false"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// NotificationListResponse is the response for listing notifications.
type NotificationListResponse struct {
	Items      []Notification `json:"items"`
	Pagination Pagination     `json:"pagination"`
}
