// Package authz provides authorization interfaces and implementations.
package authz

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action constants define the authorization actions.
const (
	ActionTeamView     = "team:view"
	ActionTeamUpdate   = "team:update"
	ActionTeamDelete   = "team:delete"
	ActionMemberInvite = "member:invite"
	ActionMemberRemove = "member:remove"
)

//go:generate mockgen -destination=mocks/mock_authorizer.go -package=mocks scoutlete/internal/authz Authorizer

// Authorizer defines the interface for authorization checks.
type Authorizer interface {
	// CanPerform checks if a user can perform an action on a team.
	CanPerform(ctx context.Context, userID, teamID primitive.ObjectID, action string) (bool, error)

	// GetUserRole returns the user's role in a team, or empty string if not a member.
	GetUserRole(ctx context.Context, userID, teamID primitive.ObjectID) (string, error)

	// IsMember checks if a user is a member of a team.
	IsMember(ctx context.Context, userID, teamID primitive.ObjectID) (bool, error)
}
