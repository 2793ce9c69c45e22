// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// Team errors
var (
	ErrTeamNotFound       = errors.New("team not found")
	ErrTeamAccessDenied   = errors.New("you do not have access to this team")
	ErrNotTeamCaptain     = errors.New("only the team captain can perform this action")
	ErrTeamNotActive      = errors.New("team is not accepting new members")
	ErrTeamFull           = errors.New("team is now full")
	ErrInvalidJoinCode    = errors.New("invalid join code")
	ErrNotTeamMember      = errors.New("you are not a member of this team")
	ErrAlreadyMember      = errors.New("user is already a team member")
	ErrCannotRemoveCaptain = errors.New("cannot remove the team captain")
	ErrCannotRemoveSelf   = errors.New("cannot remove yourself, use leave endpoint")
	ErrCaptainCannotLeave = errors.New("captain cannot leave, transfer leadership or delete the team instead")
)

// Invite errors
var (
	ErrInviteNotFound          = errors.New("request not found")
	ErrInviteExpired           = errors.New("request has expired")
	ErrInviteAlreadyResolved   = errors.New("request has already been resolved")
	ErrPendingRequestExists    = errors.New("you already have a pending request for this team")
	ErrPendingInvitationExists = errors.New("an invitation is already pending for this user")
	ErrNotInviteRecipient      = errors.New("you are not allowed to respond to this request")
	ErrInviteTargetMissing     = errors.New("team_id or team_code is required")
	ErrInviteeMissing          = errors.New("user_id is required for an invitation")
)

// Notification errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)
