package service

import (
	"context"

	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/models"
	"scoutlete/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMemberService handles business logic for team member operations.
type TeamMemberService struct {
	memberRepo repository.TeamMemberRepository
	teamRepo   repository.TeamRepository
	userRepo   repository.UserRepository
	notifier   Notifier
}

// NewTeamMemberService creates a new TeamMemberService.
func NewTeamMemberService(
	memberRepo repository.TeamMemberRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) *TeamMemberService {
	return &TeamMemberService{
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

// ListMembers returns the active roster of a team with user details.
func (s *TeamMemberService) ListMembers(ctx context.Context, teamID primitive.ObjectID) (*models.TeamMemberListResponse, error) {
	members, err := s.memberRepo.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]primitive.ObjectID, 0, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}

	users, err := s.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	usersByID := make(map[primitive.ObjectID]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	items := make([]models.TeamMemberWithUser, 0, len(members))
	for _, m := range members {
		entry := models.TeamMemberWithUser{
			ID:       m.ID,
			TeamID:   m.TeamID,
			UserID:   m.UserID,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
		if u, ok := usersByID[m.UserID]; ok {
			entry.User = &models.UserSummary{
				ID:       u.ID,
				Email:    u.Email,
				Name:     u.Name,
				Sport:    u.Sport,
				Location: u.Location,
			}
		}
		items = append(items, entry)
	}

	return &models.TeamMemberListResponse{Items: items}, nil
}

// RemoveMember removes a member from a team. Only the captain may remove,
// the captain cannot be removed, and removal is not a substitute for leaving.
func (s *TeamMemberService) RemoveMember(ctx context.Context, teamID, memberID, actingUserID primitive.ObjectID) error {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return err
	}

	actor, err := s.memberRepo.FindByTeamAndUser(ctx, teamID, actingUserID)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleCaptain {
		return apperrors.ErrNotTeamCaptain
	}

	target, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return err
	}
	if target.TeamID != teamID {
		return apperrors.ErrNotTeamMember
	}
	if target.Role == models.RoleCaptain {
		return apperrors.ErrCannotRemoveCaptain
	}
	if target.UserID == actingUserID {
		return apperrors.ErrCannotRemoveSelf
	}

	if err := s.memberRepo.Delete(ctx, memberID); err != nil {
		return err
	}

	// Release the seat
	_ = s.teamRepo.DecrementMemberCount(ctx, teamID)

	s.notifier.Notify(&models.Notification{
		UserID:  target.UserID,
		Type:    models.NotificationMemberRemoved,
		Title:   "Removed from team",
		Message: "You have been removed from " + team.Name,
		Data: map[string]string{
			"teamId": teamID.Hex(),
		},
		Priority: models.PriorityHigh,
	})

	return nil
}

// LeaveTeam removes the calling user's own membership. The captain cannot
// leave their own team.
func (s *TeamMemberService) LeaveTeam(ctx context.Context, teamID, userID primitive.ObjectID) error {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return err
	}

	member, err := s.memberRepo.FindByTeamAndUser(ctx, teamID, userID)
	if err != nil {
		return err
	}

	if member.Role == models.RoleCaptain {
		return apperrors.ErrCaptainCannotLeave
	}

	if err := s.memberRepo.Delete(ctx, member.ID); err != nil {
		return err
	}

	// Release the seat
	_ = s.teamRepo.DecrementMemberCount(ctx, teamID)

	s.notifyLeft(ctx, team, userID)

	return nil
}

// notifyLeft tells the captain that a member left.
func (s *TeamMemberService) notifyLeft(ctx context.Context, team *models.Team, userID primitive.ObjectID) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return
	}

	s.notifier.Notify(&models.Notification{
		UserID:  team.CreatedBy,
		Type:    models.NotificationMemberLeft,
		Title:   "Member left team",
		Message: user.Name + " left " + team.Name,
		Data: map[string]string{
			"teamId": team.ID.Hex(),
			"userId": userID.Hex(),
		},
		ActionURL: "/teams/" + team.ID.Hex(),
	})
}
