package service

import (
	"context"
	"errors"
	"log"
	"time"

	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/models"
	"scoutlete/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamInviteService handles business logic for join requests and invitations.
type TeamInviteService struct {
	inviteRepo repository.TeamInviteRepository
	memberRepo repository.TeamMemberRepository
	teamRepo   repository.TeamRepository
	userRepo   repository.UserRepository
	notifier   Notifier
}

// NewTeamInviteService creates a new TeamInviteService.
func NewTeamInviteService(
	inviteRepo repository.TeamInviteRepository,
	memberRepo repository.TeamMemberRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) *TeamInviteService {
	return &TeamInviteService{
		inviteRepo: inviteRepo,
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

// CreateInvite creates a join request (user asks the team) or an invitation
// (team asks the user), depending on req.Type.
func (s *TeamInviteService) CreateInvite(ctx context.Context, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
	team, err := s.resolveTeam(ctx, req)
	if err != nil {
		return nil, err
	}

	switch models.InviteKind(req.Type) {
	case models.KindJoinRequest:
		return s.createJoinRequest(ctx, team, actingUserID, req)
	case models.KindInvitation:
		return s.createInvitation(ctx, team, actingUserID, req)
	default:
		return nil, apperrors.ErrInviteNotFound
	}
}

// createJoinRequest records that the acting user wants to join the team.
func (s *TeamInviteService) createJoinRequest(ctx context.Context, team *models.Team, userID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
	if err := s.checkTeamCanAccept(ctx, team, userID); err != nil {
		return nil, err
	}

	// Only one pending request per team and user
	_, err := s.inviteRepo.FindPendingByTeamAndInvitee(ctx, team.ID, userID, models.KindJoinRequest)
	if err == nil {
		return nil, apperrors.ErrPendingRequestExists
	}
	if !errors.Is(err, apperrors.ErrInviteNotFound) {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	message := req.Message
	if message == "" {
		message = user.Name + " wants to join your team"
	}

	invite := &models.TeamInvite{
		TeamID:    team.ID,
		InviteeID: userID,
		InviterID: userID,
		Kind:      models.KindJoinRequest,
		Message:   message,
		Role:      models.RoleMember,
	}

	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		return nil, err
	}

	s.notifier.Notify(&models.Notification{
		UserID:  team.CreatedBy,
		Type:    models.NotificationJoinRequestReceived,
		Title:   "New join request",
		Message: user.Name + " wants to join " + team.Name,
		Data: map[string]string{
			"teamId":   team.ID.Hex(),
			"inviteId": invite.ID.Hex(),
			"userId":   userID.Hex(),
		},
		ActionURL: "/teams/" + team.ID.Hex() + "/requests",
	})

	return invite, nil
}

// createInvitation records that the team wants the named user to join.
// Only the captain may invite.
func (s *TeamInviteService) createInvitation(ctx context.Context, team *models.Team, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
	actor, err := s.memberRepo.FindByTeamAndUser(ctx, team.ID, actingUserID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleCaptain {
		return nil, apperrors.ErrTeamAccessDenied
	}

	if req.UserID == "" {
		return nil, apperrors.ErrInviteeMissing
	}
	inviteeID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	invitee, err := s.userRepo.FindByID(ctx, inviteeID)
	if err != nil {
		return nil, err
	}

	if err := s.checkTeamCanAccept(ctx, team, inviteeID); err != nil {
		return nil, err
	}

	// Only one pending invitation per team and user
	_, err = s.inviteRepo.FindPendingByTeamAndInvitee(ctx, team.ID, inviteeID, models.KindInvitation)
	if err == nil {
		return nil, apperrors.ErrPendingInvitationExists
	}
	if !errors.Is(err, apperrors.ErrInviteNotFound) {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleMember
	}

	message := req.Message
	if message == "" {
		message = "You have been invited to join " + team.Name
	}

	invite := &models.TeamInvite{
		TeamID:    team.ID,
		InviteeID: inviteeID,
		InviterID: actingUserID,
		Kind:      models.KindInvitation,
		Message:   message,
		Role:      role,
	}

	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		return nil, err
	}

	s.notifier.Notify(&models.Notification{
		UserID:  invitee.ID,
		Type:    models.NotificationInviteReceived,
		Title:   "Team invitation",
		Message: "You have been invited to join " + team.Name,
		Data: map[string]string{
			"teamId":   team.ID.Hex(),
			"inviteId": invite.ID.Hex(),
		},
		ActionURL: "/invites/" + invite.ID.Hex(),
	})

	return invite, nil
}

// ListInvites returns the pending invites relevant to a user: invitations
// addressed to them, plus join requests for teams they lead.
func (s *TeamInviteService) ListInvites(ctx context.Context, userID primitive.ObjectID) (*models.InviteListResponse, error) {
	invites, err := s.inviteRepo.FindByInviteeID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Join requests addressed to teams the user is captain of
	teamIDs, err := s.memberRepo.FindTeamIDsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, teamID := range teamIDs {
		member, err := s.memberRepo.FindByTeamAndUser(ctx, teamID, userID)
		if err != nil {
			continue
		}
		if member.Role != models.RoleCaptain {
			continue
		}

		teamInvites, err := s.inviteRepo.FindByTeamID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		for _, inv := range teamInvites {
			if inv.Kind == models.KindJoinRequest {
				invites = append(invites, inv)
			}
		}
	}

	// Expand team summaries
	items := make([]models.TeamInviteWithTeam, 0, len(invites))
	for _, inv := range invites {
		item := models.TeamInviteWithTeam{TeamInvite: inv}

		team, err := s.teamRepo.FindByID(ctx, inv.TeamID)
		if err == nil {
			item.Team = &models.TeamSummary{
				ID:    team.ID,
				Name:  team.Name,
				Sport: team.Sport,
			}
		}

		items = append(items, item)
	}

	return &models.InviteListResponse{Items: items}, nil
}

// RespondInvite accepts or declines a pending invite. Join requests are
// answered by the team's captain and deleted once resolved; invitations
// are answered by the invitee and archived in place.
func (s *TeamInviteService) RespondInvite(ctx context.Context, actingUserID primitive.ObjectID, req *models.RespondInviteRequest) (*models.TeamInvite, error) {
	inviteID, err := primitive.ObjectIDFromHex(req.InviteID)
	if err != nil {
		return nil, apperrors.ErrInviteNotFound
	}

	invite, err := s.inviteRepo.FindByID(ctx, inviteID)
	if err != nil {
		return nil, err
	}

	if invite.Status != models.InviteStatusPending {
		return nil, apperrors.ErrInviteAlreadyResolved
	}

	if err := s.checkResponder(ctx, invite, actingUserID); err != nil {
		return nil, err
	}

	if invite.Expired() {
		return nil, apperrors.ErrInviteExpired
	}

	if req.Status == models.InviteStatusAccepted {
		if err := s.admitInvitee(ctx, invite); err != nil {
			return nil, err
		}
	}

	resolved, err := s.persistResolution(ctx, invite, req)
	if err != nil {
		return nil, err
	}

	s.notifyResolution(ctx, resolved)

	return resolved, nil
}

// checkResponder verifies the acting user is allowed to answer the invite.
func (s *TeamInviteService) checkResponder(ctx context.Context, invite *models.TeamInvite, actingUserID primitive.ObjectID) error {
	if invite.Kind == models.KindInvitation {
		if invite.InviteeID != actingUserID {
			return apperrors.ErrNotInviteRecipient
		}
		return nil
	}

	// Join requests are answered by the team's captain
	member, err := s.memberRepo.FindByTeamAndUser(ctx, invite.TeamID, actingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotTeamMember) {
			return apperrors.ErrNotInviteRecipient
		}
		return err
	}
	if member.Role != models.RoleCaptain {
		return apperrors.ErrNotInviteRecipient
	}

	return nil
}

// admitInvitee adds the invitee to the team, claiming a seat atomically first.
func (s *TeamInviteService) admitInvitee(ctx context.Context, invite *models.TeamInvite) error {
	team, err := s.teamRepo.FindByID(ctx, invite.TeamID)
	if err != nil {
		return err
	}
	if team.Status != models.TeamStatusActive {
		return apperrors.ErrTeamNotActive
	}

	if _, err := s.memberRepo.FindByTeamAndUser(ctx, invite.TeamID, invite.InviteeID); err == nil {
		return apperrors.ErrAlreadyMember
	}

	if err := s.teamRepo.IncrementMemberCountIfBelowCap(ctx, invite.TeamID); err != nil {
		return err
	}

	member := &models.TeamMember{
		TeamID: invite.TeamID,
		UserID: invite.InviteeID,
		Role:   invite.Role,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		// Release the claimed seat
		_ = s.teamRepo.DecrementMemberCount(ctx, invite.TeamID)
		return err
	}

	return nil
}

// persistResolution writes the outcome according to the invite kind:
// join requests are consumed, invitations are archived.
func (s *TeamInviteService) persistResolution(ctx context.Context, invite *models.TeamInvite, req *models.RespondInviteRequest) (*models.TeamInvite, error) {
	now := time.Now()

	if invite.Kind == models.KindJoinRequest {
		if err := s.inviteRepo.Delete(ctx, invite.ID); err != nil {
			// Member may already be admitted; log and keep going
			log.Printf("Failed to delete join request %s after resolution: %v", invite.ID.Hex(), err)
		}
	} else {
		if err := s.inviteRepo.Resolve(ctx, invite.ID, req.Status, req.ResponseMessage); err != nil {
			return nil, err
		}
	}

	resolved := *invite
	resolved.Status = req.Status
	resolved.ResponseMessage = req.ResponseMessage
	resolved.RespondedAt = &now

	return &resolved, nil
}

// notifyResolution tells the initiating side how the invite was answered.
func (s *TeamInviteService) notifyResolution(ctx context.Context, invite *models.TeamInvite) {
	team, err := s.teamRepo.FindByID(ctx, invite.TeamID)
	if err != nil {
		return
	}

	accepted := invite.Status == models.InviteStatusAccepted

	if invite.Kind == models.KindJoinRequest {
		// Tell the requester
		notifType := models.NotificationJoinRequestDeclined
		title := "Join request declined"
		message := "Your request to join " + team.Name + " was declined"
		if accepted {
			notifType = models.NotificationJoinRequestAccepted
			title = "Join request accepted"
			message = "You are now a member of " + team.Name
		}

		s.notifier.Notify(&models.Notification{
			UserID:  invite.InviteeID,
			Type:    notifType,
			Title:   title,
			Message: message,
			Data: map[string]string{
				"teamId": team.ID.Hex(),
			},
			ActionURL: "/teams/" + team.ID.Hex(),
		})
		return
	}

	// Tell the inviter
	invitee, err := s.userRepo.FindByID(ctx, invite.InviteeID)
	if err != nil {
		return
	}

	notifType := models.NotificationInviteDeclined
	title := "Invitation declined"
	message := invitee.Name + " declined the invitation to " + team.Name
	if accepted {
		notifType = models.NotificationInviteAccepted
		title = "Invitation accepted"
		message = invitee.Name + " joined " + team.Name
	}

	s.notifier.Notify(&models.Notification{
		UserID:  invite.InviterID,
		Type:    notifType,
		Title:   title,
		Message: message,
		Data: map[string]string{
			"teamId": team.ID.Hex(),
			"userId": invite.InviteeID.Hex(),
		},
		ActionURL: "/teams/" + team.ID.Hex(),
	})
}

// checkTeamCanAccept verifies the team is recruiting, has room, and the user
// is not already on the roster.
func (s *TeamInviteService) checkTeamCanAccept(ctx context.Context, team *models.Team, userID primitive.ObjectID) error {
	if team.Status != models.TeamStatusActive {
		return apperrors.ErrTeamNotActive
	}

	if team.CurrentMembers >= team.MaxMembers {
		return apperrors.ErrTeamFull
	}

	if _, err := s.memberRepo.FindByTeamAndUser(ctx, team.ID, userID); err == nil {
		return apperrors.ErrAlreadyMember
	}

	return nil
}

// resolveTeam finds the target team from either an explicit id or a join code.
func (s *TeamInviteService) resolveTeam(ctx context.Context, req *models.CreateInviteRequest) (*models.Team, error) {
	if req.TeamID != "" {
		teamID, err := primitive.ObjectIDFromHex(req.TeamID)
		if err != nil {
			return nil, apperrors.ErrTeamNotFound
		}
		return s.teamRepo.FindByID(ctx, teamID)
	}

	if req.TeamCode != "" {
		return s.teamRepo.FindByJoinCode(ctx, req.TeamCode)
	}

	return nil, apperrors.ErrInviteTargetMissing
}
