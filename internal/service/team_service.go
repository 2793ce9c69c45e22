package service

import (
	"context"
	"crypto/rand"
	"log"

	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/models"
	"scoutlete/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// joinCodeAlphabet is the set of characters used in team join codes.
// Codes are stored uppercase; lookups normalize case.
const joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TeamService handles business logic for team operations.
type TeamService struct {
	teamRepo   repository.TeamRepository
	memberRepo repository.TeamMemberRepository
	inviteRepo repository.TeamInviteRepository
	userRepo   repository.UserRepository
	notifier   Notifier
}

// NewTeamService creates a new TeamService.
func NewTeamService(
	teamRepo repository.TeamRepository,
	memberRepo repository.TeamMemberRepository,
	inviteRepo repository.TeamInviteRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		inviteRepo: inviteRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

// CreateTeam creates a new team and adds the creator as captain.
func (s *TeamService) CreateTeam(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	team := &models.Team{
		Name:            req.Name,
		Description:     req.Description,
		Sport:           req.Sport,
		Location:        req.Location,
		ExperienceLevel: req.ExperienceLevel,
		MaxMembers:      req.MaxMembers,
		CurrentMembers:  1, // the captain
		IsPublic:        isPublic,
		JoinCode:        generateJoinCode(),
		Status:          models.TeamStatusActive,
		CreatedBy:       userID,
		Requirements:    req.Requirements,
		RequiredSkills:  req.RequiredSkills,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	// Add creator as captain member
	member := &models.TeamMember{
		TeamID: team.ID,
		UserID: userID,
		Role:   models.RoleCaptain,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		// Rollback team creation on failure
		_ = s.teamRepo.Delete(ctx, team.ID)
		return nil, err
	}

	return team, nil
}

// GetTeam retrieves a team with its active roster. Private teams are only
// visible to their members; the join code is only included for the captain.
func (s *TeamService) GetTeam(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamDetail, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	member, memberErr := s.memberRepo.FindByTeamAndUser(ctx, teamID, userID)

	if !team.IsPublic && memberErr != nil {
		return nil, apperrors.ErrTeamAccessDenied
	}

	// Hide the join code from everyone but the captain
	if member == nil || member.Role != models.RoleCaptain {
		team.JoinCode = ""
	}

	members, err := s.expandRoster(ctx, teamID)
	if err != nil {
		return nil, err
	}

	// Reconcile the stored counter against the ledger. The counter is
	// authoritative for capacity checks but can drift after partial failures.
	if team.CurrentMembers != len(members) {
		log.Printf("Member count drift for team %s: counter=%d ledger=%d, reconciling", teamID.Hex(), team.CurrentMembers, len(members))
		if err := s.teamRepo.SetMemberCount(ctx, teamID, len(members)); err == nil {
			team.CurrentMembers = len(members)
		}
	}

	return &models.TeamDetail{
		Team:    *team,
		Members: members,
	}, nil
}

// ListTeams returns paginated public active teams matching the filters.
// When excludeUserTeams is set, teams the user already belongs to are omitted.
func (s *TeamService) ListTeams(ctx context.Context, userID primitive.ObjectID, filter *models.TeamFilter, excludeUserTeams bool, page, limit int) (*models.TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	if filter == nil {
		filter = &models.TeamFilter{}
	}

	if excludeUserTeams {
		teamIDs, err := s.memberRepo.FindTeamIDsByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		filter.ExcludeTeamIDs = teamIDs
	}

	teams, total, err := s.teamRepo.FindAll(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	// Join codes are never exposed in listings
	for i := range teams {
		teams[i].JoinCode = ""
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return &models.TeamListResponse{
		Items: teams,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// UpdateTeam updates a team's information. Only the captain may update,
// which the route-level authorization already enforces.
func (s *TeamService) UpdateTeam(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	return s.teamRepo.Update(ctx, teamID, req)
}

// DeleteTeam deletes a team and all related data.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID primitive.ObjectID) error {
	// Delete all team members
	if err := s.memberRepo.DeleteAllByTeamID(ctx, teamID); err != nil {
		return err
	}

	// Delete all pending invites
	if err := s.inviteRepo.DeleteAllByTeamID(ctx, teamID); err != nil {
		return err
	}

	return s.teamRepo.Delete(ctx, teamID)
}

// JoinByCode adds the user to the team identified by the join code.
// The seat is claimed atomically before the membership row is written.
func (s *TeamService) JoinByCode(ctx context.Context, userID primitive.ObjectID, joinCode string) (*models.JoinTeamResponse, error) {
	team, err := s.teamRepo.FindByJoinCode(ctx, joinCode)
	if err != nil {
		return nil, err
	}

	if team.Status != models.TeamStatusActive {
		return nil, apperrors.ErrTeamNotActive
	}

	if _, err := s.memberRepo.FindByTeamAndUser(ctx, team.ID, userID); err == nil {
		return nil, apperrors.ErrAlreadyMember
	}

	// Claim a seat before writing the membership row
	if err := s.teamRepo.IncrementMemberCountIfBelowCap(ctx, team.ID); err != nil {
		return nil, err
	}

	member := &models.TeamMember{
		TeamID: team.ID,
		UserID: userID,
		Role:   models.RoleMember,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		// Release the claimed seat
		_ = s.teamRepo.DecrementMemberCount(ctx, team.ID)
		return nil, err
	}

	s.notifyJoin(ctx, team, userID)

	return &models.JoinTeamResponse{
		Message: "joined team successfully",
		Member:  *member,
	}, nil
}

// notifyJoin tells the captain that someone joined with the code.
func (s *TeamService) notifyJoin(ctx context.Context, team *models.Team, userID primitive.ObjectID) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return
	}

	s.notifier.Notify(&models.Notification{
		UserID:  team.CreatedBy,
		Type:    models.NotificationMemberJoined,
		Title:   "New team member",
		Message: user.Name + " joined " + team.Name,
		Data: map[string]string{
			"teamId": team.ID.Hex(),
			"userId": userID.Hex(),
		},
		ActionURL: "/teams/" + team.ID.Hex(),
	})
}

// expandRoster loads the active members of a team with their user summaries.
func (s *TeamService) expandRoster(ctx context.Context, teamID primitive.ObjectID) ([]models.TeamMemberWithUser, error) {
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

	roster := make([]models.TeamMemberWithUser, 0, len(members))
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
		roster = append(roster, entry)
	}

	return roster, nil
}

// generateJoinCode returns a random 8-character uppercase alphanumeric code.
// Uses rejection sampling so every character is drawn uniformly.
func generateJoinCode() string {
	code := make([]byte, models.JoinCodeLength)
	buf := make([]byte, 1)

	// Reject bytes outside the largest multiple of the alphabet size
	// to avoid modulo bias.
	max := byte(256 - 256%len(joinCodeAlphabet))

	for i := 0; i < len(code); {
		_, _ = rand.Read(buf)
		if buf[0] >= max {
			continue
		}
		code[i] = joinCodeAlphabet[int(buf[0])%len(joinCodeAlphabet)]
		i++
	}

	return string(code)
}
