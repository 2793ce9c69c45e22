package service

import (
	"context"
	"strings"
	"testing"

	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/models"
	repomocks "scoutlete/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

// captureNotifier records emitted notifications for assertions.
type captureNotifier struct {
	notifications []*models.Notification
}

func (n *captureNotifier) Notify(notification *models.Notification) {
	n.notifications = append(n.notifications, notification)
}

type teamServiceMocks struct {
	teamRepo   *repomocks.MockTeamRepository
	memberRepo *repomocks.MockTeamMemberRepository
	inviteRepo *repomocks.MockTeamInviteRepository
	userRepo   *repomocks.MockUserRepository
	notifier   *captureNotifier
}

func newTeamServiceMocks(ctrl *gomock.Controller) *teamServiceMocks {
	return &teamServiceMocks{
		teamRepo:   repomocks.NewMockTeamRepository(ctrl),
		memberRepo: repomocks.NewMockTeamMemberRepository(ctrl),
		inviteRepo: repomocks.NewMockTeamInviteRepository(ctrl),
		userRepo:   repomocks.NewMockUserRepository(ctrl),
		notifier:   &captureNotifier{},
	}
}

func (m *teamServiceMocks) service() *TeamService {
	return NewTeamService(m.teamRepo, m.memberRepo, m.inviteRepo, m.userRepo, m.notifier)
}

func TestTeamService_CreateTeam(t *testing.T) {
	userID := primitive.NewObjectID()
	createReq := &models.CreateTeamRequest{
		Name:       "Downtown Smashers",
		Sport:      "badminton",
		MaxMembers: 6,
	}

	t.Run("creates team with captain membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)

		m.teamRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, team *models.Team) error {
				team.ID = primitive.NewObjectID()
				assert.Equal(t, 1, team.CurrentMembers)
				assert.Equal(t, models.TeamStatusActive, team.Status)
				assert.Len(t, team.JoinCode, models.JoinCodeLength)
				assert.True(t, team.IsPublic)
				return nil
			})

		m.memberRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, member *models.TeamMember) error {
				assert.Equal(t, userID, member.UserID)
				assert.Equal(t, models.RoleCaptain, member.Role)
				return nil
			})

		team, err := m.service().CreateTeam(context.Background(), userID, createReq)

		require.NoError(t, err)
		assert.Equal(t, userID, team.CreatedBy)
	})

	t.Run("rolls back team when captain membership fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)

		m.teamRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, team *models.Team) error {
				team.ID = primitive.NewObjectID()
				return nil
			})

		m.memberRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		m.teamRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		team, err := m.service().CreateTeam(context.Background(), userID, createReq)

		assert.Nil(t, team)
		assert.Error(t, err)
	})
}

func TestTeamService_GetTeam(t *testing.T) {
	teamID := primitive.NewObjectID()
	captainID := primitive.NewObjectID()
	memberID := primitive.NewObjectID()
	strangerID := primitive.NewObjectID()

	baseTeam := func() *models.Team {
		return &models.Team{
			ID:             teamID,
			Name:           "Downtown Smashers",
			IsPublic:       true,
			JoinCode:       "K7KQ2B9X",
			Status:         models.TeamStatusActive,
			CurrentMembers: 2,
			CreatedBy:      captainID,
		}
	}

	roster := []models.TeamMember{
		{ID: primitive.NewObjectID(), TeamID: teamID, UserID: captainID, Role: models.RoleCaptain},
		{ID: primitive.NewObjectID(), TeamID: teamID, UserID: memberID, Role: models.RoleMember},
	}
	users := []models.User{
		{ID: captainID, Name: "Alex Morgan", Email: "alex@example.com"},
		{ID: memberID, Name: "Sam Lee", Email: "sam@example.com"},
	}

	t.Run("captain sees the join code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)

		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(baseTeam(), nil)
		m.memberRepo.EXPECT().
			FindByTeamAndUser(gomock.Any(), teamID, captainID).
			Return(&models.TeamMember{Role: models.RoleCaptain}, nil)
		m.memberRepo.EXPECT().FindByTeamID(gomock.Any(), teamID).Return(roster, nil)
		m.userRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return(users, nil)

		detail, err := m.service().GetTeam(context.Background(), teamID, captainID)

		require.NoError(t, err)
		assert.Equal(t, "K7KQ2B9X", detail.JoinCode)
		assert.Len(t, detail.Members, 2)
	})

	t.Run("join code is hidden from regular members", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)

		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(baseTeam(), nil)
		m.memberRepo.EXPECT().
			FindByTeamAndUser(gomock.Any(), teamID, memberID).
			Return(&models.TeamMember{Role: models.RoleMember}, nil)
		m.memberRepo.EXPECT().FindByTeamID(gomock.Any(), teamID).Return(roster, nil)
		m.userRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return(users, nil)

		detail, err := m.service().GetTeam(context.Background(), teamID, memberID)

		require.NoError(t, err)
		assert.Empty(t, detail.JoinCode)
	})

	t.Run("private team is hidden from non-members", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)

		private := baseTeam()
		private.IsPublic = false

		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(private, nil)
		m.memberRepo.EXPECT().
			FindByTeamAndUser(gomock.Any(), teamID, strangerID).
			Return(nil, apperrors.ErrNotTeamMember)

		detail, err := m.service().GetTeam(context.Background(), teamID, strangerID)

		assert.Nil(t, detail)
		assert.Equal(t, apperrors.ErrTeamAccessDenied, err)
	})

	t.Run("reconciles drifted member counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)

		drifted := baseTeam()
		drifted.CurrentMembers = 5

		m.teamRepo.EXPECT().FindByID(gomock.Any(), teamID).Return(drifted, nil)
		m.memberRepo.EXPECT().
			FindByTeamAndUser(gomock.Any(), teamID, captainID).
			Return(&models.TeamMember{Role: models.RoleCaptain}, nil)
		m.memberRepo.EXPECT().FindByTeamID(gomock.Any(), teamID).Return(roster, nil)
		m.userRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return(users, nil)
		m.teamRepo.EXPECT().SetMemberCount(gomock.Any(), teamID, 2).Return(nil)

		detail, err := m.service().GetTeam(context.Background(), teamID, captainID)

		require.NoError(t, err)
		assert.Equal(t, 2, detail.CurrentMembers)
	})
}

func TestTeamService_ListTeams(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("strips join codes and paginates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)

		teams := []models.Team{
			{ID: primitive.NewObjectID(), Name: "Team A", JoinCode: "AAAA1111"},
			{ID: primitive.NewObjectID(), Name: "Team B", JoinCode: "BBBB2222"},
		}

		m.teamRepo.EXPECT().
			FindAll(gomock.Any(), gomock.Any(), 1, 20).
			Return(teams, 41, nil)

		result, err := m.service().ListTeams(context.Background(), userID, nil, false, 0, 0)

		require.NoError(t, err)
		require.Len(t, result.Items, 2)
		assert.Empty(t, result.Items[0].JoinCode)
		assert.Empty(t, result.Items[1].JoinCode)
		assert.Equal(t, 41, result.Pagination.TotalItems)
		assert.Equal(t, 3, result.Pagination.TotalPages)
	})

	t.Run("excludes the caller's own teams when requested", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)

		ownTeamID := primitive.NewObjectID()

		m.memberRepo.EXPECT().
			FindTeamIDsByUserID(gomock.Any(), userID).
			Return([]primitive.ObjectID{ownTeamID}, nil)

		m.teamRepo.EXPECT().
			FindAll(gomock.Any(), gomock.Any(), 1, 20).
			DoAndReturn(func(ctx context.Context, filter *models.TeamFilter, page, limit int) ([]models.Team, int, error) {
				require.Len(t, filter.ExcludeTeamIDs, 1)
				assert.Equal(t, ownTeamID, filter.ExcludeTeamIDs[0])
				return nil, 0, nil
			})

		_, err := m.service().ListTeams(context.Background(), userID, nil, true, 1, 20)

		require.NoError(t, err)
	})
}

func TestTeamService_JoinByCode(t *testing.T) {
	teamID := primitive.NewObjectID()
	captainID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	team := &models.Team{
		ID:             teamID,
		Name:           "Downtown Smashers",
		Status:         models.TeamStatusActive,
		MaxMembers:     6,
		CurrentMembers: 3,
		CreatedBy:      captainID,
	}

	t.Run("joins and notifies the captain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)

		m.teamRepo.EXPECT().FindByJoinCode(gomock.Any(), "K7KQ2B9X").Return(team, nil)
		m.memberRepo.EXPECT().
			FindByTeamAndUser(gomock.Any(), teamID, userID).
			Return(nil, apperrors.ErrNotTeamMember)
		m.teamRepo.EXPECT().IncrementMemberCountIfBelowCap(gomock.Any(), teamID).Return(nil)
		m.memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.userRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, Name: "Sam Lee"}, nil)

		result, err := m.service().JoinByCode(context.Background(), userID, "K7KQ2B9X")

		require.NoError(t, err)
		assert.Equal(t, models.RoleMember, result.Member.Role)

		require.Len(t, m.notifier.notifications, 1)
		assert.Equal(t, captainID, m.notifier.notifications[0].UserID)
		assert.Equal(t, models.NotificationMemberJoined, m.notifier.notifications[0].Type)
	})

	t.Run("returns error for unknown join code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)

		m.teamRepo.EXPECT().
			FindByJoinCode(gomock.Any(), "WRONGCOD").
			Return(nil, apperrors.ErrInvalidJoinCode)

		result, err := m.service().JoinByCode(context.Background(), userID, "WRONGCOD")

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrInvalidJoinCode, err)
	})

	t.Run("returns error when team is full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)

		m.teamRepo.EXPECT().FindByJoinCode(gomock.Any(), "K7KQ2B9X").Return(team, nil)
		m.memberRepo.EXPECT().
			FindByTeamAndUser(gomock.Any(), teamID, userID).
			Return(nil, apperrors.ErrNotTeamMember)
		m.teamRepo.EXPECT().
			IncrementMemberCountIfBelowCap(gomock.Any(), teamID).
			Return(apperrors.ErrTeamFull)

		result, err := m.service().JoinByCode(context.Background(), userID, "K7KQ2B9X")

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrTeamFull, err)
	})

	t.Run("returns error when already a member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)

		m.teamRepo.EXPECT().FindByJoinCode(gomock.Any(), "K7KQ2B9X").Return(team, nil)
		m.memberRepo.EXPECT().
			FindByTeamAndUser(gomock.Any(), teamID, userID).
			Return(&models.TeamMember{}, nil)

		result, err := m.service().JoinByCode(context.Background(), userID, "K7KQ2B9X")

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrAlreadyMember, err)
	})

	t.Run("releases the seat when membership write fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)

		m.teamRepo.EXPECT().FindByJoinCode(gomock.Any(), "K7KQ2B9X").Return(team, nil)
		m.memberRepo.EXPECT().
			FindByTeamAndUser(gomock.Any(), teamID, userID).
			Return(nil, apperrors.ErrNotTeamMember)
		m.teamRepo.EXPECT().IncrementMemberCountIfBelowCap(gomock.Any(), teamID).Return(nil)
		m.memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError)
		m.teamRepo.EXPECT().DecrementMemberCount(gomock.Any(), teamID).Return(nil)

		result, err := m.service().JoinByCode(context.Background(), userID, "K7KQ2B9X")

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestTeamService_DeleteTeam(t *testing.T) {
	t.Run("deletes members, invites, then the team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTeamServiceMocks(ctrl)
		teamID := primitive.NewObjectID()

		m.memberRepo.EXPECT().DeleteAllByTeamID(gomock.Any(), teamID).Return(nil)
		m.inviteRepo.EXPECT().DeleteAllByTeamID(gomock.Any(), teamID).Return(nil)
		m.teamRepo.EXPECT().Delete(gomock.Any(), teamID).Return(nil)

		err := m.service().DeleteTeam(context.Background(), teamID)

		assert.NoError(t, err)
	})
}

func TestGenerateJoinCode(t *testing.T) {
	t.Run("produces codes of the right length and alphabet", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			code := generateJoinCode()
			require.Len(t, code, models.JoinCodeLength)
			for _, c := range code {
				assert.True(t, strings.ContainsRune(joinCodeAlphabet, c), "unexpected character %q in %s", c, code)
			}
		}
	})

	t.Run("produces distinct codes", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			seen[generateJoinCode()] = true
		}
		assert.Greater(t, len(seen), 95)
	})
}
