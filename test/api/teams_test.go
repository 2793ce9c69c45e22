//go:build api

package api

import (
	"net/http"
	"strings"
	"testing"

	"scoutlete/internal/models"
	"scoutlete/test/api/testserver"
	"scoutlete/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestCreateTeam tests the POST /api/v1/teams endpoint.
func TestCreateTeam(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)

	t.Run("success - creates team with required fields", func(t *testing.T) {
		userData, token := authHelper.CreateAuthenticatedUser(t, "Team Captain", "captain@example.com", "password123")
		userID := testserver.GetIDFromResponse(t, userData)

		req := models.CreateTeamRequest{
			Name:       "Downtown Smashers",
			Sport:      "badminton",
			MaxMembers: 6,
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams", token, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Data)

		assert.Equal(t, "Downtown Smashers", resp.Data["name"])
		assert.Equal(t, "badminton", resp.Data["sport"])
		assert.Equal(t, userID, resp.Data["createdBy"])
		assert.Equal(t, float64(1), resp.Data["currentMembers"])
		assert.Equal(t, "active", resp.Data["status"])

		joinCode, ok := resp.Data["joinCode"].(string)
		require.True(t, ok, "joinCode should be a string")
		assert.Len(t, joinCode, 8)

		// The creator is on the roster as captain
		ctx, cancel := testutil.TestContext()
		defer cancel()
		teamID := testserver.GetObjectIDFromResponse(t, resp.Data)
		userOID, err := primitive.ObjectIDFromHex(userID)
		require.NoError(t, err)
		member, err := testServer.TeamMemberRepo.FindByTeamAndUser(ctx, teamID, userOID)
		require.NoError(t, err)
		assert.Equal(t, models.RoleCaptain, member.Role)
	})

	t.Run("error - missing required fields", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, token := authHelper.CreateAuthenticatedUser(t, "No Sport", "nosport@example.com", "password123")

		req := map[string]interface{}{
			"name":        "No Sport Team",
			"max_members": 6,
			// missing sport
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams", token, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - max members below minimum", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, token := authHelper.CreateAuthenticatedUser(t, "Tiny Team", "tiny@example.com", "password123")

		req := models.CreateTeamRequest{
			Name:       "Tiny Team",
			Sport:      "badminton",
			MaxMembers: 1, // min is 2
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams", token, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - unauthenticated", func(t *testing.T) {
		req := models.CreateTeamRequest{
			Name:       "Ghost Team",
			Sport:      "soccer",
			MaxMembers: 11,
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestGetTeam tests the GET /api/v1/teams/:teamId endpoint.
func TestGetTeam(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	teamHelper := testserver.NewTeamHelper(testServer)

	t.Run("success - captain sees the join code and roster", func(t *testing.T) {
		_, token := authHelper.CreateAuthenticatedUser(t, "Roster Captain", "roster@example.com", "password123")
		teamData := teamHelper.CreateTeam(t, token, "Roster Team", "badminton")
		teamID := testserver.GetIDFromResponse(t, teamData)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/"+teamID, token, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data["joinCode"])

		members, ok := resp.Data["members"].([]interface{})
		require.True(t, ok, "members should be an array")
		require.Len(t, members, 1)

		member := members[0].(map[string]interface{})
		assert.Equal(t, models.RoleCaptain, member["role"])
		user, ok := member["user"].(map[string]interface{})
		require.True(t, ok, "member user should be expanded")
		assert.Equal(t, "Roster Captain", user["name"])
	})

	t.Run("success - non-member of a public team does not see the join code", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, captainToken := authHelper.CreateAuthenticatedUser(t, "Public Captain", "public@example.com", "password123")
		teamData := teamHelper.CreateTeam(t, captainToken, "Public Team", "soccer")
		teamID := testserver.GetIDFromResponse(t, teamData)

		_, outsiderToken := authHelper.CreateAuthenticatedUser(t, "Outsider", "outsider@example.com", "password123")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/"+teamID, outsiderToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		_, hasCode := resp.Data["joinCode"]
		assert.False(t, hasCode, "join code should be hidden from non-captains")
	})

	t.Run("error - private team hidden from non-members", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		userData, _ := authHelper.CreateAuthenticatedUser(t, "Private Captain", "privcap@example.com", "password123")
		captainID := testserver.GetObjectIDFromResponse(t, userData)

		team := teamHelper.SeedTeam(t, &models.Team{
			Name:       "Private Team",
			Sport:      "badminton",
			MaxMembers: 6,
			IsPublic:   false,
			JoinCode:   "PRIV1234",
			CreatedBy:  captainID,
		})
		teamHelper.SeedTeamMember(t, &models.TeamMember{
			TeamID: team.ID,
			UserID: captainID,
			Role:   models.RoleCaptain,
		})

		_, outsiderToken := authHelper.CreateAuthenticatedUser(t, "Private Outsider", "privout@example.com", "password123")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/"+team.ID.Hex(), outsiderToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - unknown team", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, token := authHelper.CreateAuthenticatedUser(t, "Seeker", "seeker@example.com", "password123")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/"+primitive.NewObjectID().Hex(), token, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - malformed team id", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, token := authHelper.CreateAuthenticatedUser(t, "Malformed", "malformed@example.com", "password123")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams/not-an-id", token, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestListTeams tests the GET /api/v1/teams endpoint.
func TestListTeams(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	teamHelper := testserver.NewTeamHelper(testServer)

	t.Run("success - lists public active teams with pagination", func(t *testing.T) {
		_, token := authHelper.CreateAuthenticatedUser(t, "Lister", "lister@example.com", "password123")

		teamHelper.CreateTeam(t, token, "Alpha Team", "badminton")
		teamHelper.CreateTeam(t, token, "Beta Team", "soccer")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams", token, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)

		items, ok := resp.Data["items"].([]interface{})
		require.True(t, ok, "items should be an array")
		assert.Len(t, items, 2)

		pagination, ok := resp.Data["pagination"].(map[string]interface{})
		require.True(t, ok, "pagination should be an object")
		assert.Equal(t, float64(2), pagination["totalItems"])

		// Listings never expose join codes
		for _, item := range items {
			team := item.(map[string]interface{})
			_, hasCode := team["joinCode"]
			assert.False(t, hasCode, "listing should not expose join codes")
		}
	})

	t.Run("success - sport filter", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, token := authHelper.CreateAuthenticatedUser(t, "Filterer", "filterer@example.com", "password123")
		teamHelper.CreateTeam(t, token, "Badminton Squad", "badminton")
		teamHelper.CreateTeam(t, token, "Soccer Squad", "soccer")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams?sport=soccer", token, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items := resp.Data["items"].([]interface{})
		require.Len(t, items, 1)
		team := items[0].(map[string]interface{})
		assert.Equal(t, "Soccer Squad", team["name"])
	})

	t.Run("success - exclude_user_teams filter hides own teams", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, myToken := authHelper.CreateAuthenticatedUser(t, "Mine", "mine@example.com", "password123")
		teamHelper.CreateTeam(t, myToken, "My Team", "badminton")

		_, otherToken := authHelper.CreateAuthenticatedUser(t, "Other", "other@example.com", "password123")
		teamHelper.CreateTeam(t, otherToken, "Other Team", "badminton")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams?exclude_user_teams=true", myToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items := resp.Data["items"].([]interface{})
		require.Len(t, items, 1)
		team := items[0].(map[string]interface{})
		assert.Equal(t, "Other Team", team["name"])
	})

	t.Run("success - private teams are not listed", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		userData, token := authHelper.CreateAuthenticatedUser(t, "Hider", "hider@example.com", "password123")
		captainID := testserver.GetObjectIDFromResponse(t, userData)

		teamHelper.SeedTeam(t, &models.Team{
			Name:       "Hidden Team",
			Sport:      "badminton",
			MaxMembers: 6,
			IsPublic:   false,
			JoinCode:   "HIDE1234",
			CreatedBy:  captainID,
		})

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/teams", token, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items := resp.Data["items"].([]interface{})
		assert.Empty(t, items)
	})
}

// TestUpdateTeam tests the PUT /api/v1/teams/:teamId endpoint.
func TestUpdateTeam(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	teamHelper := testserver.NewTeamHelper(testServer)

	t.Run("success - captain updates the team", func(t *testing.T) {
		_, token := authHelper.CreateAuthenticatedUser(t, "Edit Captain", "editcap@example.com", "password123")
		teamData := teamHelper.CreateTeam(t, token, "Editable Team", "badminton")
		teamID := testserver.GetIDFromResponse(t, teamData)

		name := "Renamed Team"
		req := models.UpdateTeamRequest{Name: &name}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/teams/"+teamID, token, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Renamed Team", resp.Data["name"])
		assert.Equal(t, "badminton", resp.Data["sport"])
	})

	t.Run("error - regular member cannot update", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, captainToken := authHelper.CreateAuthenticatedUser(t, "Strict Captain", "strict@example.com", "password123")
		teamData := teamHelper.CreateTeam(t, captainToken, "Strict Team", "badminton")
		teamID := testserver.GetObjectIDFromResponse(t, teamData)

		memberData, memberToken := authHelper.CreateAuthenticatedUser(t, "Plain Member", "plain@example.com", "password123")
		memberID := testserver.GetObjectIDFromResponse(t, memberData)
		teamHelper.SeedTeamMember(t, &models.TeamMember{
			TeamID: teamID,
			UserID: memberID,
			Role:   models.RoleMember,
		})

		name := "Hijacked"
		req := models.UpdateTeamRequest{Name: &name}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/teams/"+teamID.Hex(), memberToken, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - non-member cannot update", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, captainToken := authHelper.CreateAuthenticatedUser(t, "Lone Captain", "lone@example.com", "password123")
		teamData := teamHelper.CreateTeam(t, captainToken, "Lone Team", "badminton")
		teamID := testserver.GetIDFromResponse(t, teamData)

		_, outsiderToken := authHelper.CreateAuthenticatedUser(t, "Update Outsider", "updout@example.com", "password123")

		name := "Stolen"
		req := models.UpdateTeamRequest{Name: &name}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/teams/"+teamID, outsiderToken, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestDeleteTeam tests the DELETE /api/v1/teams/:teamId endpoint.
func TestDeleteTeam(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	teamHelper := testserver.NewTeamHelper(testServer)

	t.Run("success - captain deletes the team and its data", func(t *testing.T) {
		_, token := authHelper.CreateAuthenticatedUser(t, "Delete Captain", "delcap@example.com", "password123")
		teamData := teamHelper.CreateTeam(t, token, "Doomed Team", "badminton")
		teamID := testserver.GetObjectIDFromResponse(t, teamData)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/teams/"+teamID.Hex(), token, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		// Team and roster are gone
		ctx, cancel := testutil.TestContext()
		defer cancel()
		_, err := testServer.TeamRepo.FindByID(ctx, teamID)
		assert.Error(t, err)
		members, err := testServer.TeamMemberRepo.FindByTeamID(ctx, teamID)
		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("error - regular member cannot delete", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, captainToken := authHelper.CreateAuthenticatedUser(t, "Keep Captain", "keepcap@example.com", "password123")
		teamData := teamHelper.CreateTeam(t, captainToken, "Kept Team", "badminton")
		teamID := testserver.GetObjectIDFromResponse(t, teamData)

		memberData, memberToken := authHelper.CreateAuthenticatedUser(t, "Keep Member", "keepmem@example.com", "password123")
		memberID := testserver.GetObjectIDFromResponse(t, memberData)
		teamHelper.SeedTeamMember(t, &models.TeamMember{
			TeamID: teamID,
			UserID: memberID,
			Role:   models.RoleMember,
		})

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/teams/"+teamID.Hex(), memberToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestJoinTeam tests the POST /api/v1/teams/join endpoint.
func TestJoinTeam(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	teamHelper := testserver.NewTeamHelper(testServer)

	t.Run("success - joins with a valid code", func(t *testing.T) {
		_, captainToken := authHelper.CreateAuthenticatedUser(t, "Join Captain", "joincap@example.com", "password123")
		teamData := teamHelper.CreateTeam(t, captainToken, "Joinable Team", "badminton")
		teamID := testserver.GetObjectIDFromResponse(t, teamData)
		joinCode := teamData["joinCode"].(string)

		_, joinerToken := authHelper.CreateAuthenticatedUser(t, "Joiner", "joiner@example.com", "password123")

		req := models.JoinTeamRequest{JoinCode: joinCode}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams/join", joinerToken, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "joined team successfully", resp.Data["message"])

		// Seat count updated
		ctx, cancel := testutil.TestContext()
		defer cancel()
		team, err := testServer.TeamRepo.FindByID(ctx, teamID)
		require.NoError(t, err)
		assert.Equal(t, 2, team.CurrentMembers)
	})

	t.Run("success - code is case-insensitive", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, captainToken := authHelper.CreateAuthenticatedUser(t, "Case Captain", "casecap@example.com", "password123")
		teamData := teamHelper.CreateTeam(t, captainToken, "Case Team", "badminton")
		joinCode := teamData["joinCode"].(string)

		_, joinerToken := authHelper.CreateAuthenticatedUser(t, "Case Joiner", "casejoin@example.com", "password123")

		req := map[string]string{"join_code": strings.ToLower(joinCode)}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams/join", joinerToken, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error - unknown code", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, token := authHelper.CreateAuthenticatedUser(t, "Lost Joiner", "lost@example.com", "password123")

		req := models.JoinTeamRequest{JoinCode: "NOPE0000"}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams/join", token, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - already a member", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, captainToken := authHelper.CreateAuthenticatedUser(t, "Dup Captain", "dupcap@example.com", "password123")
		teamData := teamHelper.CreateTeam(t, captainToken, "Dup Team", "badminton")
		joinCode := teamData["joinCode"].(string)

		req := models.JoinTeamRequest{JoinCode: joinCode}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams/join", captainToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - team is full", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		userData, _ := authHelper.CreateAuthenticatedUser(t, "Full Captain", "fullcap@example.com", "password123")
		captainID := testserver.GetObjectIDFromResponse(t, userData)

		team := teamHelper.SeedTeam(t, &models.Team{
			Name:           "Full Team",
			Sport:          "badminton",
			MaxMembers:     2,
			CurrentMembers: 2,
			IsPublic:       true,
			JoinCode:       "FULL2222",
			CreatedBy:      captainID,
		})
		_ = team

		_, joinerToken := authHelper.CreateAuthenticatedUser(t, "Full Joiner", "fulljoin@example.com", "password123")

		req := models.JoinTeamRequest{JoinCode: "FULL2222"}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams/join", joinerToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - disbanded team", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		userData, _ := authHelper.CreateAuthenticatedUser(t, "Gone Captain", "gonecap@example.com", "password123")
		captainID := testserver.GetObjectIDFromResponse(t, userData)

		teamHelper.SeedTeam(t, &models.Team{
			Name:       "Gone Team",
			Sport:      "badminton",
			MaxMembers: 6,
			IsPublic:   true,
			JoinCode:   "GONE3333",
			Status:     models.TeamStatusDisbanded,
			CreatedBy:  captainID,
		})

		_, joinerToken := authHelper.CreateAuthenticatedUser(t, "Late Joiner", "latejoin@example.com", "password123")

		req := models.JoinTeamRequest{JoinCode: "GONE3333"}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/teams/join", joinerToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
