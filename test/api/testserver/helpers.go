//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"scoutlete/internal/models"
	"scoutlete/pkg/response"
	"scoutlete/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the auth response data.
func (ah *AuthHelper) RegisterUser(t *testing.T, name, email, password string) map[string]interface{} {
	t.Helper()

	req := models.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "register response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// Login logs in a user and returns the auth response containing tokens.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "login response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// GetAccessToken logs in and returns just the access token.
func (ah *AuthHelper) GetAccessToken(t *testing.T, email, password string) string {
	t.Helper()

	data := ah.Login(t, email, password)
	token, ok := data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	return token
}

// CreateAuthenticatedUser creates a user and returns the user data and access token.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, name, email, password string) (userData map[string]interface{}, accessToken string) {
	t.Helper()

	data := ah.RegisterUser(t, name, email, password)

	accessToken, ok := data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	userData, ok = data["user"].(map[string]interface{})
	require.True(t, ok, "user should be an object")

	return userData, accessToken
}

// CreateDefaultUser creates a user with default test credentials.
func (ah *AuthHelper) CreateDefaultUser(t *testing.T) (userData map[string]interface{}, accessToken string) {
	t.Helper()
	return ah.CreateAuthenticatedUser(t, "Test User", "test@example.com", "password123")
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := context.Background()

	err := ah.server.UserRepo.Create(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// TeamHelper provides team-related helpers for API tests.
type TeamHelper struct {
	server *TestServer
}

// NewTeamHelper creates a new team helper.
func NewTeamHelper(server *TestServer) *TeamHelper {
	return &TeamHelper{server: server}
}

// CreateTeam creates a new team via the API and returns the team data.
func (th *TeamHelper) CreateTeam(t *testing.T, token, name, sport string) map[string]interface{} {
	t.Helper()

	req := models.CreateTeamRequest{
		Name:       name,
		Sport:      sport,
		MaxMembers: 6,
	}

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/teams", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create team should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create team response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// SeedTeam directly inserts a team into the database (bypasses API).
func (th *TeamHelper) SeedTeam(t *testing.T, team *models.Team) *models.Team {
	t.Helper()
	ctx := context.Background()

	err := th.server.TeamRepo.Create(ctx, team)
	require.NoError(t, err, "failed to seed team")

	return team
}

// SeedTeamMember directly inserts a team member into the database.
func (th *TeamHelper) SeedTeamMember(t *testing.T, member *models.TeamMember) *models.TeamMember {
	t.Helper()
	ctx := context.Background()

	err := th.server.TeamMemberRepo.Create(ctx, member)
	require.NoError(t, err, "failed to seed team member")

	return member
}

// InviteHelper provides invite-related helpers for API tests.
type InviteHelper struct {
	server *TestServer
}

// NewInviteHelper creates a new invite helper.
func NewInviteHelper(server *TestServer) *InviteHelper {
	return &InviteHelper{server: server}
}

// CreateJoinRequest creates a join request via the API and returns the response data.
func (ih *InviteHelper) CreateJoinRequest(t *testing.T, token, teamID, message string) map[string]interface{} {
	t.Helper()

	req := models.CreateInviteRequest{
		Type:    string(models.KindJoinRequest),
		TeamID:  teamID,
		Message: message,
	}

	return ih.createInvite(t, token, req)
}

// CreateInvitation creates a team invitation via the API and returns the response data.
func (ih *InviteHelper) CreateInvitation(t *testing.T, token, teamID, userID, role string) map[string]interface{} {
	t.Helper()

	req := models.CreateInviteRequest{
		Type:   string(models.KindInvitation),
		TeamID: teamID,
		UserID: userID,
		Role:   role,
	}

	return ih.createInvite(t, token, req)
}

func (ih *InviteHelper) createInvite(t *testing.T, token string, req models.CreateInviteRequest) map[string]interface{} {
	t.Helper()

	w := testutil.MakeAuthRequest(t, ih.server.Router, http.MethodPost, "/api/v1/team-invites", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create invite should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create invite response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// SeedInvite directly inserts an invite into the database (bypasses API).
// Note: This uses the repository's Create method which sets default ExpiresAt.
// Use SeedInviteRaw for full control over all fields (e.g., expired invites).
func (ih *InviteHelper) SeedInvite(t *testing.T, invite *models.TeamInvite) *models.TeamInvite {
	t.Helper()
	ctx := context.Background()

	err := ih.server.TeamInviteRepo.Create(ctx, invite)
	require.NoError(t, err, "failed to seed invite")

	return invite
}

// SeedInviteRaw directly inserts an invite into MongoDB without going through
// the repository's Create method. This allows full control over all fields,
// including ExpiresAt (useful for testing expired invites).
func (ih *InviteHelper) SeedInviteRaw(t *testing.T, invite *models.TeamInvite) *models.TeamInvite {
	t.Helper()
	ctx := context.Background()

	if invite.ID.IsZero() {
		invite.ID = primitive.NewObjectID()
	}

	collection := ih.server.MongoDB.Database.Collection("team_invites")
	_, err := collection.InsertOne(ctx, invite)
	require.NoError(t, err, "failed to seed invite directly")

	return invite
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data.
// It handles both direct ID fields and nested user objects (for auth responses).
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	// Try nested user object (for auth responses)
	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	idStr := GetIDFromResponse(t, data)
	oid, err := primitive.ObjectIDFromHex(idStr)
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}
