package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/models"
	"scoutlete/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewTeamInviteHandler(t *testing.T) {
	mockService := &mocks.MockTeamInviteService{}
	handler := NewTeamInviteHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestTeamInviteHandler_CreateInvite(t *testing.T) {
	userID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()
	inviteID := primitive.NewObjectID()
	now := time.Now()

	tests := []struct {
		name           string
		userID         string
		body           interface{}
		mockSetup      func(*mocks.MockTeamInviteService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "successful join request",
			userID: userID.Hex(),
			body: models.CreateInviteRequest{
				Type:   string(models.KindJoinRequest),
				TeamID: teamID.Hex(),
			},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.CreateInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
					assert.Equal(t, userID, actingUserID)
					return &models.TeamInvite{
						ID:        inviteID,
						TeamID:    teamID,
						InviteeID: actingUserID,
						InviterID: actingUserID,
						Kind:      models.KindJoinRequest,
						Status:    models.InviteStatusPending,
						Role:      models.RoleMember,
						ExpiresAt: now.Add(7 * 24 * time.Hour),
						CreatedAt: now,
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, true, resp["success"])
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "join_request", data["type"])
				assert.Equal(t, "pending", data["status"])
			},
		},
		{
			name:   "successful invitation",
			userID: userID.Hex(),
			body: models.CreateInviteRequest{
				Type:   string(models.KindInvitation),
				TeamID: teamID.Hex(),
				UserID: primitive.NewObjectID().Hex(),
				Role:   models.RoleMember,
			},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.CreateInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
					return &models.TeamInvite{
						ID:        inviteID,
						TeamID:    teamID,
						InviterID: actingUserID,
						Kind:      models.KindInvitation,
						Status:    models.InviteStatusPending,
						Role:      models.RoleMember,
						ExpiresAt: now.Add(7 * 24 * time.Hour),
						CreatedAt: now,
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid user ID in context",
			userID:         "invalid-id",
			body:           models.CreateInviteRequest{Type: string(models.KindJoinRequest), TeamID: teamID.Hex()},
			mockSetup:      func(m *mocks.MockTeamInviteService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid JSON body",
			userID:         userID.Hex(),
			body:           "invalid json",
			mockSetup:      func(m *mocks.MockTeamInviteService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown invite type",
			userID:         userID.Hex(),
			body:           map[string]string{"type": "summons", "team_id": teamID.Hex()},
			mockSetup:      func(m *mocks.MockTeamInviteService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "team not found",
			userID: userID.Hex(),
			body:   models.CreateInviteRequest{Type: string(models.KindJoinRequest), TeamID: teamID.Hex()},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.CreateInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
					return nil, apperrors.ErrTeamNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "neither team id nor code given",
			userID: userID.Hex(),
			body:   models.CreateInviteRequest{Type: string(models.KindJoinRequest)},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.CreateInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
					return nil, apperrors.ErrInviteTargetMissing
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "plain member cannot invite",
			userID: userID.Hex(),
			body: models.CreateInviteRequest{
				Type:   string(models.KindInvitation),
				TeamID: teamID.Hex(),
				UserID: primitive.NewObjectID().Hex(),
			},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.CreateInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
					return nil, apperrors.ErrTeamAccessDenied
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "duplicate pending request",
			userID: userID.Hex(),
			body:   models.CreateInviteRequest{Type: string(models.KindJoinRequest), TeamID: teamID.Hex()},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.CreateInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
					return nil, apperrors.ErrPendingRequestExists
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "team full",
			userID: userID.Hex(),
			body:   models.CreateInviteRequest{Type: string(models.KindJoinRequest), TeamID: teamID.Hex()},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.CreateInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
					return nil, apperrors.ErrTeamFull
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "already a member",
			userID: userID.Hex(),
			body:   models.CreateInviteRequest{Type: string(models.KindJoinRequest), TeamID: teamID.Hex()},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.CreateInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
					return nil, apperrors.ErrAlreadyMember
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "internal server error",
			userID: userID.Hex(),
			body:   models.CreateInviteRequest{Type: string(models.KindJoinRequest), TeamID: teamID.Hex()},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.CreateInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.CreateInviteRequest) (*models.TeamInvite, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockTeamInviteService{}
			tt.mockSetup(mockService)

			handler := NewTeamInviteHandler(mockService)

			router := gin.New()
			router.POST("/team-invites", setUserID(tt.userID), handler.CreateInvite)

			var body []byte
			switch v := tt.body.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/team-invites", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestTeamInviteHandler_ListInvites(t *testing.T) {
	userID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()
	now := time.Now()

	tests := []struct {
		name           string
		userID         string
		mockSetup      func(*mocks.MockTeamInviteService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "successful list invites",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.ListInvitesFunc = func(ctx context.Context, uID primitive.ObjectID) (*models.InviteListResponse, error) {
					assert.Equal(t, userID, uID)
					return &models.InviteListResponse{
						Items: []models.TeamInviteWithTeam{
							{
								TeamInvite: models.TeamInvite{
									ID:        primitive.NewObjectID(),
									TeamID:    teamID,
									InviteeID: uID,
									Kind:      models.KindInvitation,
									Status:    models.InviteStatusPending,
									ExpiresAt: now.Add(24 * time.Hour),
									CreatedAt: now,
								},
								Team: &models.TeamSummary{ID: teamID, Name: "Downtown Smashers", Sport: "badminton"},
							},
						},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].(map[string]interface{})
				items := data["items"].([]interface{})
				assert.Len(t, items, 1)
				invite := items[0].(map[string]interface{})
				team := invite["team"].(map[string]interface{})
				assert.Equal(t, "Downtown Smashers", team["name"])
			},
		},
		{
			name:           "invalid user ID in context",
			userID:         "invalid-id",
			mockSetup:      func(m *mocks.MockTeamInviteService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "internal server error",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.ListInvitesFunc = func(ctx context.Context, uID primitive.ObjectID) (*models.InviteListResponse, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockTeamInviteService{}
			tt.mockSetup(mockService)

			handler := NewTeamInviteHandler(mockService)

			router := gin.New()
			router.GET("/team-invites", setUserID(tt.userID), handler.ListInvites)

			req := httptest.NewRequest(http.MethodGet, "/team-invites", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestTeamInviteHandler_RespondInvite(t *testing.T) {
	userID := primitive.NewObjectID()
	teamID := primitive.NewObjectID()
	inviteID := primitive.NewObjectID()
	now := time.Now()

	tests := []struct {
		name           string
		userID         string
		body           interface{}
		mockSetup      func(*mocks.MockTeamInviteService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "successful accept",
			userID: userID.Hex(),
			body: models.RespondInviteRequest{
				InviteID: inviteID.Hex(),
				Status:   models.InviteStatusAccepted,
			},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.RespondInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.RespondInviteRequest) (*models.TeamInvite, error) {
					assert.Equal(t, userID, actingUserID)
					assert.Equal(t, models.InviteStatusAccepted, req.Status)
					return &models.TeamInvite{
						ID:          inviteID,
						TeamID:      teamID,
						InviteeID:   actingUserID,
						Kind:        models.KindInvitation,
						Status:      models.InviteStatusAccepted,
						RespondedAt: &now,
						ExpiresAt:   now.Add(24 * time.Hour),
						CreatedAt:   now,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "accepted", data["status"])
				assert.NotEmpty(t, data["respondedAt"])
			},
		},
		{
			name:           "invalid status value",
			userID:         userID.Hex(),
			body:           map[string]string{"invite_id": inviteID.Hex(), "status": "maybe"},
			mockSetup:      func(m *mocks.MockTeamInviteService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "invite not found",
			userID: userID.Hex(),
			body:   models.RespondInviteRequest{InviteID: inviteID.Hex(), Status: models.InviteStatusAccepted},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.RespondInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.RespondInviteRequest) (*models.TeamInvite, error) {
					return nil, apperrors.ErrInviteNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "not the recipient",
			userID: userID.Hex(),
			body:   models.RespondInviteRequest{InviteID: inviteID.Hex(), Status: models.InviteStatusDeclined},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.RespondInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.RespondInviteRequest) (*models.TeamInvite, error) {
					return nil, apperrors.ErrNotInviteRecipient
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "already resolved",
			userID: userID.Hex(),
			body:   models.RespondInviteRequest{InviteID: inviteID.Hex(), Status: models.InviteStatusAccepted},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.RespondInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.RespondInviteRequest) (*models.TeamInvite, error) {
					return nil, apperrors.ErrInviteAlreadyResolved
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "invite expired",
			userID: userID.Hex(),
			body:   models.RespondInviteRequest{InviteID: inviteID.Hex(), Status: models.InviteStatusAccepted},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.RespondInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.RespondInviteRequest) (*models.TeamInvite, error) {
					return nil, apperrors.ErrInviteExpired
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "team filled up before accept",
			userID: userID.Hex(),
			body:   models.RespondInviteRequest{InviteID: inviteID.Hex(), Status: models.InviteStatusAccepted},
			mockSetup: func(m *mocks.MockTeamInviteService) {
				m.RespondInviteFunc = func(ctx context.Context, actingUserID primitive.ObjectID, req *models.RespondInviteRequest) (*models.TeamInvite, error) {
					return nil, apperrors.ErrTeamFull
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockTeamInviteService{}
			tt.mockSetup(mockService)

			handler := NewTeamInviteHandler(mockService)

			router := gin.New()
			router.PUT("/team-invites", setUserID(tt.userID), handler.RespondInvite)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPut, "/team-invites", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}
