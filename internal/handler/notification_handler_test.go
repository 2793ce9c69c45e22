package handler

import (
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

func TestNewNotificationHandler(t *testing.T) {
	mockService := &mocks.MockNotificationService{}
	handler := NewNotificationHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestNotificationHandler_ListNotifications(t *testing.T) {
	userID := primitive.NewObjectID()
	now := time.Now()

	tests := []struct {
		name           string
		userID         string
		queryParams    string
		mockSetup      func(*mocks.MockNotificationService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "successful list notifications",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockNotificationService) {
				m.ListNotificationsFunc = func(ctx context.Context, uID primitive.ObjectID, unreadOnly bool, page, limit int) (*models.NotificationListResponse, error) {
					assert.Equal(t, userID, uID)
					assert.False(t, unreadOnly)
					return &models.NotificationListResponse{
						Items: []models.Notification{
							{
								ID:        primitive.NewObjectID(),
								UserID:    uID,
								Type:      models.NotificationJoinRequestReceived,
								Title:     "New join request",
								Message:   "Alex Morgan wants to join Downtown Smashers",
								Priority:  models.PriorityNormal,
								CreatedAt: now,
							},
						},
						Pagination: models.Pagination{Page: 1, Limit: 20, TotalItems: 1, TotalPages: 1},
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
				n := items[0].(map[string]interface{})
				assert.Equal(t, "join_request_received", n["type"])
				assert.Equal(t, false, n["read"])
			},
		},
		{
			name:        "unread only with pagination",
			userID:      userID.Hex(),
			queryParams: "?unread_only=true&page=3&limit=10",
			mockSetup: func(m *mocks.MockNotificationService) {
				m.ListNotificationsFunc = func(ctx context.Context, uID primitive.ObjectID, unreadOnly bool, page, limit int) (*models.NotificationListResponse, error) {
					assert.True(t, unreadOnly)
					assert.Equal(t, 3, page)
					assert.Equal(t, 10, limit)
					return &models.NotificationListResponse{
						Items:      []models.Notification{},
						Pagination: models.Pagination{Page: 3, Limit: 10, TotalItems: 0, TotalPages: 0},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid user ID in context",
			userID:         "invalid-id",
			mockSetup:      func(m *mocks.MockNotificationService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "internal server error",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockNotificationService) {
				m.ListNotificationsFunc = func(ctx context.Context, uID primitive.ObjectID, unreadOnly bool, page, limit int) (*models.NotificationListResponse, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockNotificationService{}
			tt.mockSetup(mockService)

			handler := NewNotificationHandler(mockService)

			router := gin.New()
			router.GET("/notifications", setUserID(tt.userID), handler.ListNotifications)

			req := httptest.NewRequest(http.MethodGet, "/notifications"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	userID := primitive.NewObjectID()
	notificationID := primitive.NewObjectID()

	tests := []struct {
		name           string
		userID         string
		notificationID string
		mockSetup      func(*mocks.MockNotificationService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "successful mark read",
			userID:         userID.Hex(),
			notificationID: notificationID.Hex(),
			mockSetup: func(m *mocks.MockNotificationService) {
				m.MarkReadFunc = func(ctx context.Context, id string, uID primitive.ObjectID) error {
					assert.Equal(t, notificationID.Hex(), id)
					assert.Equal(t, userID, uID)
					return nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "notification marked as read", data["message"])
			},
		},
		{
			name:           "invalid user ID in context",
			userID:         "invalid-id",
			notificationID: notificationID.Hex(),
			mockSetup:      func(m *mocks.MockNotificationService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "notification not found",
			userID:         userID.Hex(),
			notificationID: notificationID.Hex(),
			mockSetup: func(m *mocks.MockNotificationService) {
				m.MarkReadFunc = func(ctx context.Context, id string, uID primitive.ObjectID) error {
					return apperrors.ErrNotificationNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "internal server error",
			userID:         userID.Hex(),
			notificationID: notificationID.Hex(),
			mockSetup: func(m *mocks.MockNotificationService) {
				m.MarkReadFunc = func(ctx context.Context, id string, uID primitive.ObjectID) error {
					return errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockNotificationService{}
			tt.mockSetup(mockService)

			handler := NewNotificationHandler(mockService)

			router := gin.New()
			router.PUT("/notifications/:notificationId/read", setUserID(tt.userID), handler.MarkRead)

			req := httptest.NewRequest(http.MethodPut, "/notifications/"+tt.notificationID+"/read", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}
