package service

import (
	"context"
	"log"

	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/models"
	"scoutlete/internal/queue"
	"scoutlete/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService handles business logic for notification operations.
// Emission is fire-and-forget through the job queue; the workflow that
// emits a notification never waits on or fails with its delivery.
type NotificationService struct {
	repo  repository.NotificationRepository
	queue queue.Queue
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repository.NotificationRepository, q queue.Queue) *NotificationService {
	return &NotificationService{
		repo:  repo,
		queue: q,
	}
}

// Notify enqueues a notification for background delivery.
// Failures are logged and swallowed.
func (s *NotificationService) Notify(notification *models.Notification) {
	job := queue.NotificationJob{
		UserID:    notification.UserID,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		Data:      notification.Data,
		Priority:  notification.Priority,
		ActionURL: notification.ActionURL,
	}

	if err := s.queue.Enqueue(job); err != nil {
		log.Printf("Failed to enqueue %s notification for user %s: %v", job.Type, job.UserID.Hex(), err)
	}
}

// ListNotifications returns paginated notifications for a user, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, userID primitive.ObjectID, unreadOnly bool, page, limit int) (*models.NotificationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, total, err := s.repo.FindByUserID(ctx, userID, unreadOnly, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return &models.NotificationListResponse{
		Items: notifications,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// MarkRead marks one of the user's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, id string, userID primitive.ObjectID) error {
	notificationID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrNotificationNotFound
	}

	return s.repo.MarkRead(ctx, notificationID, userID)
}
