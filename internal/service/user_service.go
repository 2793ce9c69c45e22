package service

import (
	"context"
	"fmt"
	"time"

	"scoutlete/internal/cache"
	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/models"
	"scoutlete/internal/repository"
	"scoutlete/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	userCacheTTL    = 15 * time.Minute
	avatarURLExpiry = 1 * time.Hour
	uploadURLExpiry = 15 * time.Minute
)

// UserService handles business logic for user operations.
type UserService struct {
	repo  repository.UserRepository
	cache cache.Cache
	store storage.ObjectStore
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, cache cache.Cache, store storage.ObjectStore) *UserService {
	return &UserService{
		repo:  repo,
		cache: cache,
		store: store,
	}
}

// GetUser retrieves a user by ID (with caching).
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	// Try cache first
	cacheKey := cache.UserCacheKey(id)
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err == nil && found {
		s.attachAvatarURL(ctx, &user)
		return &user, nil // Cache hit
	}

	// Cache miss - get from database
	dbUser, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, dbUser, userCacheTTL)

	s.attachAvatarURL(ctx, dbUser)
	return dbUser, nil
}

// UpdateUser updates a user's profile.
func (s *UserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.repo.Update(ctx, objectID, req)
	if err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(id))

	s.attachAvatarURL(ctx, user)
	return user, nil
}

// RequestAvatarUpload returns a pre-signed URL for uploading a profile picture.
func (s *UserService) RequestAvatarUpload(ctx context.Context, id string, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	key := fmt.Sprintf("avatars/%s", id)

	uploadURL, err := s.store.PresignUpload(ctx, key, req.ContentType, uploadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &models.AvatarUploadResponse{
		UploadURL: uploadURL,
		Key:       key,
	}, nil
}

// attachAvatarURL populates the transient pre-signed download URL.
// The user is still usable without it, so failures are ignored.
func (s *UserService) attachAvatarURL(ctx context.Context, user *models.User) {
	if user.AvatarKey == "" {
		return
	}

	url, err := s.store.PresignDownload(ctx, user.AvatarKey, avatarURLExpiry)
	if err != nil {
		return
	}
	user.AvatarURL = url
}
