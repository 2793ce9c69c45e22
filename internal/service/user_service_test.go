package service

import (
	"context"
	"testing"
	"time"

	cachemocks "scoutlete/internal/cache/mocks"
	apperrors "scoutlete/internal/errors"
	"scoutlete/internal/models"
	repomocks "scoutlete/internal/repository/mocks"
	storagemocks "scoutlete/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type userServiceMocks struct {
	repo  *repomocks.MockUserRepository
	cache *cachemocks.MockCache
	store *storagemocks.MockObjectStore
}

func newUserServiceMocks(ctrl *gomock.Controller) *userServiceMocks {
	return &userServiceMocks{
		repo:  repomocks.NewMockUserRepository(ctrl),
		cache: cachemocks.NewMockCache(ctrl),
		store: storagemocks.NewMockObjectStore(ctrl),
	}
}

func (m *userServiceMocks) service() *UserService {
	return NewUserService(m.repo, m.cache, m.store)
}

func TestUserService_GetUser(t *testing.T) {
	validUserID := primitive.NewObjectID()
	validUser := &models.User{
		ID:    validUserID,
		Email: "test@example.com",
		Name:  "Test User",
	}

	t.Run("returns user from cache when cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserServiceMocks(ctrl)

		m.cache.EXPECT().
			Get(gomock.Any(), "user:"+validUserID.Hex(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest interface{}) (bool, error) {
				// Simulate cache hit by populating dest
				user := dest.(*models.User)
				*user = *validUser
				return true, nil
			})

		user, err := m.service().GetUser(context.Background(), validUserID.Hex())

		require.NoError(t, err)
		assert.Equal(t, validUser.ID, user.ID)
		assert.Equal(t, validUser.Email, user.Email)
	})

	t.Run("fetches from database on cache miss and caches result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserServiceMocks(ctrl)

		m.cache.EXPECT().
			Get(gomock.Any(), "user:"+validUserID.Hex(), gomock.Any()).
			Return(false, nil) // Cache miss

		m.repo.EXPECT().
			FindByID(gomock.Any(), validUserID).
			Return(validUser, nil)

		m.cache.EXPECT().
			Set(gomock.Any(), "user:"+validUserID.Hex(), validUser, 15*time.Minute).
			Return(nil)

		user, err := m.service().GetUser(context.Background(), validUserID.Hex())

		require.NoError(t, err)
		assert.Equal(t, validUser.ID, user.ID)
	})

	t.Run("attaches pre-signed avatar URL when user has an avatar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserServiceMocks(ctrl)

		withAvatar := *validUser
		withAvatar.AvatarKey = "avatars/" + validUserID.Hex()

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)

		m.repo.EXPECT().
			FindByID(gomock.Any(), validUserID).
			Return(&withAvatar, nil)

		m.cache.EXPECT().
			Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.store.EXPECT().
			PresignDownload(gomock.Any(), withAvatar.AvatarKey, time.Hour).
			Return("https://storage.example.com/avatars/signed", nil)

		user, err := m.service().GetUser(context.Background(), validUserID.Hex())

		require.NoError(t, err)
		assert.Equal(t, "https://storage.example.com/avatars/signed", user.AvatarURL)
	})

	t.Run("returns error for invalid user ID format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserServiceMocks(ctrl)

		user, err := m.service().GetUser(context.Background(), "invalid-id")

		assert.Nil(t, user)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("returns error when user not found in database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserServiceMocks(ctrl)

		m.cache.EXPECT().
			Get(gomock.Any(), "user:"+validUserID.Hex(), gomock.Any()).
			Return(false, nil)

		m.repo.EXPECT().
			FindByID(gomock.Any(), validUserID).
			Return(nil, apperrors.ErrUserNotFound)

		user, err := m.service().GetUser(context.Background(), validUserID.Hex())

		assert.Nil(t, user)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	validUserID := primitive.NewObjectID()
	updateReq := &models.UpdateUserRequest{Name: strPtr("Updated Name")}
	updatedUser := &models.User{
		ID:    validUserID,
		Email: "test@example.com",
		Name:  "Updated Name",
	}

	t.Run("updates user and invalidates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserServiceMocks(ctrl)

		m.repo.EXPECT().
			Update(gomock.Any(), validUserID, updateReq).
			Return(updatedUser, nil)

		m.cache.EXPECT().
			Delete(gomock.Any(), "user:"+validUserID.Hex()).
			Return(nil)

		user, err := m.service().UpdateUser(context.Background(), validUserID.Hex(), updateReq)

		require.NoError(t, err)
		assert.Equal(t, "Updated Name", user.Name)
	})

	t.Run("returns error for invalid user ID format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserServiceMocks(ctrl)

		user, err := m.service().UpdateUser(context.Background(), "invalid-id", updateReq)

		assert.Nil(t, user)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserService_RequestAvatarUpload(t *testing.T) {
	validUserID := primitive.NewObjectID()

	t.Run("returns a pre-signed upload URL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserServiceMocks(ctrl)

		m.store.EXPECT().
			PresignUpload(gomock.Any(), "avatars/"+validUserID.Hex(), "image/png", 15*time.Minute).
			Return("https://storage.example.com/upload/signed", nil)

		resp, err := m.service().RequestAvatarUpload(context.Background(), validUserID.Hex(), &models.AvatarUploadRequest{
			ContentType: "image/png",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://storage.example.com/upload/signed", resp.UploadURL)
		assert.Equal(t, "avatars/"+validUserID.Hex(), resp.Key)
	})

	t.Run("returns error for invalid user ID format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newUserServiceMocks(ctrl)

		resp, err := m.service().RequestAvatarUpload(context.Background(), "invalid-id", &models.AvatarUploadRequest{
			ContentType: "image/png",
		})

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

// Helper function
func strPtr(s string) *string {
	return &s
}
