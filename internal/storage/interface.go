package storage

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks scoutlete/internal/storage ObjectStore

// ObjectStore defines the interface for pre-signed object storage operations.
type ObjectStore interface {
	// PresignUpload generates a pre-signed URL for uploading an object.
	PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	// PresignDownload generates a pre-signed URL for downloading an object.
	PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Ensure S3Client implements ObjectStore interface
var _ ObjectStore = (*S3Client)(nil)
