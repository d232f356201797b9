package minio

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

func statOptions() minio.StatObjectOptions {
	return minio.StatObjectOptions{}
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" || resp.StatusCode == 404
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return fmt.Errorf("minio: not connected")
	}
	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio: health check failed: %w", err)
	}
	return nil
}

func (m *implMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, fmt.Errorf("minio: bucket exists check failed: %w", err)
	}
	return exists, nil
}

func (m *implMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.minioClient.StatObject(ctx, bucketName, objectName, statOptions())
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("minio: stat object failed: %w", err)
	}
	return true, nil
}

// GetPresignedDownloadURL generates a time-limited GET URL for an object.
func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	if req == nil || req.BucketName == "" || req.ObjectName == "" {
		return nil, fmt.Errorf("minio: bucket and object names are required")
	}

	expiry := req.Expiry
	if expiry <= 0 {
		expiry = DefaultPresignExpiry
	}

	presigned, err := m.minioClient.PresignedGetObject(ctx, req.BucketName, req.ObjectName, expiry, url.Values{})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to presign download URL: %w", err)
	}

	return &PresignedURLResponse{
		URL:       presigned.String(),
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}
