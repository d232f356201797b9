package minio

import (
	"context"
	"fmt"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO defines the object storage operations the service needs: liveness,
// object existence checks and presigned download links for referenced
// source documents.
//
//go:generate mockery --name MinIO
type MinIO interface {
	HealthCheck(ctx context.Context) error
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	FileExists(ctx context.Context, bucketName, objectName string) (bool, error)
	GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error)
	Close() error
}

type implMinIO struct {
	mu          sync.RWMutex
	minioClient *minio.Client
	connected   bool
}

// New creates a new MinIO client and verifies connectivity.
func New(ctx context.Context, cfg Config) (MinIO, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio: endpoint is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to create client: %w", err)
	}

	m := &implMinIO{minioClient: client}
	if err := m.connect(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *implMinIO) connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		m.connected = false
		return fmt.Errorf("minio: connect failed: %w", err)
	}
	m.connected = true
	return nil
}
