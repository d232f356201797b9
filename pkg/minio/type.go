package minio

import "time"

// Config holds MinIO configuration.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// PresignedURLRequest contains the parameters for generating a presigned URL.
type PresignedURLRequest struct {
	BucketName string        `json:"bucket_name"`
	ObjectName string        `json:"object_name"`
	Expiry     time.Duration `json:"expiry"`
}

// PresignedURLResponse contains the generated presigned URL and its metadata.
type PresignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

const (
	// DefaultPresignExpiry is used when a request does not set an expiry.
	DefaultPresignExpiry = 30 * time.Minute
)
