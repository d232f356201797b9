package usecase

import (
	"time"

	"reportlog-srv/internal/report"
	"reportlog-srv/internal/report/repository"
	"reportlog-srv/pkg/kafka"
	"reportlog-srv/pkg/log"
	"reportlog-srv/pkg/minio"
)

const (
	defaultDocumentBucket = "report-documents"
	defaultPresignExpiry  = 30 * time.Minute
)

// Config holds configuration for the report usecase.
type Config struct {
	DocumentBucket string
	PresignExpiry  time.Duration
}

type implUseCase struct {
	repo     repository.PostgresRepository
	cache    repository.CacheRepository
	producer kafka.IProducer
	minio    minio.MinIO
	l        log.Logger
	config   Config
}

// New creates a new report UseCase implementation. cache, producer and
// minioClient are optional; pass nil to disable caching, ingested events and
// file downloads respectively.
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	producer kafka.IProducer,
	minioClient minio.MinIO,
	l log.Logger,
	cfg Config,
) report.UseCase {
	if cfg.DocumentBucket == "" {
		cfg.DocumentBucket = defaultDocumentBucket
	}
	if cfg.PresignExpiry <= 0 {
		cfg.PresignExpiry = defaultPresignExpiry
	}

	return &implUseCase{
		repo:     repo,
		cache:    cache,
		producer: producer,
		minio:    minioClient,
		l:        l,
		config:   cfg,
	}
}
