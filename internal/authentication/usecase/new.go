package usecase

import (
	"reportlog-srv/internal/authentication"
	"reportlog-srv/internal/authentication/repository"
	"reportlog-srv/pkg/jwt"
	"reportlog-srv/pkg/log"
)

type implUseCase struct {
	repo       repository.PostgresRepository
	jwtManager *jwt.Manager
	l          log.Logger
}

// New creates a new authentication UseCase implementation.
func New(repo repository.PostgresRepository, jwtManager *jwt.Manager, l log.Logger) authentication.UseCase {
	return &implUseCase{
		repo:       repo,
		jwtManager: jwtManager,
		l:          l,
	}
}
