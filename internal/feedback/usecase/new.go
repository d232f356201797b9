package usecase

import (
	"reportlog-srv/internal/feedback"
	"reportlog-srv/internal/feedback/repository"
	"reportlog-srv/internal/report"
	"reportlog-srv/pkg/log"
	"reportlog-srv/pkg/rabbitmq"
)

// submittedRoutingKey is the routing key for feedback events on the topic
// exchange.
const submittedRoutingKey = "feedback.submitted"

type implUseCase struct {
	repo      repository.PostgresRepository
	reportUC  report.UseCase
	publisher rabbitmq.IPublisher
	l         log.Logger
}

// New creates a new feedback UseCase implementation. publisher is optional;
// pass nil to disable submitted events.
func New(
	repo repository.PostgresRepository,
	reportUC report.UseCase,
	publisher rabbitmq.IPublisher,
	l log.Logger,
) feedback.UseCase {
	return &implUseCase{
		repo:      repo,
		reportUC:  reportUC,
		publisher: publisher,
		l:         l,
	}
}
