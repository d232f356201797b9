package consumer

import (
	"context"
	"fmt"

	reportConsumer "reportlog-srv/internal/report/delivery/kafka/consumer"
	reportPostgre "reportlog-srv/internal/report/repository/postgre"
	reportRedis "reportlog-srv/internal/report/repository/redis"
	reportUsecase "reportlog-srv/internal/report/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	reportConsumer *reportConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	repo := reportPostgre.New(srv.postgresDB, srv.l)
	cache := reportRedis.New(srv.redisClient, srv.l)

	// MinIO is not needed on the consume path; the HTTP API owns file downloads.
	reportUC := reportUsecase.New(repo, cache, srv.kafkaProducer, nil, srv.l, reportUsecase.Config{})

	reportCons, err := reportConsumer.New(reportConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     reportUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report consumer: %w", err)
	}

	srv.l.Infof(ctx, "Report domain initialized")

	return &domainConsumers{
		reportConsumer: reportCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.reportConsumer.ConsumeExecutions(ctx); err != nil {
		return fmt.Errorf("failed to start report consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.reportConsumer != nil {
		if err := consumers.reportConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing report consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
