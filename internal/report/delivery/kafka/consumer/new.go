package consumer

import (
	"fmt"

	"reportlog-srv/config"
	"reportlog-srv/internal/report"
	pkgKafka "reportlog-srv/pkg/kafka"
	"reportlog-srv/pkg/log"
)

// Config holds the configuration for the report consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     report.UseCase
}

// Consumer manages Kafka consumer groups for the report domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          report.UseCase

	executionsGroup pkgKafka.IConsumer
}

// New creates a new report consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.executionsGroup != nil {
		if err := c.executionsGroup.Close(); err != nil {
			return fmt.Errorf("failed to close executions group: %w", err)
		}
	}

	return nil
}

// createConsumerGroup creates a new Kafka consumer group
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	consumerConfig := pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	}

	group, err := pkgKafka.NewConsumer(consumerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}

	return group, nil
}
