package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

// consumerImpl wraps a sarama consumer group.
type consumerImpl struct {
	group sarama.ConsumerGroup
}

func newConsumerImpl(cfg ConsumerConfig) (*consumerImpl, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_6_0_0
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}

	return &consumerImpl{group: group}, nil
}

// ConsumeWithContext starts consuming from topics with context.
func (c *consumerImpl) ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	return c.group.Consume(ctx, topics, handler)
}

// Close closes the consumer group.
func (c *consumerImpl) Close() error {
	return c.group.Close()
}

// Errors returns a channel of errors from the consumer.
func (c *consumerImpl) Errors() <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)
		for err := range c.group.Errors() {
			errs <- err
		}
	}()
	return errs
}
