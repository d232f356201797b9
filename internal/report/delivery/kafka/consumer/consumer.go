package consumer

import (
	"context"

	kafkaDelivery "reportlog-srv/internal/report/delivery/kafka"
)

// ConsumeExecutions starts consuming report execution messages.
func (c *Consumer) ConsumeExecutions(ctx context.Context) error {
	group, err := c.createConsumerGroup(c.groupID())
	if err != nil {
		return err
	}
	c.executionsGroup = group

	handler := &executionsHandler{
		consumer: c,
	}

	// Start consuming in goroutine with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{c.topic()}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	// Start error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.topic())

	return nil
}

func (c *Consumer) topic() string {
	if c.kafkaConfig.ExecutionsTopic != "" {
		return c.kafkaConfig.ExecutionsTopic
	}
	return kafkaDelivery.TopicReportExecutions
}

func (c *Consumer) groupID() string {
	if c.kafkaConfig.GroupID != "" {
		return c.kafkaConfig.GroupID
	}
	return kafkaDelivery.ConsumerGroupReportExecutions
}
