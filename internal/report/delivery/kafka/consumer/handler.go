package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/IBM/sarama"

	"reportlog-srv/internal/report"
	kafkaDelivery "reportlog-srv/internal/report/delivery/kafka"
)

type executionsHandler struct {
	consumer *Consumer
}

func (h *executionsHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *executionsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *executionsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleExecutionMessage(session.Context(), msg); err != nil {
			// Leave the offset uncommitted: the write is retryable and the
			// record must be redelivered once storage recovers.
			h.consumer.l.Errorf(context.Background(), "report.delivery.kafka.consumer.ConsumeExecutions: Failed to process execution message: %v", err)
			return err
		}
		session.MarkMessage(msg, "")
	}
	return nil
}

// handleExecutionMessage decodes and reconciles one execution record.
// Malformed and invalid messages are logged and dropped (redelivery cannot
// fix them); storage errors propagate so the offset stays uncommitted.
func (c *Consumer) handleExecutionMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var m kafkaDelivery.ExecutionMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleExecutionMessage: Dropped malformed message at offset %d: %v", msg.Offset, err)
		return nil
	}

	_, err := c.uc.Ingest(ctx, toIngestInput(m))
	if err != nil {
		if isValidationError(err) {
			c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleExecutionMessage: Rejected execution %s: %v", m.ExecutionID, err)
			return nil
		}
		return err
	}

	return nil
}

func isValidationError(err error) bool {
	return errors.Is(err, report.ErrExecutionIDRequired) ||
		errors.Is(err, report.ErrInvalidStatus) ||
		errors.Is(err, report.ErrInvalidPayload)
}
