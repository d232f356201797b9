package consumer

import (
	"reportlog-srv/internal/report"
	kafkaDelivery "reportlog-srv/internal/report/delivery/kafka"
)

// toIngestInput maps Kafka message DTO to usecase input (delivery → usecase boundary).
func toIngestInput(m kafkaDelivery.ExecutionMessage) report.IngestInput {
	return report.IngestInput{
		ExecutionID: m.ExecutionID,
		Status:      m.Status,
		Category:    m.Category,
		Query:       m.Query,
		Groups:      m.Groups,
		Payload:     m.Payload,
	}
}
