package kafka

import "encoding/json"

const (
	// Consumer Topics
	TopicReportExecutions = "report.executions"

	// Producer Topics
	TopicReportIngested = "report.ingested"
)

const (
	ConsumerGroupReportExecutions = "reportlog-consumer-executions"
)

// ExecutionMessage - Kafka message for report.executions. One message is one
// completed agent execution posted by the producer.
type ExecutionMessage struct {
	ExecutionID string          `json:"execution_id"`
	Status      string          `json:"status"`
	Category    string          `json:"category"`
	Query       string          `json:"query"`
	Groups      []int           `json:"groups"`
	Payload     json.RawMessage `json:"payload"`
}
