package kafka

import "fmt"

// Config holds configuration for the Kafka producer.
type Config struct {
	Brokers []string
	Topic   string
}

// ConsumerConfig holds configuration for a Kafka consumer group.
type ConsumerConfig struct {
	Brokers []string
	GroupID string
}

func validateProducerConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("at least one broker is required")
	}
	if cfg.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	return nil
}

func validateConsumerConfig(cfg ConsumerConfig) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("at least one broker is required")
	}
	if cfg.GroupID == "" {
		return fmt.Errorf("group ID is required")
	}
	return nil
}
