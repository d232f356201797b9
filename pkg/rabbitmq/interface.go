package rabbitmq

import "context"

// IPublisher defines the interface for publishing events to RabbitMQ.
// Implementations are safe for concurrent use.
//
//go:generate mockery --name IPublisher
type IPublisher interface {
	// Publish sends a JSON body to the configured exchange under routingKey.
	Publish(ctx context.Context, routingKey string, body []byte) error
	Close() error
}

// New creates a new publisher connected to the configured broker and
// declares the exchange.
func New(cfg Config) (IPublisher, error) {
	if cfg.URL == "" {
		return nil, ErrURLRequired
	}
	if cfg.Exchange == "" {
		return nil, ErrExchangeRequired
	}
	return newPublisherImpl(cfg)
}
