package rabbitmq

import (
	"errors"
	"time"
)

// Config holds RabbitMQ configuration.
type Config struct {
	URL      string
	Exchange string
}

const (
	// DefaultConnectTimeout is the maximum time to wait for the initial dial.
	DefaultConnectTimeout = 10 * time.Second
	// ExchangeTypeTopic is the exchange type used for event publishing.
	ExchangeTypeTopic = "topic"
)

var (
	// ErrURLRequired is returned when no broker URL is configured.
	ErrURLRequired = errors.New("rabbitmq: url is required")
	// ErrExchangeRequired is returned when no exchange is configured.
	ErrExchangeRequired = errors.New("rabbitmq: exchange is required")
	// ErrNotConnected is returned when publishing on a closed connection.
	ErrNotConnected = errors.New("rabbitmq: not connected")
)
