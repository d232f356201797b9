package redis

import (
	"errors"
	"time"
)

// Config holds Redis configuration.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

const (
	// DefaultConnectTimeout is the maximum time to wait for the initial ping.
	DefaultConnectTimeout = 5 * time.Second
)

var (
	// ErrHostRequired is returned when no host is configured.
	ErrHostRequired = errors.New("redis: host is required")
	// ErrInvalidPort is returned when the port is out of range.
	ErrInvalidPort = errors.New("redis: invalid port")
)
