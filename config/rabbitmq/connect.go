package rabbitmq

import (
	"fmt"
	"sync"

	"reportlog-srv/config"
	"reportlog-srv/pkg/rabbitmq"
)

var (
	instance rabbitmq.IPublisher
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes and connects to RabbitMQ using singleton pattern.
func Connect(cfg config.RabbitMQConfig) (rabbitmq.IPublisher, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		client, e := rabbitmq.New(rabbitmq.Config{
			URL:      cfg.URL,
			Exchange: cfg.Exchange,
		})
		if e != nil {
			err = fmt.Errorf("failed to connect to RabbitMQ: %w", e)
			initErr = err
			return
		}
		instance = client
	})

	return instance, err
}

// GetClient returns the singleton RabbitMQ publisher instance.
func GetClient() rabbitmq.IPublisher {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("RabbitMQ publisher not initialized. Call Connect() first")
	}
	return instance
}

// Disconnect closes the RabbitMQ publisher and resets the singleton.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		if err := instance.Close(); err != nil {
			return err
		}
		instance = nil
		once = sync.Once{}
		initErr = nil
	}
	return nil
}
