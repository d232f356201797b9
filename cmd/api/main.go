package main

import (
	"context"
	"fmt"
	"time"

	"reportlog-srv/config"
	configKafka "reportlog-srv/config/kafka"
	configMinio "reportlog-srv/config/minio"
	configPostgre "reportlog-srv/config/postgre"
	configRabbit "reportlog-srv/config/rabbitmq"
	configRedis "reportlog-srv/config/redis"
	"reportlog-srv/internal/httpserver"
	pkgJWT "reportlog-srv/pkg/jwt"
	"reportlog-srv/pkg/log"
)

// @title       Reportlog Service API
// @description Agent report ingestion, reconciliation and review API.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name reportlog_auth_token
// @description Authentication token stored in HttpOnly cookie. Set automatically by /login endpoint.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize Kafka producer (ingested events; optional)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka producer not available, ingested events disabled: %v", err)
		kafkaProducer = nil
	} else {
		defer configKafka.DisconnectProducer()
		logger.Info(ctx, "Kafka producer initialized")
	}

	// 6. Initialize RabbitMQ publisher (feedback events; optional)
	rabbitPublisher, err := configRabbit.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Warnf(ctx, "RabbitMQ not available, feedback events disabled: %v", err)
		rabbitPublisher = nil
	} else {
		defer configRabbit.Disconnect()
		logger.Info(ctx, "RabbitMQ publisher initialized")
	}

	// 7. Initialize MinIO (referenced document downloads; optional)
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Warnf(ctx, "MinIO not available, file downloads disabled: %v", err)
		minioClient = nil
	} else {
		defer configMinio.Disconnect()
		logger.Info(ctx, "MinIO client initialized")
	}

	// 8. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 9. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB: postgresDB,

		// Messaging & Storage Configuration
		RedisClient:     redisClient,
		KafkaProducer:   kafkaProducer,
		RabbitPublisher: rabbitPublisher,
		MinIOClient:     minioClient,

		// Authentication & Security Configuration
		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
